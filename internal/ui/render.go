// Package ui holds the presentational components shared by every page: badges
// and buttons rendered to HTML, plus the registry of server-side button actions.
package ui

import (
	"html/template"
	"strings"
)

var components = template.Must(template.New("ui").Parse(`
{{- define "badge" -}}
<span class="{{.Class}}">{{.Content}}</span>
{{- end -}}

{{- define "button-body" -}}
{{- if .Loading -}}
<svg class="h-4 w-4 animate-spin" viewBox="0 0 24 24" fill="none" aria-hidden="true"><circle class="opacity-25" cx="12" cy="12" r="10" stroke="currentColor" stroke-width="4"></circle><path class="opacity-75" fill="currentColor" d="M4 12a8 8 0 018-8v4a4 4 0 00-4 4H4z"></path></svg><span class="sr-only">Loading…</span>
{{- else -}}
{{- if .LeadingIcon}}<span class="shrink-0" aria-hidden="true">{{.LeadingIcon}}</span>{{end -}}
<span>{{.Label}}</span>
{{- if .TrailingIcon}}<span class="shrink-0" aria-hidden="true">{{.TrailingIcon}}</span>{{end -}}
{{- end -}}
{{- end -}}

{{- define "button-aria" -}}
{{if .AriaLabel}} aria-label="{{.AriaLabel}}"{{end}}{{if .AriaDescribedBy}} aria-describedby="{{.AriaDescribedBy}}"{{end}}{{if .Loading}} aria-busy="true"{{end}}
{{- end -}}

{{- define "button" -}}
{{- if .Href -}}
<a class="{{.Class}}"{{if .Inert}} aria-disabled="true" tabindex="-1"{{else}} href="{{.Href}}"{{end}}{{template "button-aria" .}}>{{template "button-body" .}}</a>
{{- else -}}
<button type="{{.Type}}" class="{{.Class}}"{{if .Inert}} disabled aria-disabled="true"{{else}}{{if .Action}} hx-post="{{.Action}}"{{end}}{{end}}{{if .Target}} hx-target="{{.Target}}"{{end}}{{template "button-aria" .}}>{{template "button-body" .}}</button>
{{- end -}}
{{- end -}}
`))

func render(name string, data any) template.HTML {
	var sb strings.Builder
	if err := components.ExecuteTemplate(&sb, name, data); err != nil {
		return template.HTML(template.HTMLEscapeString(err.Error()))
	}
	return template.HTML(sb.String())
}

// FuncMap exposes the components to page templates:
//
//	{{ badge "success" "sm" "Featured" }}
//	{{ linkButton "outline" "md" "Go home" "/" }}
//	{{ button .SomeButton }}
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"badge": func(variant, size string, content any) template.HTML {
			return Badge{Variant: BadgeVariant(variant), Size: Size(size)}.Render(content)
		},
		"linkButton": func(variant, size, label, href string) template.HTML {
			b := &Button{Label: label, Variant: ButtonVariant(variant), Size: Size(size), Href: href}
			return b.Render()
		},
		"button": func(b *Button) template.HTML {
			if b == nil {
				return ""
			}
			return b.Render()
		},
	}
}
