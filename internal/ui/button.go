package ui

import (
	"context"
	"fmt"
	"html/template"
	"strings"
)

type ButtonVariant string

const (
	ButtonVariantPrimary   ButtonVariant = "primary"
	ButtonVariantSecondary ButtonVariant = "secondary"
	ButtonVariantOutline   ButtonVariant = "outline"
	ButtonVariantGhost     ButtonVariant = "ghost"
	ButtonVariantDanger    ButtonVariant = "danger"
	ButtonVariantLink      ButtonVariant = "link"
)

// ButtonVariants lists every supported button variant.
var ButtonVariants = []ButtonVariant{
	ButtonVariantPrimary,
	ButtonVariantSecondary,
	ButtonVariantOutline,
	ButtonVariantGhost,
	ButtonVariantDanger,
	ButtonVariantLink,
}

// DiagnosticSink receives failures that are swallowed on the caller's behalf.
type DiagnosticSink interface {
	Error(err error, msg string)
}

// ClickHandler runs when an enabled button is activated.
type ClickHandler func(ctx context.Context) error

// Button is a clickable control. It renders either a <button> or, when Href is
// set, an anchor styled as a button. Action posts to a URL through HTMX.
type Button struct {
	Label   string
	Variant ButtonVariant
	Size    Size
	Type    string

	Href   string
	Action string
	Target string

	LeadingIcon  template.HTML
	TrailingIcon template.HTML

	FullWidth bool
	Disabled  bool
	Loading   bool

	AriaLabel       string
	AriaDescribedBy string
	Class           string

	OnClick ClickHandler
	Sink    DiagnosticSink
}

// Inert reports whether the button ignores interaction.
func (b *Button) Inert() bool {
	return b.Disabled || b.Loading
}

// Activate invokes the click handler unless the button is disabled, loading or
// has no handler. Handler errors and panics are reported to Sink and never
// reach the caller. It returns whether the handler was invoked.
func (b *Button) Activate(ctx context.Context) (invoked bool) {
	if b.Inert() || b.OnClick == nil {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			b.report(fmt.Errorf("panic: %v", r), "button handler panicked")
		}
	}()

	invoked = true
	if err := b.OnClick(ctx); err != nil {
		b.report(err, "button handler failed")
	}
	return invoked
}

func (b *Button) report(err error, msg string) {
	if b.Sink == nil {
		return
	}
	b.Sink.Error(fmt.Errorf("button %q: %w", b.Label, err), msg)
}

// Render produces the button markup.
func (b *Button) Render() template.HTML {
	typ := b.Type
	if typ == "" {
		typ = "button"
	}
	return render("button", buttonView{
		Label:           b.Label,
		Type:            typ,
		Href:            b.Href,
		Action:          b.Action,
		Target:          b.Target,
		Class:           buttonClasses(b),
		LeadingIcon:     b.LeadingIcon,
		TrailingIcon:    b.TrailingIcon,
		AriaLabel:       b.AriaLabel,
		AriaDescribedBy: b.AriaDescribedBy,
		Loading:         b.Loading,
		Inert:           b.Inert(),
	})
}

type buttonView struct {
	Label           string
	Type            string
	Href            string
	Action          string
	Target          string
	Class           string
	LeadingIcon     template.HTML
	TrailingIcon    template.HTML
	AriaLabel       string
	AriaDescribedBy string
	Loading         bool
	Inert           bool
}

type variantStyle struct {
	base  string
	hover string
}

var buttonVariantStyles = map[ButtonVariant]variantStyle{
	ButtonVariantPrimary:   {"bg-indigo-600 text-white shadow-sm", "hover:bg-indigo-500"},
	ButtonVariantSecondary: {"bg-neutral-200 text-neutral-900", "hover:bg-neutral-300"},
	ButtonVariantOutline:   {"border border-neutral-300 bg-transparent text-neutral-900", "hover:bg-neutral-100"},
	ButtonVariantGhost:     {"bg-transparent text-neutral-900", "hover:bg-neutral-100"},
	ButtonVariantDanger:    {"bg-red-600 text-white shadow-sm", "hover:bg-red-500"},
	ButtonVariantLink:      {"bg-transparent text-indigo-600 underline-offset-4", "hover:underline"},
}

var buttonSizeClasses = map[Size]string{
	SizeSm: "h-8 px-3 text-xs",
	SizeMd: "h-10 px-4 text-sm",
	SizeLg: "h-12 px-6 text-base",
}

func buttonClasses(b *Button) string {
	classes := []string{"inline-flex items-center justify-center gap-2 rounded-md font-medium transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-indigo-500"}

	style, ok := buttonVariantStyles[b.Variant]
	if !ok {
		style = buttonVariantStyles[ButtonVariantPrimary]
	}
	classes = append(classes, style.base)

	size, ok := buttonSizeClasses[b.Size]
	if !ok {
		size = buttonSizeClasses[SizeMd]
	}
	classes = append(classes, size)

	if b.Inert() {
		classes = append(classes, "cursor-not-allowed opacity-50")
	} else {
		classes = append(classes, style.hover)
	}

	if b.FullWidth {
		classes = append(classes, "w-full")
	}
	if b.Class != "" {
		classes = append(classes, b.Class)
	}
	return strings.Join(classes, " ")
}
