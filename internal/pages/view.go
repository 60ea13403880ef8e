package pages

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/Zachkp/portfolio/internal/gallery"
	"github.com/Zachkp/portfolio/internal/projects"
	"github.com/Zachkp/portfolio/internal/ui"
)

// ImageSrc returns src, or placeholder when the project has no image at all.
// Images that fail in the browser are swapped by the template's onerror hook.
func ImageSrc(src, placeholder string) string {
	if strings.TrimSpace(src) == "" {
		return placeholder
	}
	return src
}

// ProjectPath is the detail URL of a project.
func ProjectPath(slug string) string {
	return ListingPath + "/" + url.PathEscape(slug)
}

// GalleryHref is the detail URL with the modal in state s.
func GalleryHref(slug string, s gallery.State) string {
	q := s.Query()
	if q == "" {
		return ProjectPath(slug)
	}
	return ProjectPath(slug) + "?" + gallery.QueryParam + "=" + q
}

// GalleryFragmentHref is the HTMX endpoint returning the modal in state s.
func GalleryFragmentHref(slug string, s gallery.State) string {
	base := ProjectPath(slug) + "/gallery"
	if q := s.Query(); q != "" {
		return base + "?" + gallery.QueryParam + "=" + q
	}
	return base
}

type Card struct {
	Slug         string
	Title        string
	Description  string
	Category     string
	Image        string
	Href         string
	Featured     bool
	Technologies []string
	Completed    string
}

func NewCard(p projects.Project, placeholder string) Card {
	return Card{
		Slug:         p.Slug,
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		Image:        ImageSrc(p.Image, placeholder),
		Href:         ProjectPath(p.Slug),
		Featured:     p.Featured,
		Technologies: p.Technologies,
		Completed:    p.CompletedLabel(),
	}
}

func Cards(list []projects.Project, placeholder string) []Card {
	out := make([]Card, 0, len(list))
	for _, p := range list {
		out = append(out, NewCard(p, placeholder))
	}
	return out
}

type Thumb struct {
	Index    int
	Src      string
	Href     string
	HxGet    string
	AltLabel string
}

// Modal is the open gallery overlay.
type Modal struct {
	Src      string
	Index    int
	Position int
	Total    int
	Alt      string

	Close    *ui.Button
	Previous *ui.Button
	Next     *ui.Button

	// ShowNavigation is false for single-image galleries; Previous and Next are nil then.
	ShowNavigation bool
}

type DetailView struct {
	Project         projects.Project
	Image           string
	LongDescription template.HTML
	Completed       string
	Placeholder     string

	Previous Card
	Next     Card
	Position int
	Total    int

	Thumbs []Thumb
	Modal  *Modal

	Back *ui.Button
}

// NewDetailView assembles everything the detail template needs for one
// request. state is the gallery state derived from the request.
func NewDetailView(res DetailResult, state gallery.State, placeholder string) DetailView {
	p := res.Project
	v := DetailView{
		Project:         p,
		Image:           ImageSrc(p.Image, placeholder),
		LongDescription: RenderMarkdown(p.LongDescription),
		Completed:       p.CompletedLabel(),
		Placeholder:     placeholder,
		Previous:        NewCard(res.Previous, placeholder),
		Next:            NewCard(res.Next, placeholder),
		Position:        res.Position,
		Total:           res.Total,
		Back: &ui.Button{
			Label:   "All projects",
			Variant: ui.ButtonVariantGhost,
			Size:    ui.SizeSm,
			Href:    ListingPath,
		},
	}

	closed := gallery.New(len(p.Gallery))
	for i, src := range p.Gallery {
		open := closed.Select(i)
		v.Thumbs = append(v.Thumbs, Thumb{
			Index:    i,
			Src:      ImageSrc(src, placeholder),
			Href:     GalleryHref(p.Slug, open),
			HxGet:    GalleryFragmentHref(p.Slug, open),
			AltLabel: altText(p.Title, i, len(p.Gallery)),
		})
	}

	v.Modal = NewModal(p, state, placeholder)
	return v
}

// NewModal returns the overlay for an open state, or nil when Closed.
func NewModal(p projects.Project, state gallery.State, placeholder string) *Modal {
	i, open := state.Index()
	if !open || i >= len(p.Gallery) {
		return nil
	}

	n := state.Len()
	m := &Modal{
		Src:      ImageSrc(p.Gallery[i], placeholder),
		Index:    i,
		Position: i + 1,
		Total:    n,
		Alt:      altText(p.Title, i, n),
		Close: &ui.Button{
			Label:     "Close",
			Variant:   ui.ButtonVariantGhost,
			Size:      ui.SizeSm,
			Href:      GalleryHref(p.Slug, state.Close()),
			AriaLabel: "Close gallery",
		},
		ShowNavigation: state.ShowNavigation(),
	}

	if m.ShowNavigation {
		m.Previous = &ui.Button{
			Label:     "Previous",
			Variant:   ui.ButtonVariantSecondary,
			Size:      ui.SizeSm,
			Href:      GalleryHref(p.Slug, state.Prev()),
			AriaLabel: "Previous image",
		}
		m.Next = &ui.Button{
			Label:     "Next",
			Variant:   ui.ButtonVariantSecondary,
			Size:      ui.SizeSm,
			Href:      GalleryHref(p.Slug, state.Next()),
			AriaLabel: "Next image",
		}
	}
	return m
}

func altText(title string, i, n int) string {
	return fmt.Sprintf("%s screenshot %d of %d", title, i+1, n)
}
