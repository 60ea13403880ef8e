package pages

import (
	"net/url"
	"strings"

	"github.com/Zachkp/portfolio/internal/ui"
)

type NotFoundView struct {
	Path string
	Home *ui.Button
	Back *ui.Button
}

// NewNotFoundView builds the 404 page. "Go back" returns to the referring page
// when it is on this site, and to the project listing otherwise.
func NewNotFoundView(path, referer, host string) NotFoundView {
	return NotFoundView{
		Path: path,
		Home: &ui.Button{
			Label:   "Go home",
			Variant: ui.ButtonVariantPrimary,
			Size:    ui.SizeLg,
			Href:    "/",
		},
		Back: &ui.Button{
			Label:   "Go back",
			Variant: ui.ButtonVariantOutline,
			Size:    ui.SizeLg,
			Href:    BackTarget(referer, host, path),
		},
	}
}

// BackTarget returns a same-origin path from referer, or the listing page.
func BackTarget(referer, host, current string) string {
	if referer == "" {
		return ListingPath
	}
	u, err := url.Parse(referer)
	if err != nil || u.Host == "" || !strings.EqualFold(u.Host, host) {
		return ListingPath
	}
	target := u.EscapedPath()
	if target == "" {
		target = "/"
	}
	// "//host/x" is protocol-relative and would leave the site.
	if target == current || strings.HasPrefix(target, "//") {
		return ListingPath
	}
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}
	return target
}
