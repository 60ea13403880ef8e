package ui

import (
	"context"
	"errors"
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	errs []error
	msgs []string
}

func (s *recordingSink) Error(err error, msg string) {
	s.errs = append(s.errs, err)
	s.msgs = append(s.msgs, msg)
}

func TestButtonRendersEveryVariantAndSize(t *testing.T) {
	for _, v := range ButtonVariants {
		for _, s := range Sizes {
			b := &Button{Label: "Save", Variant: v, Size: s}
			out := string(b.Render())
			assert.True(t, strings.HasPrefix(out, `<button type="button"`), "%s/%s: %s", v, s, out)
			assert.Contains(t, out, "<span>Save</span>")
		}
	}
}

func TestButtonActivateInvokesHandler(t *testing.T) {
	calls := 0
	b := &Button{Label: "Go", OnClick: func(context.Context) error {
		calls++
		return nil
	}}

	assert.True(t, b.Activate(context.Background()))
	assert.Equal(t, 1, calls)
}

func TestButtonInertStatesIgnoreActivation(t *testing.T) {
	tests := []struct {
		name string
		b    Button
	}{
		{"disabled", Button{Disabled: true}},
		{"loading", Button{Loading: true}},
		{"both", Button{Disabled: true, Loading: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			b := tt.b
			b.OnClick = func(context.Context) error {
				calls++
				return nil
			}
			assert.False(t, b.Activate(context.Background()))
			assert.Zero(t, calls)
		})
	}
}

func TestButtonWithoutHandler(t *testing.T) {
	b := &Button{Label: "Nothing"}
	assert.False(t, b.Activate(context.Background()))
}

func TestButtonHandlerErrorIsSwallowedAndReported(t *testing.T) {
	sink := &recordingSink{}
	b := &Button{Label: "Reload", Sink: sink, OnClick: func(context.Context) error {
		return errors.New("source offline")
	}}

	assert.NotPanics(t, func() {
		assert.True(t, b.Activate(context.Background()))
	})
	require.Len(t, sink.errs, 1)
	assert.Contains(t, sink.errs[0].Error(), "source offline")
	assert.Contains(t, sink.errs[0].Error(), `"Reload"`)
	assert.Equal(t, "button handler failed", sink.msgs[0])
}

func TestButtonHandlerPanicIsRecovered(t *testing.T) {
	sink := &recordingSink{}
	b := &Button{Label: "Crash", Sink: sink, OnClick: func(context.Context) error {
		panic("kaboom")
	}}

	var invoked bool
	assert.NotPanics(t, func() {
		invoked = b.Activate(context.Background())
	})
	assert.True(t, invoked)
	require.Len(t, sink.errs, 1)
	assert.Contains(t, sink.errs[0].Error(), "kaboom")
	assert.Equal(t, "button handler panicked", sink.msgs[0])
}

func TestButtonPanicWithoutSink(t *testing.T) {
	b := &Button{OnClick: func(context.Context) error { panic(errors.New("boom")) }}
	assert.NotPanics(t, func() { b.Activate(context.Background()) })
}

func TestButtonDisabledMarkup(t *testing.T) {
	b := &Button{Label: "Send", Action: "/admin/actions/send", Disabled: true}
	out := string(b.Render())

	assert.Contains(t, out, " disabled")
	assert.Contains(t, out, `aria-disabled="true"`)
	assert.NotContains(t, out, "hx-post")
	assert.NotContains(t, out, "hover:")
	assert.Contains(t, out, "cursor-not-allowed")
}

func TestButtonLoadingMarkup(t *testing.T) {
	b := &Button{Label: "Send", Loading: true}
	out := string(b.Render())

	assert.Contains(t, out, `aria-busy="true"`)
	assert.Contains(t, out, `aria-disabled="true"`)
	assert.Contains(t, out, `<span class="sr-only">Loading…</span>`)
	assert.NotContains(t, out, "<span>Send</span>")
}

func TestButtonAccessibilityAttributes(t *testing.T) {
	b := &Button{Label: "X", AriaLabel: "Close gallery", AriaDescribedBy: "gallery-help"}
	out := string(b.Render())

	assert.Contains(t, out, `aria-label="Close gallery"`)
	assert.Contains(t, out, `aria-describedby="gallery-help"`)
	assert.NotContains(t, out, "aria-disabled")
}

func TestButtonIconsAndFullWidth(t *testing.T) {
	b := &Button{
		Label:        "Next",
		LeadingIcon:  template.HTML(`<svg id="lead"></svg>`),
		TrailingIcon: template.HTML(`<svg id="trail"></svg>`),
		FullWidth:    true,
	}
	out := string(b.Render())

	assert.Contains(t, out, `<svg id="lead"></svg>`)
	assert.Contains(t, out, `<svg id="trail"></svg>`)
	assert.Less(t, strings.Index(out, "lead"), strings.Index(out, "Next"))
	assert.Less(t, strings.Index(out, "Next"), strings.Index(out, "trail"))
	assert.Contains(t, out, "w-full")
}

func TestButtonHrefRendersAnchor(t *testing.T) {
	b := &Button{Label: "Home", Href: "/", Variant: ButtonVariantOutline}
	out := string(b.Render())
	assert.True(t, strings.HasPrefix(out, `<a class="`))
	assert.Contains(t, out, `href="/"`)

	b.Disabled = true
	out = string(b.Render())
	assert.NotContains(t, out, "href=")
	assert.Contains(t, out, `tabindex="-1"`)
}

func TestButtonActionAndTarget(t *testing.T) {
	b := &Button{Label: "Reload", Action: "/admin/actions/reload", Target: "#result", Type: "submit"}
	out := string(b.Render())
	assert.Contains(t, out, `type="submit"`)
	assert.Contains(t, out, `hx-post="/admin/actions/reload"`)
	assert.Contains(t, out, `hx-target="#result"`)
}

func TestButtonUnknownVariantFallsBack(t *testing.T) {
	got := buttonClasses(&Button{Variant: "neon", Size: "huge"})
	want := buttonClasses(&Button{Variant: ButtonVariantPrimary, Size: SizeMd})
	assert.Equal(t, want, got)
}

func TestButtonEscapesLabel(t *testing.T) {
	b := &Button{Label: `<img src=x onerror=alert(1)>`}
	out := string(b.Render())
	assert.NotContains(t, out, "<img")
}
