package ui

import (
	"html/template"
	"strings"
)

type BadgeVariant string

const (
	BadgeVariantDefault   BadgeVariant = "default"
	BadgeVariantPrimary   BadgeVariant = "primary"
	BadgeVariantSecondary BadgeVariant = "secondary"
	BadgeVariantSuccess   BadgeVariant = "success"
	BadgeVariantWarning   BadgeVariant = "warning"
	BadgeVariantDanger    BadgeVariant = "danger"
	BadgeVariantOutline   BadgeVariant = "outline"
)

// BadgeVariants lists every supported badge variant.
var BadgeVariants = []BadgeVariant{
	BadgeVariantDefault,
	BadgeVariantPrimary,
	BadgeVariantSecondary,
	BadgeVariantSuccess,
	BadgeVariantWarning,
	BadgeVariantDanger,
	BadgeVariantOutline,
}

// Size is shared by badges and buttons.
type Size string

const (
	SizeSm Size = "sm"
	SizeMd Size = "md"
	SizeLg Size = "lg"
)

var Sizes = []Size{SizeSm, SizeMd, SizeLg}

// Badge is a small inline label.
type Badge struct {
	Variant BadgeVariant
	Size    Size
	Class   string
}

// Render wraps content in the badge span. Plain strings are escaped.
func (b Badge) Render(content any) template.HTML {
	return render("badge", badgeView{Class: badgeClasses(b), Content: content})
}

type badgeView struct {
	Class   string
	Content any
}

func badgeClasses(b Badge) string {
	var classes []string

	// Base classes
	classes = append(classes, "inline-flex items-center rounded-full border font-semibold transition-colors")

	switch b.Size {
	case SizeSm:
		classes = append(classes, "px-2 py-0.5 text-xs")
	case SizeLg:
		classes = append(classes, "px-3 py-1 text-sm")
	default: // SizeMd
		classes = append(classes, "px-2.5 py-0.5 text-xs")
	}

	switch b.Variant {
	case BadgeVariantPrimary:
		classes = append(classes, "border-transparent bg-indigo-600 text-white")
	case BadgeVariantSecondary:
		classes = append(classes, "border-transparent bg-neutral-200 text-black")
	case BadgeVariantSuccess:
		classes = append(classes, "border-transparent bg-green-600 text-white")
	case BadgeVariantWarning:
		classes = append(classes, "border-transparent bg-orange-400 text-white")
	case BadgeVariantDanger:
		classes = append(classes, "border-transparent bg-red-500 text-white")
	case BadgeVariantOutline:
		classes = append(classes, "border-neutral-300 text-neutral-700")
	default: // BadgeVariantDefault
		classes = append(classes, "border-transparent bg-black text-white")
	}

	if b.Class != "" {
		classes = append(classes, b.Class)
	}

	return strings.Join(classes, " ")
}
