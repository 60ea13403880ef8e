package projects

import (
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("project not found")
	ErrInvalidCatalog = errors.New("invalid project catalog")
)

// Project is a single portfolio entry. Projects are owned by a Source and are
// read-only to everything rendering them.
type Project struct {
	Slug            string       `json:"slug" yaml:"slug" validate:"required,slug"`
	Title           string       `json:"title" yaml:"title" validate:"required"`
	Description     string       `json:"description" yaml:"description" validate:"required"`
	LongDescription string       `json:"long_description,omitempty" yaml:"long_description"`
	Category        string       `json:"category" yaml:"category" validate:"required"`
	Completed       time.Time    `json:"completed" yaml:"completed"`
	Technologies    []string     `json:"technologies" yaml:"technologies" validate:"dive,required"`
	Featured        bool         `json:"featured" yaml:"featured"`
	WebsiteURL      string       `json:"website_url,omitempty" yaml:"website_url" validate:"omitempty,url"`
	Image           string       `json:"image" yaml:"image"`
	Gallery         []string     `json:"gallery" yaml:"gallery" validate:"dive,required"`
	Testimonial     *Testimonial `json:"testimonial,omitempty" yaml:"testimonial" validate:"omitempty"`
}

type Testimonial struct {
	Text   string `json:"text" yaml:"text" validate:"required"`
	Author string `json:"author" yaml:"author" validate:"required"`
	Role   string `json:"role,omitempty" yaml:"role"`
}

// CompletedLabel formats the completion date for display, e.g. "March 2024".
func (p Project) CompletedLabel() string {
	if p.Completed.IsZero() {
		return ""
	}
	return p.Completed.Format("January 2006")
}

func (p Project) HasGallery() bool {
	return len(p.Gallery) > 0
}
