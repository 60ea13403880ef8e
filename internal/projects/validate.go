package projects

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// validatorInstance configures and returns the shared validator instance.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})
	return validateInst
}

// ValidSlug reports whether s is a well-formed project slug.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Validate checks a single project.
func (p Project) Validate() error {
	if err := validatorInstance().Struct(p); err != nil {
		return fmt.Errorf("project %q: %w", p.Slug, describe(err))
	}
	return nil
}

// ValidateCatalog checks every project and rejects duplicate slugs. Errors wrap
// ErrInvalidCatalog.
func ValidateCatalog(list []Project) error {
	seen := make(map[string]int, len(list))
	var problems []string

	for i, p := range list {
		if err := p.Validate(); err != nil {
			problems = append(problems, err.Error())
		}
		if first, dup := seen[p.Slug]; dup && p.Slug != "" {
			problems = append(problems, fmt.Sprintf("slug %q repeated at positions %d and %d", p.Slug, first, i))
			continue
		}
		seen[p.Slug] = i
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(problems, "; "))
	}
	return nil
}

func describe(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%s", strings.Join(parts, ", "))
}
