package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid showcase")

// ValidationError names the offending field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", ErrInvalidConfig, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidConfig, e.Message)
}

// Is lets errors.Is match ErrInvalidConfig.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	sectionIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("section_id", func(fl validator.FieldLevel) bool {
			return sectionIDPattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks field rules and cross-field constraints.
func Validate(sc *Showcase) error {
	if sc == nil {
		return &ValidationError{Message: "showcase is nil"}
	}
	if err := validatorInstance().Struct(sc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(sc.Sections))
	for i, section := range sc.Sections {
		if prev, ok := seen[section.ID]; ok {
			return &ValidationError{
				Field:   fmt.Sprintf("sections[%d].id", i),
				Message: fmt.Sprintf("duplicate section id %q (also sections[%d])", section.ID, prev),
			}
		}
		seen[section.ID] = i
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := fieldPath(fe)
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("failed validation for tag '%s'", fe.Tag()),
			Err:     err,
		}
	}
	return &ValidationError{Message: err.Error(), Err: err}
}

// fieldPath turns "Showcase.Carousel.Slides[0].Image" into
// "carousel.slides[0].image".
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = snake(p)
	}
	return strings.Join(parts, ".")
}

func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] != '[' && !(s[i-1] >= 'A' && s[i-1] <= 'Z') {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
