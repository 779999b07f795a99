package deck

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	kiterrors "github.com/cardkit/cardkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	cardIDPattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// validatorInstance configures and returns the shared validator instance used
// across the deck package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("card_id", func(fl validator.FieldLevel) bool {
			return cardIDPattern.MatchString(fl.Field().String())
		})

		// A class token is any non-empty string without whitespace. Tokens
		// are never rewritten, so duplicates and odd names pass through.
		_ = v.RegisterValidation("css_class", func(fl validator.FieldLevel) bool {
			token := fl.Field().String()
			return token != "" && !strings.ContainsAny(token, " \t\n")
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDeck performs structural and cross-field validation on an entire
// deck document.
func ValidateDeck(d *Deck) error {
	if d == nil {
		return kiterrors.NewValidationError("deck", "deck is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(d); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(d.Cards))
	for i, c := range d.Cards {
		if _, exists := seen[c.ID]; exists {
			return kiterrors.NewValidationError(fieldForCard(i, "id"), fmt.Sprintf("duplicate card id %q", c.ID), nil)
		}
		seen[c.ID] = i

		if c.Overlay != nil && c.Image == nil {
			return kiterrors.NewValidationError(fieldForCard(i, "overlay"), "overlay requires an image on the same card", nil)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return kiterrors.NewValidationError(field, msg, err)
	}

	return kiterrors.NewValidationError("deck", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForCard(index int, field string) string {
	return fmt.Sprintf("cards[%d].%s", index, field)
}
