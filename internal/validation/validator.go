// Package validation holds the one validator instance shared by tile and
// config validation, with the custom tags both of them use.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/boardtile/internal/colorutil"
	apperrors "github.com/alexisbeaulieu97/boardtile/pkg/errors"
)

// TagTileColor accepts a hex ("#RGB", "#RRGGBB") or ANSI ("0"-"255") colour.
const TagTileColor = "tilecolor"

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Instance returns the shared validator. Field names come from yaml tags,
// or the snake_cased Go name for untagged fields.
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			switch name {
			case "-":
				return ""
			case "":
				return SnakeCase(fld.Name)
			}
			return name
		})

		_ = v.RegisterValidation(TagTileColor, func(fl validator.FieldLevel) bool {
			return colorutil.Valid(lipgloss.Color(fl.Field().String()))
		})

		validateInst = v
	})

	return validateInst
}

// Struct validates s and converts the first failure into a ValidationError
// keyed by its path below the root, e.g. "board.tiles[1].color". subject
// names the failure when it is not tied to a field.
func Struct(s any, subject string) error {
	if err := Instance().Struct(s); err != nil {
		return convert(err, subject)
	}
	return nil
}

func convert(err error, subject string) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return apperrors.NewValidationError(subject, err.Error(), err)
	}

	ve := ves[0]
	field := fieldPath(ve)
	msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
	if ve.Tag() == TagTileColor {
		msg = fmt.Sprintf("%s %q is not a hex or ANSI color", field, ve.Value())
	}
	return apperrors.NewValidationError(field, msg, err)
}

// fieldPath drops the root struct name from the namespace:
// "Config.board.tiles[1].color" becomes "board.tiles[1].color".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

// SnakeCase converts a Go field name: "BackgroundColor" -> "background_color".
func SnakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
