package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/boardtile/pkg/errors"
)

type swatch struct {
	Name  string `yaml:"name" validate:"required"`
	Color string `yaml:"color" validate:"required,tilecolor"`
}

type palette struct {
	Swatches []swatch `yaml:"swatches" validate:"min=1,dive"`
	MaxShade int      `validate:"gte=0"`
}

func TestStruct_Valid(t *testing.T) {
	t.Parallel()

	p := palette{Swatches: []swatch{{Name: "sky", Color: "#3498DB"}, {Name: "red", Color: "196"}}}
	require.NoError(t, Struct(p, "palette"))
}

func TestStruct_FieldPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   palette
		field   string
		message string
	}{
		{
			name:    "yaml tag path into a slice",
			input:   palette{Swatches: []swatch{{Name: "a", Color: "#fff"}, {Name: "b", Color: "nope"}}},
			field:   "swatches[1].color",
			message: `"nope" is not a hex or ANSI color`,
		},
		{
			name:    "snake cased untagged field",
			input:   palette{Swatches: []swatch{{Name: "a", Color: "#fff"}}, MaxShade: -1},
			field:   "max_shade",
			message: "failed validation for tag 'gte'",
		},
		{
			name:    "required",
			input:   palette{Swatches: []swatch{{Color: "#fff"}}},
			field:   "swatches[0].name",
			message: "failed validation for tag 'required'",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Struct(tt.input, "palette")
			require.Error(t, err)

			var ve *apperrors.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestStruct_NonStructUsesSubject(t *testing.T) {
	t.Parallel()

	err := Struct(42, "palette")
	require.Error(t, err)

	var ve *apperrors.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "palette", ve.Field)
}

func TestSnakeCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "background_color", SnakeCase("BackgroundColor"))
	assert.Equal(t, "label", SnakeCase("Label"))
	assert.Equal(t, "", SnakeCase(""))
}
