package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/garagekit/pkg/validator"
)

func TestIsValidLicensePlate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		plate string
		want  bool
	}{
		{"92H-89873", true},
		{"92h-89873", true},
		{"  51f-1234 ", true},
		{"30A-123.45", true},
		{"29LD-12345", true},
		{"59X1-123.45", true},
		{"ABCDE", false},
		{"92H89873", false},
		{"9H-89873", false},
		{"92H-898", false},
		{"92H-123456", false},
		{"30A-12.345", false},
	}

	for _, tt := range tests {
		t.Run(tt.plate, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.IsValidLicensePlate(tt.plate))
		})
	}
}

func TestNormalizeLicensePlate(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "51F-1234", validator.NormalizeLicensePlate(" 51f-1234\t"))
}

func TestValidateLicensePlateField(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		res := validator.ValidateLicensePlateField("92h-89873", validator.LicensePlateFieldOptions{})
		assert.True(t, res.IsValid)
		assert.Empty(t, res.Error)
	})

	t.Run("required", func(t *testing.T) {
		t.Parallel()
		res := validator.ValidateLicensePlateField("", validator.LicensePlateFieldOptions{Required: true})
		require.False(t, res.IsValid)
		assert.Equal(t, "Vui lòng nhập Biển số xe", res.Error)
		assert.Equal(t, validator.KeyPlateRequired, res.Detail.TranslationKey)
	})

	t.Run("format", func(t *testing.T) {
		t.Parallel()
		res := validator.ValidateLicensePlateField("ABCDE", validator.LicensePlateFieldOptions{Label: "Plate"})
		require.False(t, res.IsValid)
		assert.Equal(t, "Plate không đúng định dạng (VD: 92H-89873, 51F-1234, 30A-123.45)", res.Error)
		assert.Equal(t, validator.KeyPlateFormat, res.Detail.TranslationKey)
		assert.Equal(t, "Plate", res.Detail.TranslationValues["label"])
	})
}
