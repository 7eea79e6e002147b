package messages_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/garagekit/pkg/forms"
	"github.com/dmitrymomot/garagekit/pkg/messages"
	"github.com/dmitrymomot/garagekit/pkg/validator"
)

func newCatalog(t *testing.T) *messages.Catalog {
	t.Helper()
	c, err := messages.New(context.Background())
	require.NoError(t, err)
	return c
}

// failingRecords produces every record-level failure at least once.
func failingRecords() []validator.Result {
	clock := validator.FixedClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	return []validator.Result{
		forms.ValidateLoginRequest(forms.LoginData{}),
		forms.ValidateLoginRequest(forms.LoginData{Email: "x", Phone: "1", Password: "abc"}),
		forms.ValidateUserRegistration(forms.UserRegistrationData{Email: "bad", Password: "ab", ConfirmPassword: "x"}),
		forms.ValidateProfileUpdate(forms.ProfileUpdateData{
			Name: "A", Address: strings.Repeat("a", 300), Password: "new", ConfirmPassword: "other",
		}),
		forms.ValidateNewPassword(forms.NewPasswordData{}),
		forms.ValidateTechnicianRegistration(forms.TechnicianRegistrationData{}),
		forms.ValidateTechnicianProfileUpdate(forms.TechnicianProfileUpdateData{
			Specialization: "x", Bio: strings.Repeat("b", 600), YearsOfExperience: validator.Ptr(70.0),
		}),
		forms.ValidateAvailabilityUpdate(forms.AvailabilityUpdateData{}),
		forms.ValidateAvailabilityUpdate(forms.AvailabilityUpdateData{IsAvailable: validator.Ptr(true)}),
		forms.ValidateServiceAreaUpdate(forms.ServiceAreaUpdateData{}),
		forms.ValidateServiceAreaUpdate(forms.ServiceAreaUpdateData{Areas: []forms.ServiceArea{{}, {}}}),
		forms.ValidateSkillUpdate(forms.SkillUpdateData{}),
		forms.ValidateSkillUpdate(forms.SkillUpdateData{Skills: []forms.Skill{{CertificationDate: "never"}}}),
		forms.ValidateRescueRequest(forms.RescueRequestData{Notes: strings.Repeat("n", 1200)}),
		forms.ValidateRescueCreation(forms.RescueCreationData{ContactPhone: "1"}),
		forms.ValidateStatusUpdate(forms.StatusUpdateData{Status: "bogus"}),
		forms.ValidateStatusUpdate(forms.StatusUpdateData{Status: forms.StatusAccepted}),
		forms.ValidateStatusUpdate(forms.StatusUpdateData{Status: forms.StatusCompleted}),
		forms.ValidateStatusUpdate(forms.StatusUpdateData{Status: forms.StatusCancelled}),
		forms.ValidateFeedbackSubmission(forms.FeedbackSubmissionData{Rating: "x", Comments: strings.Repeat("c", 1100)}),
		forms.ValidateEtaUpdate(forms.EtaUpdateData{EstimatedArrival: "later"}, clock),
		forms.ValidateEtaUpdate(forms.EtaUpdateData{EstimatedArrival: "2020-01-01"}, clock),
		forms.ValidateLocationUpdate(forms.LocationUpdateData{Heading: validator.Ptr(-1.0), Speed: validator.Ptr(-1.0)}),
	}
}

func failingFields() []validator.FieldResult {
	return []validator.FieldResult{
		validator.ValidateTextField("", validator.TextFieldOptions{Required: true, Label: "Vehicle type"}),
		validator.ValidateTextField("a", validator.TextFieldOptions{MinLength: 3}),
		validator.ValidateTextField("abcd", validator.TextFieldOptions{MaxLength: 3}),
		validator.ValidateEmailField("a@b", validator.EmailFieldOptions{}),
		validator.ValidatePhoneField("12", validator.PhoneFieldOptions{}),
		validator.ValidatePasswordField("abc", validator.PasswordFieldOptions{}),
		validator.ValidatePasswordField("abcdefg", validator.PasswordFieldOptions{RequireSpecialChar: true}),
		validator.ValidatePasswordField("abcdefg", validator.PasswordFieldOptions{RequireNumber: true}),
		validator.ValidatePasswordField("abcdefg", validator.PasswordFieldOptions{RequireUppercase: true}),
		validator.ValidateConfirmPasswordField("a", validator.ConfirmPasswordFieldOptions{Password: "b"}),
		validator.ValidateNumberField("x", validator.NumberFieldOptions{}),
		validator.ValidateNumberField(0, validator.NumberFieldOptions{Min: validator.Ptr(0.5)}),
		validator.ValidateNumberField(9, validator.NumberFieldOptions{Max: validator.Ptr(5.0)}),
		validator.ValidateNumberField(1.5, validator.NumberFieldOptions{Integer: true}),
		validator.ValidateSelectField("z", validator.SelectFieldOptions{AllowedValues: []string{"a", "b"}}),
	}
}

func TestEnglishCatalogMatchesDefaultMessages(t *testing.T) {
	t.Parallel()
	c := newCatalog(t)

	for _, res := range failingRecords() {
		require.False(t, res.IsValid)
		for _, err := range res.Details {
			if err.TranslationKey == validator.KeyPlateFormat {
				continue
			}
			assert.Equal(t, err.Message, c.Localize("en", err), err.TranslationKey)
			assert.True(t, c.Translator().HasTranslation("en", err.TranslationKey), err.TranslationKey)
		}
	}

	for _, res := range failingFields() {
		require.False(t, res.IsValid)
		assert.Equal(t, res.Error, c.LocalizeField("en", res).Error, res.Detail.TranslationKey)
	}
}

func TestVietnameseCatalogCoversEveryKey(t *testing.T) {
	t.Parallel()
	c := newCatalog(t)

	for _, res := range failingRecords() {
		for _, err := range res.Details {
			assert.True(t, c.Translator().HasTranslation("vi", err.TranslationKey), err.TranslationKey)
		}
	}
	for _, res := range failingFields() {
		assert.True(t, c.Translator().HasTranslation("vi", res.Detail.TranslationKey), res.Detail.TranslationKey)
	}
}

func TestLicensePlateMessages(t *testing.T) {
	t.Parallel()
	c := newCatalog(t)

	required := validator.ValidateLicensePlateField("", validator.LicensePlateFieldOptions{Required: true})
	format := validator.ValidateLicensePlateField("ABCDE", validator.LicensePlateFieldOptions{})

	assert.Equal(t, required.Error, c.LocalizeField("vi", required).Error)
	assert.Equal(t, format.Error, c.LocalizeField("vi", format).Error)

	assert.Equal(t, "License plate is required", c.LocalizeField("en", required).Error)
	assert.Equal(t, "License plate has an invalid format (e.g. 92H-89873, 51F-1234, 30A-123.45)",
		c.LocalizeField("en", format).Error)
}

func TestLocalizeResult(t *testing.T) {
	t.Parallel()
	c := newCatalog(t)

	res := forms.ValidateServiceAreaUpdate(forms.ServiceAreaUpdateData{
		Areas: []forms.ServiceArea{{Name: "", Center: *validator.NewLocation(200, 0), Radius: -1}},
	})

	vi := c.LocalizeResult("vi-VN", res)
	assert.False(t, vi.IsValid)
	assert.Equal(t, []string{
		"Khu vực thứ 0 chưa có tên",
		"Khu vực thứ 0 cần vị trí trung tâm hợp lệ",
		"Bán kính của khu vực thứ 0 phải là số dương",
	}, vi.Errors)
	assert.Equal(t, res.Details.Fields(), vi.Details.Fields())
	assert.Equal(t, "Area name is required for area at index 0", res.Errors[0], "source result is not modified")

	fallback := c.LocalizeResult("ja", res)
	assert.Equal(t, res.Errors, fallback.Errors)

	valid := validator.Collect()
	assert.Equal(t, valid, c.LocalizeResult("vi", valid))
}

func TestLocalizeTranslatesDefaultLabels(t *testing.T) {
	t.Parallel()
	c := newCatalog(t)

	res := validator.ValidatePhoneField("", validator.PhoneFieldOptions{Required: true})
	assert.Equal(t, "Số điện thoại là bắt buộc", c.LocalizeField("vi", res).Error)

	custom := validator.ValidateTextField("", validator.TextFieldOptions{Required: true, Label: "Biển kiểm soát"})
	assert.Equal(t, "Biển kiểm soát là bắt buộc", c.LocalizeField("vi", custom).Error)
}

func TestLocalizeUnknownKey(t *testing.T) {
	t.Parallel()
	c := newCatalog(t)

	err := validator.ValidationError{Message: "Custom failure", TranslationKey: "custom.unknown"}
	assert.Equal(t, "Custom failure", c.Localize("vi", err))
	assert.Equal(t, "No key", c.Localize("vi", validator.ValidationError{Message: "No key"}))
}

func TestCatalogLanguagesAndExport(t *testing.T) {
	t.Parallel()
	c := newCatalog(t)

	assert.Equal(t, []string{"en", "vi"}, c.Languages())
	assert.Equal(t, "vi", c.Resolve("vi-VN"))
	assert.Equal(t, "en", c.Resolve("fr"))

	out, err := c.ExportJSON("vi")
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, decoded, "forms")
	assert.Contains(t, decoded, "validation")
}

func TestNewWithDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en.yaml"),
		[]byte("en:\n  forms:\n    name_required: \"Tell us your name\"\n"), 0o600))

	c, err := messages.New(context.Background(), messages.WithDirectory(dir))
	require.NoError(t, err)

	res := forms.ValidateUserRegistration(forms.UserRegistrationData{})
	assert.Equal(t, "Tell us your name", c.LocalizeResult("en", res).Errors[0])

	_, err = messages.New(context.Background(), messages.WithDirectory(filepath.Join(dir, "missing")))
	assert.ErrorIs(t, err, messages.ErrCatalogUnavailable)
}

func TestNewWithFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(jsonPath,
		[]byte(`{"vi":{"forms":{"name_required":"Vui lòng nhập tên"}}}`), 0o600))

	c, err := messages.New(context.Background(), messages.WithFile(jsonPath), messages.WithDefaultLanguage("vi"))
	require.NoError(t, err)

	res := forms.ValidateUserRegistration(forms.UserRegistrationData{})
	assert.Equal(t, "Vui lòng nhập tên", c.LocalizeResult("vi", res).Errors[0])

	_, err = messages.New(context.Background(), messages.WithFile(filepath.Join(dir, "missing.json")))
	assert.ErrorIs(t, err, messages.ErrCatalogUnavailable)
}

func TestLocalizeBlankEntryKeepsDefaultMessage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "en.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"en":{"validation":{"required":"","email":"  "},"forms":{"name_required":""}}}`), 0o600))

	c, err := messages.New(context.Background(), messages.WithFile(path))
	require.NoError(t, err)

	required := c.LocalizeField("en", validator.ValidateTextField("", validator.TextFieldOptions{Required: true, Label: "Notes"}))
	assert.False(t, required.IsValid)
	assert.Equal(t, "Notes is required", required.Error)

	email := c.LocalizeField("en", validator.ValidateEmailField("a@b", validator.EmailFieldOptions{}))
	assert.Equal(t, "Email must be a valid email address", email.Error)

	res := c.LocalizeResult("en", forms.ValidateUserRegistration(forms.UserRegistrationData{}))
	require.False(t, res.IsValid)
	assert.Equal(t, "Name is required", res.Errors[0])
	for _, msg := range res.Errors {
		assert.NotEmpty(t, msg)
	}
}
