package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/garagekit/cmd/garagectl/cmd"
	"github.com/dmitrymomot/garagekit/pkg/forms"
	"github.com/dmitrymomot/garagekit/pkg/validator"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := cmd.NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestForms(t *testing.T) {
	t.Parallel()
	out, err := run(t, "", "forms")
	require.NoError(t, err)
	for _, name := range forms.Names() {
		assert.Contains(t, out, name)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid from stdin", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, `{"email":"a@garage.vn"}`, "validate", "password_reset")
		require.NoError(t, err)
		assert.Equal(t, "password_reset: valid\n", out)
	})

	t.Run("invalid prints localized errors", func(t *testing.T) {
		t.Parallel()
		out, err := run(t, `{}`, "validate", "login", "-", "--lang", "vi")
		assert.ErrorIs(t, err, cmd.ErrInvalid)
		assert.Contains(t, out, "login: 2 error(s)")
		assert.Contains(t, out, "Vui lòng nhập mật khẩu")
	})

	t.Run("json output from file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "rescue.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"vehicleType":"car"}`), 0o600))

		out, err := run(t, "", "validate", "rescue_request", path, "--json")
		assert.ErrorIs(t, err, cmd.ErrInvalid)

		var res validator.Result
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.False(t, res.IsValid)
		assert.Contains(t, res.Errors, "Valid location is required")
	})

	t.Run("fixed now", func(t *testing.T) {
		t.Parallel()
		payload := `{"rescueId":"r-1","estimatedArrival":"2026-03-01T10:00:00Z"}`
		_, err := run(t, payload, "validate", "eta_update", "--now", "2026-03-01T09:00:00Z")
		assert.NoError(t, err)
		_, err = run(t, payload, "validate", "eta_update", "--now", "2026-03-01T11:00:00Z")
		assert.ErrorIs(t, err, cmd.ErrInvalid)
	})

	t.Run("translations file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "en.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"en":{"forms":{"password_required":"Type a password"}}}`), 0o600))

		out, err := run(t, `{}`, "validate", "login", "--translations", path)
		assert.ErrorIs(t, err, cmd.ErrInvalid)
		assert.Contains(t, out, "Type a password")
	})

	t.Run("missing translations path", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, `{}`, "validate", "login", "--translations", filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, cmd.ErrInvalid)
	})

	t.Run("unknown form", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, `{}`, "validate", "invoice")
		assert.ErrorIs(t, err, forms.ErrUnknownForm)
	})

	t.Run("malformed payload", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, `{"email":`, "validate", "login")
		assert.ErrorIs(t, err, forms.ErrMalformedInput)
	})

	t.Run("bad now flag", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, `{}`, "validate", "login", "--now", "tomorrow")
		require.Error(t, err)
		assert.NotErrorIs(t, err, cmd.ErrInvalid)
	})

	t.Run("missing form argument", func(t *testing.T) {
		t.Parallel()
		_, err := run(t, "", "validate")
		assert.Error(t, err)
	})
}
