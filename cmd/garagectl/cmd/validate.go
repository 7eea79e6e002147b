package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/garagekit/pkg/forms"
	"github.com/dmitrymomot/garagekit/pkg/messages"
	"github.com/dmitrymomot/garagekit/pkg/validator"
)

type validateOptions struct {
	lang         string
	asJSON       bool
	now          string
	translations string
}

func newValidateCommand() *cobra.Command {
	var opts validateOptions

	cmd := &cobra.Command{
		Use:   "validate <form> [file|-]",
		Short: "Validate a JSON payload against a form",
		Long: `Validate reads a JSON record from a file, or from stdin when the file is
omitted or "-", and prints the failures in the requested language.

The exit code is 1 when the payload is invalid.`,
		Example: `  garagectl validate login payload.json
  echo '{"email":""}' | garagectl validate password_reset --lang vi --json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.lang, "lang", "l", messages.DefaultLanguage, "message language")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")
	cmd.Flags().StringVar(&opts.now, "now", "", "evaluate time-dependent rules at this RFC 3339 instant")
	cmd.Flags().StringVar(&opts.translations, "translations", "", "load catalogs from this directory or .yaml/.json file instead of the embedded ones")
	return cmd
}

func runValidate(cmd *cobra.Command, args []string, opts validateOptions) error {
	form, err := forms.Lookup(args[0])
	if err != nil {
		return err
	}

	var clock validator.Clock
	if opts.now != "" {
		t, err := time.Parse(time.RFC3339, opts.now)
		if err != nil {
			return fmt.Errorf("invalid --now: %w", err)
		}
		clock = validator.FixedClock(t)
	}

	data, err := readPayload(cmd, args)
	if err != nil {
		return err
	}

	var catalogOpts []messages.Option
	if opts.translations != "" {
		info, err := os.Stat(opts.translations)
		if err != nil {
			return fmt.Errorf("invalid --translations: %w", err)
		}
		if info.IsDir() {
			catalogOpts = append(catalogOpts, messages.WithDirectory(opts.translations))
		} else {
			catalogOpts = append(catalogOpts, messages.WithFile(opts.translations))
		}
	}
	catalog, err := messages.New(cmd.Context(), catalogOpts...)
	if err != nil {
		return err
	}

	res, err := form.Validate(data, clock)
	if err != nil {
		return err
	}
	lang := catalog.Resolve(opts.lang)
	res = catalog.LocalizeResult(lang, res)

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else {
		printResult(out, form.Name, res)
	}

	if !res.IsValid {
		return ErrInvalid
	}
	return nil
}

func readPayload(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) < 2 || args[1] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[1])
}

func printResult(w io.Writer, form string, res validator.Result) {
	if res.IsValid {
		fmt.Fprintf(w, "%s: valid\n", form)
		return
	}
	fmt.Fprintf(w, "%s: %d error(s)\n", form, len(res.Errors))
	for _, e := range res.Details {
		fmt.Fprintf(w, "  %-20s %s\n", e.Field, e.Message)
	}
}
