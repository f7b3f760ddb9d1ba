package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-passfield/pkg/config"
	"github.com/goliatone/go-passfield/pkg/field"
	"github.com/goliatone/go-passfield/pkg/prompt"
	"github.com/goliatone/go-passfield/pkg/strength"
)

func runCheck(ctx context.Context, args []string, env environment, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", env.ConfigPath, "JSON or YAML config file")
	themeDir := fs.String("theme-dir", env.ThemeDir, "directory of go-theme manifests for the configured theme")
	minimum := fs.String("min", "weak", "minimum strength to accept (weak, medium, strong)")
	attempts := fs.Int("attempts", 3, "number of interactive attempts")
	fromStdin := fs.Bool("stdin", false, "classify one password per line from stdin")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	minStrength, err := strength.ParseStrength(*minimum)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return errUsage
	}

	cfg, err := loadConfig(*configPath, *themeDir)
	if err != nil {
		return err
	}
	f, err := newField(cfg)
	if err != nil {
		return err
	}

	if *fromStdin {
		return checkLines(stdin, stdout, f, minStrength)
	}

	sess, err := prompt.NewSession(prompt.NewSurveyDriver(stdout),
		prompt.WithField(f),
		prompt.WithMinimum(minStrength),
		prompt.WithAttempts(*attempts),
	)
	if err != nil {
		return err
	}
	_, err = sess.Run(ctx)
	return err
}

func newField(cfg config.Config) (*field.Field, error) {
	classifier, err := cfg.Classifier()
	if err != nil {
		return nil, err
	}
	return field.New(
		field.WithClassifier(classifier),
		field.WithIndicator(cfg.Indicator()),
	), nil
}

// checkLines prints "<strength>\t<indicator>" for each line and fails when any
// line is below minimum. Lines may be of any length; a trailing "\r" is
// dropped.
func checkLines(in io.Reader, out io.Writer, f *field.Field, minimum strength.Strength) error {
	reader := bufio.NewReader(in)
	var lineNo, below int
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return fmt.Errorf("read line %d: %w", lineNo+1, readErr)
		}
		if line == "" && readErr == io.EOF {
			break
		}
		lineNo++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		update, err := f.SetText(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if _, err := fmt.Fprintf(out, "%s\t%s\n", update.Strength, prompt.FormatState(update.State)); err != nil {
			return err
		}
		if !update.Strength.AtLeast(minimum) {
			below++
		}
		if readErr == io.EOF {
			break
		}
	}
	if below > 0 {
		return fmt.Errorf("%w: %d password(s) below %s", prompt.ErrTooWeak, below, minimum)
	}
	return nil
}
