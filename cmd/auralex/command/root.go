// SPDX-License-Identifier: MIT

// Package command implements the auralex command line.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"gitlab.com/fisherprime/auralex/lexeme"
	"gitlab.com/fisherprime/auralex/lexer"
)

type (
	// AuralexCommand holds the state shared by an auralex invocation.
	AuralexCommand struct {
		fs     afero.Fs
		v      *viper.Viper
		logger *logrus.Logger
	}

	// record is the serialized form of a Lexeme.
	record struct {
		Kinds      []string `yaml:"kinds"`
		Text       string   `yaml:"text"`
		Start      int      `yaml:"start"`
		End        int      `yaml:"end"`
		StartCoord string   `yaml:"start_coord"`
		EndCoord   string   `yaml:"end_coord"`
	}
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatDump = "dump"
)

const envPrefix = "AURALEX"

var (
	// ErrLexical is returned when the source contains lexical errors.
	ErrLexical = errors.New("lexical errors")

	// ErrFormat is returned for an unknown --format value.
	ErrFormat = errors.New("unknown output format")

	// ErrEncoding is returned for sources that aren't valid UTF-8.
	ErrEncoding = errors.New("source is not valid UTF-8")

	// ErrWatchFs is returned for --watch on a filesystem fsnotify can't observe.
	ErrWatchFs = errors.New("--watch requires the OS filesystem")

	dumper = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
)

// GetRootCommand creates the auralex root command reading sources from fs.
func GetRootCommand(fs afero.Fs) *cobra.Command {
	ac := &AuralexCommand{
		fs:     fs,
		v:      viper.New(),
		logger: logrus.New(),
	}

	root := &cobra.Command{
		Use:   "auralex FILE",
		Short: "Tokenize an Aura source file",
		Long: `auralex splits an Aura source file into lexemes & prints them in order.

Every flag may also be set through an AURALEX_ prefixed environment variable
(e.g. AURALEX_SKIP_WHITESPACE=true) or a config file passed with --config.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				// Cobra prints usage to the output stream, keep it on stderr.
				cmd.SilenceUsage = true
				fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())

				return err
			}

			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Usage is only useful for argument & flag errors.
			cmd.SilenceUsage = true

			return ac.loadConfig(cmd.Flags(), cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if ac.v.GetBool("watch") {
				return ac.watch(cmd.Context(), args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
			}

			return ac.run(cmd.Context(), args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := root.Flags()
	flags.StringP("format", "f", FormatText, "Output format: text, yaml or dump")
	flags.Bool("skip-whitespace", false, "Omit whitespace lexemes")
	flags.Bool("skip-comments", false, "Omit comment lexemes")
	flags.IntP("workers", "w", 0, "Goroutines evaluating token candidates, 0 scans sequentially")
	flags.Bool("watch", false, "Re-lex the file whenever it is written")
	flags.BoolP("debug", "d", false, "Enable debug logging")
	flags.StringP("config", "c", "", "Path to a config file")

	return root
}

func (ac *AuralexCommand) loadConfig(flags *pflag.FlagSet, stderr io.Writer) error {
	ac.v.SetFs(ac.fs)
	ac.v.SetEnvPrefix(envPrefix)
	ac.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	ac.v.AutomaticEnv()

	if err := ac.v.BindPFlags(flags); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if path := ac.v.GetString("config"); path != "" {
		ac.v.SetConfigFile(path)
		if err := ac.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	ac.logger.SetOutput(stderr)
	ac.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	ac.logger.SetLevel(logrus.WarnLevel)
	if ac.v.GetBool("debug") {
		ac.logger.SetLevel(logrus.DebugLevel)
	}

	switch format := ac.v.GetString("format"); format {
	case FormatText, FormatYAML, FormatDump:
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}

	return nil
}

// run lexes path once, printing the lexemes to stdout & lexical errors to stderr.
func (ac *AuralexCommand) run(ctx context.Context, path string, stdout, stderr io.Writer) error {
	data, err := afero.ReadFile(ac.fs, path)
	if err != nil {
		return err
	}

	source := string(data)
	if !utf8.ValidString(source) {
		return fmt.Errorf("%s: %w", path, ErrEncoding)
	}

	lexemes, errs := ac.lex(ctx, source)

	if ac.v.GetBool("skip-whitespace") {
		lexemes = lexer.RemoveWhitespace(lexemes)
	}
	if ac.v.GetBool("skip-comments") {
		lexemes = lexer.RemoveComments(lexemes)
	}

	if err = ac.print(stdout, lexemes); err != nil {
		return err
	}

	if errs.Len() > 0 {
		for _, lexErr := range errs {
			fmt.Fprintf(stderr, "%s:%v\n", path, lexErr)
		}

		return fmt.Errorf("%w: %d in %s", ErrLexical, errs.Len(), path)
	}

	return nil
}

func (ac *AuralexCommand) lex(ctx context.Context, source string) (lexemes []lexeme.Lexeme, errs lexer.ErrorList) {
	opts := lexer.NewOpts()
	opts.Debug = ac.v.GetBool("debug")
	opts.Workers = ac.v.GetInt("workers")
	opts.Logger = ac.logger

	lexemes, errs = lexer.LexContext(ctx, source, lexer.WithOpts(*opts))

	ac.logger.WithFields(logrus.Fields{
		"lexemes": len(lexemes),
		"errors":  errs.Len(),
	}).Debug("lexed source")

	return
}

func (ac *AuralexCommand) print(w io.Writer, lexemes []lexeme.Lexeme) error {
	switch ac.v.GetString("format") {
	case FormatYAML:
		records := make([]record, 0, len(lexemes))
		for _, lx := range lexemes {
			records = append(records, newRecord(lx))
		}

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encoding lexemes: %w", err)
		}

		return enc.Close()
	case FormatDump:
		dumper.Fdump(w, lexemes)
	default:
		for _, lx := range lexemes {
			if _, err := fmt.Fprintln(w, lx); err != nil {
				return err
			}
		}
	}

	return nil
}

// watch lexes path, then again on every write until ctx is done.
//
// fsnotify observes OS paths, so the command's filesystem must be an afero.OsFs.
func (ac *AuralexCommand) watch(ctx context.Context, path string, stdout, stderr io.Writer) error {
	if _, ok := ac.fs.(*afero.OsFs); !ok {
		return fmt.Errorf("%w, have %s", ErrWatchFs, ac.fs.Name())
	}

	report := func() {
		if err := ac.run(ctx, path, stdout, stderr); err != nil {
			ac.logger.Warn(err)
		}
	}
	report()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files, watch the directory & filter by name.
	if err = watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}

			ac.logger.WithField("op", event.Op.String()).Debug("source changed")
			report()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			ac.logger.Warn("watcher: ", err)
		}
	}
}

func newRecord(lx lexeme.Lexeme) record {
	kinds := make([]string, 0, len(lx.Kinds))
	for _, k := range lx.Kinds {
		kinds = append(kinds, k.String())
	}

	return record{
		Kinds:      kinds,
		Text:       lx.Text,
		Start:      lx.Start,
		End:        lx.End,
		StartCoord: lx.StartCoord.String(),
		EndCoord:   lx.EndCoord.String(),
	}
}
