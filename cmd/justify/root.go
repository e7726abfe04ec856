package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rwx-cloud/justify/internal/cli"
	"github.com/rwx-cloud/justify/internal/config"
	"github.com/rwx-cloud/justify/internal/errors"
	"github.com/rwx-cloud/justify/internal/logging"
	"github.com/rwx-cloud/justify/internal/preferences"
	"github.com/rwx-cloud/justify/internal/text"
	"github.com/rwx-cloud/justify/internal/versions"
)

var (
	WordTooLongFailure = errors.Wrap(HandledError, "word too long")

	Verbose   bool
	Width     int
	Output    string
	StripANSI bool
	NFC       bool

	service cli.Service

	// rootCmd justifies its file arguments, or stdin when there are none
	rootCmd = &cobra.Command{
		Use:           "justify [flags] [FILE...]",
		Args:          cobra.ArbitraryArgs,
		Short:         "Reflow text into fully justified lines of an exact width",
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       versions.GetCliCurrentVersion().String(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			backend, err := config.NewFileBackend([]string{
				filepath.Join("~", ".config", "justify"),
				filepath.Join("~", ".justify"),
			})
			if err != nil {
				return errors.Wrap(err, "unable to initialize preferences backend")
			}

			service, err = cli.NewService(cli.Config{
				Stdin:         os.Stdin,
				Stdout:        os.Stdout,
				StdoutIsTTY:   term.IsTerminal(int(os.Stdout.Fd())),
				Stderr:        os.Stderr,
				Logger:        logging.New(os.Stderr, Verbose),
				Preferences:   preferences.New(backend),
				TerminalWidth: cli.TerminalWidth,
			})
			if err != nil {
				return errors.Wrap(err, "unable to initialize CLI")
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			justifyConfig, err := cli.NewJustifyConfig(
				args,
				cli.WidthConfig{
					Width:              Width,
					WidthExplicitlySet: cmd.Flags().Changed("width"),
					EnvironmentWidth:   os.Getenv("JUSTIFY_WIDTH"),
				},
				Output,
				text.PrepareOptions{StripANSI: StripANSI, NFC: NFC},
			)
			if err != nil {
				return err
			}

			_, err = service.Justify(justifyConfig)
			return reportWordTooLong(os.Stderr, err)
		},
	}
)

// reportWordTooLong explains how to recover from a word that does not fit.
// Other errors are returned unchanged.
func reportWordTooLong(w io.Writer, err error) error {
	var wordErr *text.WordTooLongError
	if !errors.As(err, &wordErr) {
		return err
	}

	fmt.Fprintf(w, "Error: %s\n", err)
	fmt.Fprintf(w, "Use --width %d or more to fit %q.\n", wordErr.MinimumWidth(), wordErr.Word)
	return WordTooLongFailure
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&Verbose, "verbose", false, "enable debug output")

	rootCmd.Flags().IntVarP(&Width, "width", "w", cli.DefaultWidth, "the exact width of every output line, in bytes. Defaults to $JUSTIFY_WIDTH, the stored default width, or the terminal width")
	rootCmd.Flags().StringVarP(&Output, "output", "o", "text", "output format: text, json or yaml")
	rootCmd.Flags().BoolVar(&StripANSI, "strip-ansi", false, "remove terminal escape sequences before justifying")
	rootCmd.Flags().BoolVar(&NFC, "nfc", false, "apply Unicode NFC normalization before justifying")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)
}
