package cli

import (
	"fmt"

	"github.com/rwx-cloud/justify/internal/errors"
	"github.com/rwx-cloud/justify/internal/preferences"
)

const (
	WidthSourceFlag        = "flag"
	WidthSourceEnvironment = "environment"
	WidthSourcePreferences = "preferences"
	WidthSourceTerminal    = "terminal"
	WidthSourceDefault     = "default"
)

// ResolveWidth picks the line width from, in order, the flag, the
// environment, the stored preference and the terminal, falling back to
// DefaultWidth.
func (s Service) ResolveWidth(cfg WidthConfig) (int, string, error) {
	if cfg.WidthExplicitlySet {
		if cfg.Width < 0 {
			return 0, "", errors.Wrapf(errors.ErrInvalidWidth, "%d is negative", cfg.Width)
		}
		return cfg.Width, WidthSourceFlag, nil
	}

	if cfg.EnvironmentWidth != "" {
		width, err := preferences.ParseWidth(cfg.EnvironmentWidth)
		if err != nil {
			return 0, "", errors.Wrap(err, "JUSTIFY_WIDTH")
		}
		return width, WidthSourceEnvironment, nil
	}

	width, ok, err := s.Preferences.Width()
	if err != nil {
		return 0, "", err
	}
	if ok {
		return width, WidthSourcePreferences, nil
	}

	if s.StdoutIsTTY && s.TerminalWidth != nil {
		width, err := s.TerminalWidth()
		if err != nil {
			s.Logger.Debugw("unable to determine terminal width", "error", err)
		} else if width > 0 {
			return width, WidthSourceTerminal, nil
		}
	}

	return DefaultWidth, WidthSourceDefault, nil
}

// GetWidth prints the stored default width, or nothing when none is stored.
func (s Service) GetWidth() error {
	width, ok, err := s.Preferences.Width()
	if err != nil {
		return err
	}

	if ok {
		fmt.Fprintln(s.Stdout, width)
	}

	return nil
}

func (s Service) SetWidth(cfg SetWidthConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	width, err := preferences.ParseWidth(cfg.Value)
	if err != nil {
		return err
	}

	if err := s.Preferences.SetWidth(width); err != nil {
		return err
	}

	s.Logger.Debugw("stored default width", "width", width)
	fmt.Fprintf(s.Stdout, "Default width set to %d\n", width)
	return nil
}

func (s Service) UnsetWidth() error {
	if err := s.Preferences.UnsetWidth(); err != nil {
		return err
	}

	fmt.Fprintln(s.Stdout, "Default width removed")
	return nil
}
