package cli

import (
	"io"

	"go.uber.org/zap"

	"github.com/rwx-cloud/justify/internal/errors"
	"github.com/rwx-cloud/justify/internal/text"
)

type Config struct {
	Stdin       io.Reader
	Stdout      io.Writer
	StdoutIsTTY bool
	Stderr      io.Writer
	Logger      *zap.SugaredLogger
	Preferences WidthStore
	// TerminalWidth is consulted when stdout is a terminal and no width was
	// configured. It may be nil.
	TerminalWidth func() (int, error)
}

func (c Config) Validate() error {
	if c.Stdout == nil {
		return errors.New("missing Stdout")
	}

	if c.Stderr == nil {
		return errors.New("missing Stderr")
	}

	if c.Logger == nil {
		return errors.New("missing logger")
	}

	if c.Preferences == nil {
		return errors.New("missing preferences")
	}

	return nil
}

type OutputFormat int

const (
	OutputText OutputFormat = iota
	OutputJSON
	OutputYAML
)

func ParseOutputFormat(format string) (OutputFormat, error) {
	switch format {
	case "", "text":
		return OutputText, nil
	case "json":
		return OutputJSON, nil
	case "yaml":
		return OutputYAML, nil
	default:
		return OutputText, errors.New("unknown output format, expected one of: text, json, yaml")
	}
}

type WidthConfig struct {
	Width              int
	WidthExplicitlySet bool
	EnvironmentWidth   string
}

type JustifyConfig struct {
	WidthConfig
	Files   []string
	Output  OutputFormat
	Prepare text.PrepareOptions
}

func (c JustifyConfig) Validate() error {
	stdinSources := 0
	for _, file := range c.Files {
		if file == "" {
			return errors.New("file paths must not be empty")
		}
		if file == stdinSource {
			stdinSources++
		}
	}

	if stdinSources > 1 {
		return errors.New("stdin can only be read once")
	}

	return nil
}

func NewJustifyConfig(files []string, width WidthConfig, output string, prepare text.PrepareOptions) (JustifyConfig, error) {
	format, err := ParseOutputFormat(output)
	if err != nil {
		return JustifyConfig{}, err
	}

	return JustifyConfig{
		WidthConfig: width,
		Files:       files,
		Output:      format,
		Prepare:     prepare,
	}, nil
}

type SetWidthConfig struct {
	Value string
}

func (c SetWidthConfig) Validate() error {
	if c.Value == "" {
		return errors.New("a width must be provided")
	}

	return nil
}

type JustifyResult struct {
	Width   int               `json:"width" yaml:"width"`
	Results []JustifiedSource `json:"results" yaml:"results"`
}

type JustifiedSource struct {
	Source string   `json:"source" yaml:"source"`
	Lines  []string `json:"lines" yaml:"lines"`
	Text   string   `json:"text" yaml:"text"`
}
