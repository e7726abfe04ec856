package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/sync/errgroup"

	"github.com/rwx-cloud/justify/internal/errors"
	"github.com/rwx-cloud/justify/internal/text"
)

const (
	DefaultWidth = 80
	stdinSource  = "-"
	stdinName    = "stdin"

	maxConcurrentSources = 8
)

var HandledError = errors.New("handled error")

// Service holds the main business logic of the CLI.
type Service struct {
	Config
}

func NewService(cfg Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return Service{}, errors.Wrap(err, "validation failed")
	}

	return Service{cfg}, nil
}

// Justify reads every source, justifies it to the resolved width and writes
// the results in the requested format. Nothing is written unless every source
// was justified.
func (s Service) Justify(cfg JustifyConfig) (*JustifyResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validation failed")
	}

	width, source, err := s.ResolveWidth(cfg.WidthConfig)
	if err != nil {
		return nil, errors.Wrap(err, "unable to determine the line width")
	}
	s.Logger.Debugw("resolved line width", "width", width, "source", source)

	sources := cfg.Files
	if len(sources) == 0 {
		sources = []string{stdinSource}
	}

	results := make([]JustifiedSource, len(sources))

	g := new(errgroup.Group)
	g.SetLimit(maxConcurrentSources)

	for i, path := range sources {
		g.Go(func() error {
			name := sourceName(path)

			raw, err := s.readSource(path)
			if err != nil {
				return err
			}

			justified, err := text.Transform(text.Prepare(raw, cfg.Prepare), width)
			if err != nil {
				return errors.Wrapf(err, "unable to justify %s", name)
			}

			results[i] = newJustifiedSource(name, justified)
			s.Logger.Debugw("justified source", "source", name, "width", width, "lines", len(results[i].Lines))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &JustifyResult{Width: width, Results: results}
	if err := s.writeJustifyResult(cfg.Output, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (s Service) readSource(path string) (string, error) {
	if path == stdinSource {
		if s.Stdin == nil {
			return "", errors.New("missing Stdin")
		}

		contents, err := io.ReadAll(s.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "unable to read stdin")
		}
		return string(contents), nil
	}

	contents, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", errors.Wrapf(errors.ErrFileNotExists, "unable to read %q", path)
	}
	if err != nil {
		return "", errors.Wrapf(err, "unable to read %q", path)
	}

	return string(contents), nil
}

func sourceName(path string) string {
	if path == stdinSource {
		return stdinName
	}
	return path
}

func newJustifiedSource(name, justified string) JustifiedSource {
	lines := []string{}
	if justified != "" {
		lines = strings.Split(justified, "\n")
	}

	return JustifiedSource{
		Source: name,
		Lines:  lines,
		Text:   justified,
	}
}

func (s Service) writeJustifyResult(format OutputFormat, result *JustifyResult) error {
	switch format {
	case OutputJSON:
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return errors.Wrap(err, "unable to JSON encode the result")
		}
		fmt.Fprintln(s.Stdout, string(encoded))
	case OutputYAML:
		encoded, err := yaml.Marshal(result)
		if err != nil {
			return errors.Wrap(err, "unable to YAML encode the result")
		}
		fmt.Fprint(s.Stdout, string(encoded))
	default:
		texts := make([]string, 0, len(result.Results))
		for _, r := range result.Results {
			if r.Text != "" {
				texts = append(texts, r.Text)
			}
		}
		if len(texts) > 0 {
			fmt.Fprintln(s.Stdout, strings.Join(texts, "\n\n"))
		}
	}

	return nil
}
