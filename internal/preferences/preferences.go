package preferences

import (
	"strconv"
	"strings"

	"github.com/rwx-cloud/justify/internal/config"
	"github.com/rwx-cloud/justify/internal/errors"
)

const widthKey = "width"

// Store reads and writes typed user preferences through a config.Backend.
type Store struct {
	backend config.Backend
}

func New(backend config.Backend) *Store {
	return &Store{backend: backend}
}

// Width returns the stored default width. ok is false when none is stored.
func (s *Store) Width() (width int, ok bool, err error) {
	raw, err := s.backend.Get(widthKey)
	if err != nil {
		return 0, false, errors.Wrap(err, "unable to read the stored width")
	}

	if raw == "" {
		return 0, false, nil
	}

	width, err = ParseWidth(raw)
	if err != nil {
		return 0, false, errors.Wrap(err, "the stored width is invalid")
	}

	return width, true, nil
}

func (s *Store) SetWidth(width int) error {
	if width < 0 {
		return errors.Wrapf(errors.ErrInvalidWidth, "%d is negative", width)
	}

	return errors.Wrap(s.backend.Set(widthKey, strconv.Itoa(width)), "unable to store the width")
}

func (s *Store) UnsetWidth() error {
	return errors.Wrap(s.backend.Unset(widthKey), "unable to remove the stored width")
}

// ParseWidth accepts a non-negative base 10 integer, ignoring surrounding
// whitespace.
func ParseWidth(raw string) (int, error) {
	width, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || width < 0 {
		return 0, errors.Wrapf(errors.ErrInvalidWidth, "%q is not a non-negative integer", raw)
	}

	return width, nil
}
