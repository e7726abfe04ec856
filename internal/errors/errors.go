package errors

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	ErrFileNotExists = errors.New("file does not exist")
	ErrInvalidWidth  = errors.New("invalid width")
)

func New(msg string) error {
	return pkgerrors.New(msg)
}

func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

func Wrap(err error, msg string) error {
	return pkgerrors.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}
