package cli

import "github.com/rwx-cloud/justify/internal/preferences"

// WidthStore is the part of the preference store the service depends on.
type WidthStore interface {
	Width() (int, bool, error)
	SetWidth(width int) error
	UnsetWidth() error
}

var _ WidthStore = (*preferences.Store)(nil)
