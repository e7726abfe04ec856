package main

import "github.com/rwx-cloud/justify/internal/errors"

func requireWidthKey(key string) error {
	if key != "width" {
		return errors.Errorf("unknown setting %q, expected: width", key)
	}
	return nil
}
