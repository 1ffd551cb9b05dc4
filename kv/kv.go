// Package kv is the durable key-value collaborator. Only the theme and
// cultural-variant preferences go through it; all other state is session-only.
package kv

import (
	"context"
	"errors"
)

// ErrNoValue is returned by Get when the key has never been set.
var ErrNoValue = errors.New("kv: no value")

type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
