//go:build !linux

package shellsearch

import (
	"errors"
	"log/slog"
)

// ErrUnsupported is returned by New on platforms without a desktop shell
// search interface.
var ErrUnsupported = errors.New("shell search provider is only supported on linux")

// Service is unavailable on non-Linux platforms.
type Service struct{}

// New always fails on non-Linux platforms.
func New(_ SearchProvider, _, _ string, _ *slog.Logger) (*Service, error) {
	return nil, ErrUnsupported
}

// Close is a no-op on non-Linux platforms.
func (s *Service) Close() error {
	return nil
}
