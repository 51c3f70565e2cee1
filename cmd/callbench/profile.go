package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/profile"
)

// startProfile begins the requested profile and returns a func that
// stops it. An empty kind profiles nothing.
func startProfile(
	logger *slog.Logger,
	kind, dir string,
) (func(), error) {
	var mode func(*profile.Profile)

	switch kind {
	case "":
		return func() {}, nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	case "trace":
		mode = profile.TraceProfile
	default:
		return nil, fmt.Errorf("unknown profile %q", kind)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}

	p := profile.Start(
		mode,
		profile.ProfilePath(dir),
		profile.NoShutdownHook,
		profile.Quiet,
	)

	logger.Info("profiling enabled",
		slog.String("profile", kind),
		slog.String("dir", dir),
	)

	return p.Stop, nil
}
