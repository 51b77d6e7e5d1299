package treebank

import (
	"log/slog"
	"runtime"
)

// Option configures a Tokenizer.
type Option func(*settings)

type settings struct {
	workers int
	logger  *slog.Logger
}

func defaultSettings() settings {
	return settings{
		workers: runtime.NumCPU(),
		logger:  slog.Default(),
	}
}

// WithWorkers sets the number of sections tokenized concurrently by
// TokenizeDocument (default: runtime.NumCPU()).
func WithWorkers(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
