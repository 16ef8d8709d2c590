package skillmatch

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	phrases   []string
	version   string
	vocabPath string

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithVocabulary replaces the built-in vocabulary with phrases.
// Phrases are canonicalized; blanks and duplicates make New fail.
func WithVocabulary(phrases ...string) Option {
	return optionFunc(func(c *clientConfig) {
		c.phrases = append(make([]string, 0, len(phrases)), phrases...)
		c.vocabPath = ""
	})
}

// WithVersionedVocabulary is WithVocabulary with a version label.
func WithVersionedVocabulary(version string, phrases ...string) Option {
	return optionFunc(func(c *clientConfig) {
		c.version = version
		c.phrases = append(make([]string, 0, len(phrases)), phrases...)
		c.vocabPath = ""
	})
}

// WithVocabularyFile loads the vocabulary from a YAML file
// with "version" and "skills" keys.
func WithVocabularyFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.vocabPath = path
		c.phrases = nil
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
