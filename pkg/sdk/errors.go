package skillmatch

import "github.com/kailas-cloud/skillmatch/internal/domain"

// ErrConfiguration is returned by New for an invalid vocabulary.
// Use errors.Is() to check, errors.As() with *ConfigurationError for details.
var ErrConfiguration = domain.ErrConfiguration

// ConfigurationError describes the rejected vocabulary entry.
type ConfigurationError = domain.ConfigurationError
