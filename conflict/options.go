package conflict

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/arloliu/geohash3d/errs"
	"github.com/arloliu/geohash3d/internal/options"
	"github.com/arloliu/geohash3d/spatial"
)

// DefaultPrecision is the character precision used when none is configured.
const DefaultPrecision = 4

type detectorConfig struct {
	precision   int
	logger      *slog.Logger
	concurrency int
}

func newDetectorConfig() *detectorConfig {
	return &detectorConfig{
		precision:   DefaultPrecision,
		logger:      slog.New(slog.DiscardHandler),
		concurrency: 0,
	}
}

// Option configures a Detector.
type Option = options.Option[*detectorConfig]

// WithPrecision sets the character precision points are hashed at.
func WithPrecision(precision int) Option {
	return options.NoError(func(c *detectorConfig) {
		c.precision = precision
	})
}

// WithLogger sets the structured logger. Conflicts are logged at Debug level and a
// summary of each detection run at Info level. The default discards all output.
func WithLogger(logger *slog.Logger) Option {
	return options.New(func(c *detectorConfig) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		c.logger = logger

		return nil
	})
}

// WithConcurrency limits how many groups DetectGroups processes at once. Zero or a
// negative value means no limit.
func WithConcurrency(n int) Option {
	return options.NoError(func(c *detectorConfig) {
		c.concurrency = n
	})
}

func (c *detectorConfig) validate() error {
	return validatePrecision(c.precision)
}

func validatePrecision(precision int) error {
	if precision < 0 || precision > spatial.MaxCharacterPrecision {
		return fmt.Errorf("%w: %d characters, must be in [0, %d]",
			errs.ErrInvalidPrecision, precision, spatial.MaxCharacterPrecision)
	}

	return nil
}
