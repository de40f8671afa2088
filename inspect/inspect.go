package inspect

import (
	"github.com/google/uuid"

	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/pipeline"
	"github.com/kbukum/seqkit/size"
)

// DefaultLimit is the number of elements dumped when Limit is zero.
const DefaultLimit = 20

// Config controls pipeline dumps.
type Config struct {
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	Limit   int  `yaml:"limit" mapstructure:"limit" validate:"gte=0,lte=1000"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Limit == 0 {
		c.Limit = DefaultLimit
	}
}

// Dump logs up to cfg.Limit leading elements of p at debug level, followed
// by an info summary with the pipeline's measure. It does nothing when cfg
// is disabled and returns the preview error for impure pipelines.
func Dump[T any](log *logger.Logger, name string, p *pipeline.Pipeline[T], cfg Config) error {
	if !cfg.Enabled {
		return nil
	}
	limit := cfg.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	items, err := pipeline.Preview(p, limit)
	if err != nil {
		return err
	}

	log = log.WithFields(logger.Fields(
		logger.FieldPipeline, name,
		logger.FieldTraversalID, uuid.NewString(),
	))
	for i, v := range items {
		log.Debug("element", logger.Fields(logger.FieldIndex, i, logger.FieldValue, v))
	}

	measure := p.Measure()
	log.Info("pipeline dumped", map[string]interface{}{
		logger.FieldMeasure: measure.String(),
		logger.FieldCount:   len(items),
		"truncated":         len(items) == limit && !fitsIn(measure, len(items)),
	})
	return nil
}

// fitsIn reports whether a pipeline measured as m is known to have no more
// than n elements.
func fitsIn(m size.Info, n int) bool {
	return m.HasValue() && m.Value <= n
}
