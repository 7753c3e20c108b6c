package schema

import (
	"go.uber.org/zap"

	"github.com/shenodaguirguis/iceberg/pcache"
)

const averageSchemaBytes = 1 << 10

// Codec memoizes FromJSON keyed by the exact input text. The cache is owned
// by the caller, not the process: tests and independent subsystems construct
// their own. Entries may be evicted at any time; a miss recomputes and is
// never visible to callers beyond the extra work. Concurrent parses of the
// same text may each compute, all results are value-equal and exactly one
// populates the slot.
type Codec struct {
	cache  pcache.PCache
	logger *zap.Logger
}

// NewCodec creates a codec whose cache holds up to maxCacheBytes of schema
// text. A nil logger disables logging.
func NewCodec(maxCacheBytes int64, logger *zap.Logger) (*Codec, error) {
	cache, err := pcache.NewPCache(maxCacheBytes, averageSchemaBytes)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Codec{cache: cache, logger: logger}, nil
}

// FromJSON parses text into a schema, serving repeated texts from cache.
func (c *Codec) FromJSON(text string) (*Schema, error) {
	if cached, ok := c.cache.Get(text); ok {
		return cached.(*Schema), nil
	}
	c.logger.Debug("schema cache miss", zap.Int("bytes", len(text)))
	s, err := FromJSON([]byte(text))
	if err != nil {
		c.logger.Error("schema parse failed", zap.Error(err))
		return nil, err
	}
	c.cache.Set(text, s, int64(len(text)))
	return s, nil
}

// ToJSON renders the schema's canonical wire form.
func (c *Codec) ToJSON(s *Schema) (string, error) {
	return ToJSON(s)
}

// RecordStats exports cache hit/miss counters under the given name.
func (c *Codec) RecordStats(name string) {
	pcache.RecordStats(name, c.cache)
}

// ClearCache drops all cached parses; used to bound memory or in tests that
// force recomputation.
func (c *Codec) ClearCache() {
	c.cache.Clear()
}
