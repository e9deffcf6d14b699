package memo

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libchart/curve"
	"go.uber.org/atomic"
)

type Config struct {
	Expiration      time.Duration `yaml:"expiration" json:"expiration"`
	CleanupInterval time.Duration `yaml:"cleanupInterval" json:"cleanupInterval"`
}

func NewCache(cfg Config, logger l.Wrapper) Cache {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if cfg.Expiration <= 0 {
		cfg.Expiration = time.Minute
	}

	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = cfg.Expiration * 2
	}

	return &cacheImpl{
		logger: logger.WithFields(l.StringField(l.ClsKey, "cacheImpl")),
		cfg:    cfg,
		items:  cache.New(cfg.Expiration, cfg.CleanupInterval),
		hits:   atomic.NewInt64(0),
		misses: atomic.NewInt64(0),
	}
}

type cacheImpl struct {
	logger l.Wrapper
	cfg    Config

	items  *cache.Cache
	hits   *atomic.Int64
	misses *atomic.Int64
}

func (impl *cacheImpl) Path(points []curve.Point, mode curve.Mode) string {
	key := contentKey(kindPath, mode, points)

	if s, ok := impl.get(key).(string); ok {
		return s
	}

	s := curve.PathString(points, mode)
	impl.set(key, s, len(points))

	return s
}

func (impl *cacheImpl) AreaPath(top, base []curve.Point, mode curve.Mode) string {
	key := contentKey(kindArea, mode, top, base)

	if s, ok := impl.get(key).(string); ok {
		return s
	}

	s := curve.AreaPath(top, base, mode)
	impl.set(key, s, len(top)+len(base))

	return s
}

func (impl *cacheImpl) Interpolator(points []curve.Point, mode curve.Mode) curve.Interpolator {
	key := contentKey(kindInterpolator, mode, points)

	if f, ok := impl.get(key).(curve.Interpolator); ok {
		return f
	}

	f := curve.NewInterpolator(points, mode)
	impl.set(key, f, len(points))

	return f
}

func (impl *cacheImpl) Stats() Stats {
	return Stats{
		Hits:   impl.hits.Load(),
		Misses: impl.misses.Load(),
		Items:  impl.items.ItemCount(),
	}
}

func (impl *cacheImpl) Flush() {
	impl.items.Flush()
}

func (impl *cacheImpl) get(key string) any {
	v, ok := impl.items.Get(key)
	if !ok {
		impl.misses.Inc()

		return nil
	}

	impl.hits.Inc()

	return v
}

func (impl *cacheImpl) set(key string, v any, pointCount int) {
	impl.items.Set(key, v, cache.DefaultExpiration)

	impl.logger.WithFields(l.StringField("key", key), l.IntField("points", pointCount)).Debug("rebuilt")
}
