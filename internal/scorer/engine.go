package scorer

import (
	"time"

	"go.uber.org/zap"

	"github.com/pulsemetrics/healthscore-cli/internal/config"
	"github.com/pulsemetrics/healthscore-cli/internal/model"
)

// Notifier receives the overall score of every completed calculation.
// It is invoked fire-and-forget on its own goroutine and can never
// affect the result or error returned to the caller.
type Notifier func(customerID string, overallScore float64)

// Engine is the single entry point for health score calculation. It is
// safe for concurrent use; the cache is its only shared mutable state.
type Engine struct {
	cache  *resultCache
	clock  func() time.Time
	notify Notifier
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock injects a deterministic time source for tests. It controls
// both the CalculatedAt stamp and cache expiry.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.clock = now }
}

// WithNotifier registers a fire-and-forget overall-score callback.
func WithNotifier(fn Notifier) Option {
	return func(e *Engine) { e.notify = fn }
}

// NewEngine creates an Engine with the given cache settings. Zero
// config values fall back to the defaults from DefaultEngineConfig.
func NewEngine(cfg config.EngineConfig, opts ...Option) *Engine {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = config.DefaultEngineConfig().CacheTTL
	}
	if cfg.CacheCapacity <= 0 {
		cfg.CacheCapacity = config.DefaultEngineConfig().CacheCapacity
	}

	e := &Engine{clock: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	// Indirect through e.clock so the cache honors a clock injected
	// via options.
	e.cache = newResultCache(cfg.CacheTTL, cfg.CacheCapacity, func() time.Time {
		return e.clock()
	})
	return e
}

// Calculate produces the health score for one customer. A cache hit
// returns the stored result verbatim, including its CalculatedAt stamp,
// without re-validating; the content fingerprint already covers the
// full input. On a miss the metrics are validated, scored per factor,
// aggregated, stamped, and cached. Validation errors propagate to the
// caller unmodified.
func (e *Engine) Calculate(metrics *model.CustomerMetrics, customerID string) (*model.HealthScoreResult, error) {
	key := cacheKey(customerID, metrics)

	if cached, ok := e.cache.get(key); ok {
		zap.L().Debug("scorer: cache hit",
			zap.String("customer_id", customerID),
			zap.Float64("overall_score", cached.OverallScore),
		)
		e.emit(cached)
		return cached, nil
	}

	if err := Validate(metrics); err != nil {
		return nil, err
	}

	scores := map[model.Factor]float64{
		model.FactorPayment:    PaymentScore(*metrics.Payment),
		model.FactorEngagement: EngagementScore(*metrics.Engagement),
		model.FactorContract:   ContractScore(*metrics.Contract),
		model.FactorSupport:    SupportScore(*metrics.Support),
	}

	result := Aggregate(customerID, scores, e.clock().UTC())
	e.cache.set(key, result)

	zap.L().Debug("scorer: calculated",
		zap.String("customer_id", customerID),
		zap.Float64("overall_score", result.OverallScore),
		zap.String("risk_level", string(result.RiskLevel)),
	)

	e.emit(result)
	return result, nil
}

// CacheSize reports the number of live cache entries.
func (e *Engine) CacheSize() int {
	return e.cache.size()
}

func (e *Engine) emit(result *model.HealthScoreResult) {
	if e.notify == nil {
		return
	}
	go e.notify(result.CustomerID, result.OverallScore)
}
