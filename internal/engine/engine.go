// Package engine holds the demand-driven stock and budget recommendation
// logic. It is stateless: every call computes over an already-fetched
// snapshot of item and demand data, so it is safe to share one Engine
// across requests.
package engine

import "github.com/gdghack/stockwise/internal/config"

type Engine struct {
	cfg config.EngineConfig
}

func New(cfg config.EngineConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the constants the engine was built with.
func (e *Engine) Config() config.EngineConfig {
	return e.cfg
}
