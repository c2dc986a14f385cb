package services

import (
	"sync"

	domainservices "hiretrack-backend/domain/services"
)

// LayoutProvider hands out the current layout engine and lets the config
// watcher swap the tuning at runtime without racing in-flight requests
type LayoutProvider struct {
	mu     sync.RWMutex
	engine *domainservices.LayoutEngine
}

// NewLayoutProvider creates a provider seeded with the given config
func NewLayoutProvider(cfg domainservices.LayoutConfig) *LayoutProvider {
	return &LayoutProvider{
		engine: domainservices.NewLayoutEngine(cfg),
	}
}

// Engine returns the current layout engine
func (p *LayoutProvider) Engine() *domainservices.LayoutEngine {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.engine
}

// Update replaces the layout engine with one built from the new config
func (p *LayoutProvider) Update(cfg domainservices.LayoutConfig) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.engine = domainservices.NewLayoutEngine(cfg)
}
