package executor

import (
	"sync"
)

// HandlerFunc executes one follow-up task given its params. Handlers must be
// safe to run more than once for the same task (at-least-once delivery).
type HandlerFunc func(params map[string]any) error

type Registry struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
}

func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]HandlerFunc),
	}
}

func (r *Registry) Register(actionKey string, handler HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[actionKey] = handler
}

func (r *Registry) Get(actionKey string) (HandlerFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[actionKey]
	return h, ok
}
