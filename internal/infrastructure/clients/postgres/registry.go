package postgres

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/clinicore/doctor-chatbot/pkg/config"
)

type executionContextKey struct{}

// defaultContextID is used when a caller never attached an execution
// context id; all such callers share one client.
const defaultContextID = "global"

// WithExecutionContext attaches an execution-context identifier to ctx.
// Every retrieval issued under that ctx reuses the same store client.
func WithExecutionContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, executionContextKey{}, id)
}

// ExecutionContextID returns the execution-context identifier attached to
// ctx, or the shared default.
func ExecutionContextID(ctx context.Context) string {
	if id, ok := ctx.Value(executionContextKey{}).(string); ok && id != "" {
		return id
	}
	return defaultContextID
}

// Registry hands out one store client per execution context. A client is
// created on first use for its context, reused for every call from that
// context, and never torn down mid-session: its lifetime is the context's
// lifetime. Clients are never shared across contexts.
type Registry struct {
	open func() (*Client, error)

	mu      sync.Mutex
	clients map[string]*Client
}

// NewRegistry creates a registry that opens clients from cfg
func NewRegistry(cfg *config.DatabaseConfig) *Registry {
	return &Registry{
		open:    func() (*Client, error) { return NewClient(cfg) },
		clients: make(map[string]*Client),
	}
}

// NewRegistryWithOpener creates a registry with a custom client opener.
// Used by tests.
func NewRegistryWithOpener(open func() (*Client, error)) *Registry {
	return &Registry{
		open:    open,
		clients: make(map[string]*Client),
	}
}

// ForContext returns the client owned by the execution context attached to
// ctx, creating it on first use.
func (r *Registry) ForContext(ctx context.Context) (*Client, error) {
	id := ExecutionContextID(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if client, ok := r.clients[id]; ok {
		return client, nil
	}

	client, err := r.open()
	if err != nil {
		return nil, err
	}

	log.Debug().Str("execution_context", id).Msg("opened store client for execution context")
	r.clients[id] = client
	return client, nil
}

// Size returns the number of live per-context clients
func (r *Registry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// CloseAll closes every client. Called once at process shutdown.
func (r *Registry) CloseAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for id, client := range r.clients {
		if err := client.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(r.clients, id)
	}
	return firstErr
}
