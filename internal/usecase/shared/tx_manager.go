package shared

import (
	"context"
	"log/slog"
	"sync"

	"booking-registry/internal/pkg/errs"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// RollbackHooks collects compensations registered during one transaction attempt.
// Unit of work implementations embed it and call Run when the attempt does not commit.
type RollbackHooks struct {
	mu    sync.Mutex
	hooks []func(ctx context.Context)
}

func (h *RollbackHooks) OnRollback(fn func(ctx context.Context)) {
	h.mu.Lock()
	h.hooks = append(h.hooks, fn)
	h.mu.Unlock()
}

// Run executes the hooks in reverse registration order on a context that survives cancellation of ctx.
func (h *RollbackHooks) Run(ctx context.Context) {
	h.mu.Lock()
	hooks := h.hooks
	h.hooks = nil
	h.mu.Unlock()

	if len(hooks) == 0 {
		return
	}
	slog.Warn("running rollback compensations", "count", len(hooks))
	detached := context.WithoutCancel(ctx)
	for i := len(hooks) - 1; i >= 0; i-- {
		hooks[i](detached)
	}
}
