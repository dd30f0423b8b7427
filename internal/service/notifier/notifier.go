package notifier

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	nexus "github.com/talx-hub/nexus-sdk"
	"github.com/talx-hub/nexus-sdk/internal/model"
	"github.com/talx-hub/nexus-sdk/internal/utils/semaphore"
	"github.com/talx-hub/nexus-sdk/serviceerrs"
)

var ErrClosed = errors.New("notifier is shut down")

type TransactionSender interface {
	SendTransaction(ctx context.Context, details nexus.TransactionDetails, params *nexus.GroupParams,
	) (*nexus.TransactionResponse, error)
}

// Notifier attributes purchases in the background. A purchase response
// never waits for it and a failed send is logged and dropped.
type Notifier struct {
	sender  TransactionSender
	sema    *semaphore.Semaphore
	log     *slog.Logger
	params  *nexus.GroupParams
	wg      sync.WaitGroup
	mu      sync.Mutex
	timeout time.Duration
	closed  bool
}

func New(
	sender TransactionSender, maxInFlight uint64, groupID string, log *slog.Logger,
) *Notifier {
	if log == nil {
		log = slog.Default()
	}
	var params *nexus.GroupParams
	if groupID != "" {
		params = &nexus.GroupParams{GroupID: groupID}
	}
	return &Notifier{
		sender:  sender,
		sema:    semaphore.New(maxInFlight),
		log:     log,
		params:  params,
		timeout: model.DefaultTimeout,
	}
}

// Notify schedules one transaction. It waits for a free slot at most
// as long as a single send may take.
func (n *Notifier) Notify(details nexus.TransactionDetails) error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return ErrClosed
	}
	n.wg.Add(1)
	n.mu.Unlock()

	go func() {
		defer n.wg.Done()
		n.send(details)
	}()
	return nil
}

func (n *Notifier) send(details nexus.TransactionDetails) {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	if err := n.sema.Acquire(ctx); err != nil {
		n.log.LogAttrs(ctx,
			slog.LevelWarn,
			"transaction dropped, too many in flight",
			slog.String("transaction_id", details.TransactionID),
		)
		return
	}
	defer n.sema.Release()

	resp, err := n.sender.SendTransaction(ctx, details, n.params)
	if err != nil {
		kind, _ := serviceerrs.KindOf(err)
		n.log.LogAttrs(ctx,
			slog.LevelError,
			"failed to attribute transaction",
			slog.String("transaction_id", details.TransactionID),
			slog.String("kind", string(kind)),
			slog.Any(model.KeyLoggerError, err),
		)
		return
	}

	attrs := []slog.Attr{slog.String("transaction_id", details.TransactionID)}
	if resp != nil {
		attrs = append(attrs, slog.String("attribution_id", resp.Transaction.ID))
	}
	n.log.LogAttrs(ctx, slog.LevelInfo, "transaction attributed", attrs...)
}

// Shutdown stops accepting work and waits for in-flight sends or ctx.
func (n *Notifier) Shutdown(ctx context.Context) error {
	n.mu.Lock()
	n.closed = true
	n.mu.Unlock()

	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
