package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errScanAborted = errors.New("scan aborted")

// blockingUoW parks every Begin call on the gate channel so a scan can be
// held in flight from the test. Closing the gate releases all parked and
// future Begin calls with errScanAborted.
type blockingUoW struct {
	gate    chan struct{}
	started chan struct{}
	begins  atomic.Int32
}

func newBlockingUoW() *blockingUoW {
	return &blockingUoW{
		gate:    make(chan struct{}),
		started: make(chan struct{}, 8),
	}
}

func (u *blockingUoW) Begin(ctx context.Context) error {
	u.begins.Add(1)
	u.started <- struct{}{}
	<-u.gate
	return errScanAborted
}

func (u *blockingUoW) Commit(ctx context.Context) error   { return nil }
func (u *blockingUoW) Rollback(ctx context.Context) error { return nil }

func (u *blockingUoW) OrderRepository() ports.OrderRepository {
	return nil
}

func (u *blockingUoW) AuditLogRepository() ports.AuditLogRepository {
	return nil
}

func (u *blockingUoW) NotificationRepository() ports.NotificationRepository {
	return nil
}

type blockingUoWFactory struct {
	uow *blockingUoW
}

func (f blockingUoWFactory) Create() commands.UoW { return f.uow }

type nopPublisher struct{}

func (nopPublisher) Publish(*notification.Notification) {}
func (nopPublisher) PublishOrderUpdate(*order.Order)    {}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newBlockedJob(uow *blockingUoW) *AutomationJob {
	handler := commands.NewRunAutomationChecksCommandHandler(
		blockingUoWFactory{uow: uow}, nopPublisher{}, discardLogger(),
	)
	return NewAutomationJob(handler, discardLogger())
}

func TestAutomationJob_ShouldNotOverlapScans(t *testing.T) {
	uow := newBlockingUoW()
	job := newBlockedJob(uow)

	done := make(chan struct{})
	go func() {
		job.scan.Run()
		close(done)
	}()

	select {
	case <-uow.started:
	case <-time.After(time.Second):
		t.Fatal("first scan never reached the store")
	}

	// The first scan is parked inside its transaction. A tick firing now,
	// whether scheduled or the startup run, must be skipped rather than
	// run concurrently.
	job.scan.Run()
	assert.Equal(t, int32(1), uow.begins.Load(), "second scan must be skipped while the first is in flight")

	close(uow.gate)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("first scan never finished")
	}

	// Only the first scan's two rules ever opened a transaction.
	assert.Equal(t, int32(2), uow.begins.Load())
}

func TestAutomationJob_ShouldScanImmediatelyAtStart(t *testing.T) {
	uow := newBlockingUoW()
	close(uow.gate)
	job := newBlockedJob(uow)

	require.NoError(t, job.Start())
	defer job.Stop()

	select {
	case <-uow.started:
	case <-time.After(time.Second):
		t.Fatal("startup scan did not run")
	}
}
