package publishers

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"nginx-monitor/internal/models"
	"nginx-monitor/internal/shared/loggers"
	"nginx-monitor/internal/stores"
)

const (
	exportFlushTimeout = 2 * time.Second

	exportResultOK    = "ok"
	exportResultError = "error"
	exportResultPanic = "panic"
)

// FilePublisher writes published snapshots to a SnapshotFileStore on its own goroutine.
// Only the newest unwritten snapshot is kept; older ones are replaced.
//
//go:generate mockgen -source=file_publisher.go -destination=./mocks/file_publisher_mock.go -package=mocks
type FilePublisher interface {
	Publisher
	Start(ctx context.Context)
	// Stop writes the pending snapshot, if any, and waits for the worker to return.
	Stop()
}

type filePublisher struct {
	fileStore stores.SnapshotFileStore

	mu      sync.Mutex
	pending chan *models.Snapshot

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewFilePublisher(fileStore stores.SnapshotFileStore, logger loggers.Logger) FilePublisher {
	return &filePublisher{
		fileStore: fileStore,
		pending:   make(chan *models.Snapshot, 1),
		stopCh:    make(chan struct{}),
		logger:    logger,
	}
}

func (p *filePublisher) Publish(snapshot *models.Snapshot) {
	if snapshot == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	select {
	case <-p.pending:
		metricExportReplacedTotal.Inc()
	default:
	}
	p.pending <- snapshot
}

func (p *filePublisher) Start(ctx context.Context) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		p.run(ctx)
	}()
}

func (p *filePublisher) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}

func (p *filePublisher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			p.flush()
			return
		case <-p.stopCh:
			p.flush()
			return
		case snapshot := <-p.pending:
			p.save(ctx, snapshot)
		}
	}
}

func (p *filePublisher) flush() {
	select {
	case snapshot := <-p.pending:
		ctx, cancel := context.WithTimeout(context.Background(), exportFlushTimeout)
		defer cancel()

		p.save(p.logger.WithContext(ctx), snapshot)
	default:
	}
}

func (p *filePublisher) save(ctx context.Context, snapshot *models.Snapshot) {
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Err(fmt.Errorf("%v", r)).
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("fileStore writer panic recovered")
			metricExportWritesTotal.WithLabelValues(exportResultPanic).Inc()
		}
	}()

	if err := p.fileStore.Save(ctx, snapshot); err != nil {
		loggers.Ctx(ctx).Error().Err(err).Msg("failed to fileStore snapshot")
		metricExportWritesTotal.WithLabelValues(exportResultError).Inc()
		return
	}
	metricExportWritesTotal.WithLabelValues(exportResultOK).Inc()
}
