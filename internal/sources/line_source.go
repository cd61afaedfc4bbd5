package sources

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"nginx-monitor/internal/shared/logfiles"
	"nginx-monitor/internal/shared/loggers"
)

const (
	resultOK      = "ok"
	resultMissing = "missing"
	resultTimeout = "timeout"
	resultError   = "error"
)

// LineSource returns the most recent lines of a log file.
//
// Tail never fails: a missing file, a read error or a read that outlives the timeout all yield an
// empty slice. Lines are returned in file order without their line terminators, and empty lines
// are skipped.
//
//go:generate mockgen -source=line_source.go -destination=./mocks/line_source_mock.go -package=mocks
type LineSource interface {
	Tail(ctx context.Context, path string, maxLines int) []string
}

type lineSource struct {
	opener  logfiles.FileOpener
	timeout time.Duration
}

func NewLineSource(opener logfiles.FileOpener, timeout time.Duration) LineSource {
	return &lineSource{
		opener:  opener,
		timeout: timeout,
	}
}

type tailResult struct {
	lines []string
	err   error
}

func (s *lineSource) Tail(ctx context.Context, path string, maxLines int) []string {
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldFilePath, path).Logger()

	if maxLines <= 0 {
		return []string{}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	guard := &readGuard{}
	resultCh := make(chan tailResult, 1)

	go func() {
		file, err := s.opener.Open(ctx, path)
		if err != nil {
			resultCh <- tailResult{err: err}
			return
		}
		if !guard.attach(file) {
			_ = file.Close()
			return
		}
		defer guard.release()

		lines, err := readTail(file, maxLines)
		resultCh <- tailResult{lines: lines, err: err}
	}()

	select {
	case res := <-resultCh:
		switch {
		case res.err == nil:
			metricTailTotal.WithLabelValues(resultOK).Inc()
			return res.lines
		case errors.Is(res.err, logfiles.ErrFileNotFound):
			logger.Debug().Msg("log file not found")
			metricTailTotal.WithLabelValues(resultMissing).Inc()
		case errors.Is(res.err, context.DeadlineExceeded):
			logger.Warn().Dur(loggers.FieldDuration, s.timeout).Msg("log tail timed out")
			metricTailTotal.WithLabelValues(resultTimeout).Inc()
		default:
			logger.Warn().Err(res.err).Msg("failed to tail log file")
			metricTailTotal.WithLabelValues(resultError).Inc()
		}
		return []string{}

	case <-ctx.Done():
		guard.abandon()
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			logger.Warn().Dur(loggers.FieldDuration, s.timeout).Msg("log tail timed out")
			metricTailTotal.WithLabelValues(resultTimeout).Inc()
		} else {
			logger.Debug().Err(ctx.Err()).Msg("log tail cancelled")
			metricTailTotal.WithLabelValues(resultError).Inc()
		}
		return []string{}
	}
}

// readGuard owns the open handle of one Tail call. Whichever of release and abandon runs first
// closes the handle; a handle attached after abandon is refused.
type readGuard struct {
	mu        sync.Mutex
	closer    io.Closer
	abandoned bool
}

func (g *readGuard) attach(c io.Closer) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.abandoned {
		return false
	}
	g.closer = c
	return true
}

func (g *readGuard) release() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.closeLocked()
}

func (g *readGuard) abandon() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.abandoned = true
	g.closeLocked()
}

func (g *readGuard) closeLocked() {
	if g.closer != nil {
		_ = g.closer.Close()
		g.closer = nil
	}
}
