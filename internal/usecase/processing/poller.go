package processing

import (
	"context"
	stdErrors "errors"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/storykeep/storykeep/errors"
	"github.com/storykeep/storykeep/internal/domain/entities"
)

const (
	// DefaultPollInterval is the cadence between successful non-terminal polls
	DefaultPollInterval = 3 * time.Second
	// DefaultMaxAttempts bounds total polling duration to roughly
	// interval * attempts before giving up with a timeout message
	DefaultMaxAttempts = 60
	// DefaultErrorBackoffFactor stretches the wait after a transport error.
	// A fixed multiplier, not exponential growth: one blip should not push
	// the next poll out by minutes.
	DefaultErrorBackoffFactor = 2.0

	timeoutMessage = "Processing is taking longer than expected. Your story may still complete in the background - check back later."
	failedMessage  = "Processing failed"
	reauthMessage  = "Your session has expired. Sign in again to continue."
)

// StatusFetcher retrieves the processing status of a story. Implemented by the
// API client.
type StatusFetcher interface {
	GetProcessingStatus(ctx context.Context, storyID string) (*entities.ProcessingStatus, error)
}

// Callbacks receive poll outcomes. OnUpdate fires on every successful
// non-terminal poll. Exactly one of OnComplete or OnError fires per watch,
// unless the watch is stopped first. Any callback may be nil.
type Callbacks struct {
	OnUpdate   func(status *entities.ProcessingStatus)
	OnComplete func(status *entities.ProcessingStatus)
	OnError    func(message string)
}

// Options configures a watch. Zero values fall back to the defaults above.
type Options struct {
	PollInterval       time.Duration
	MaxAttempts        int
	ErrorBackoffFactor float64
}

func (o Options) withDefaults() Options {
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.ErrorBackoffFactor <= 0 {
		o.ErrorBackoffFactor = DefaultErrorBackoffFactor
	}
	return o
}

// Watcher drives fixed-interval polling loops against the status endpoint
type Watcher struct {
	fetcher StatusFetcher
	logger  *zap.Logger
}

// NewWatcher creates a watcher backed by the given status fetcher
func NewWatcher(fetcher StatusFetcher, logger *zap.Logger) *Watcher {
	return &Watcher{fetcher: fetcher, logger: logger}
}

// Watch is a handle to a running polling loop. Stop cancels the loop so a view
// being torn down does not leak timers; no further callbacks fire after the
// loop observes the cancellation.
type Watch struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Stop cancels the polling loop. Safe to call more than once.
func (w *Watch) Stop() {
	w.cancel()
}

// Done is closed when the polling loop has fully exited
func (w *Watch) Done() <-chan struct{} {
	return w.done
}

// Watch starts polling the processing status of storyID until a terminal step
// is reached, the attempt budget is exhausted, or the watch is stopped.
// Requests are strictly sequential: the next poll is only scheduled after the
// previous response resolves, so there is never more than one in flight.
// Watch never blocks and never fails synchronously; all outcomes arrive
// through the callbacks.
func (w *Watcher) Watch(ctx context.Context, storyID string, cb Callbacks, opts Options) *Watch {
	opts = opts.withDefaults()

	ctx, cancel := context.WithCancel(ctx)
	watch := &Watch{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(watch.done)
		defer cancel()
		w.run(ctx, storyID, cb, opts)
	}()

	return watch
}

func (w *Watcher) run(ctx context.Context, storyID string, cb Callbacks, opts Options) {
	errorWait := backoff.NewConstantBackOff(
		time.Duration(opts.ErrorBackoffFactor * float64(opts.PollInterval)))

	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		status, err := w.fetcher.GetProcessingStatus(ctx, storyID)
		if ctx.Err() != nil {
			// Stopped by the caller; stay silent.
			return
		}

		if err != nil {
			var appErr errors.AppError
			if stdErrors.As(err, &appErr) && appErr.Code == errors.ErrorCode_AUTH_TOKEN_REJECTED {
				// A rejected token will not heal on its own; retrying would
				// only waste the budget against an expired session.
				if w.logger != nil {
					w.logger.Warn("status poll rejected by auth",
						zap.String("story_id", storyID))
				}
				if cb.OnError != nil {
					cb.OnError(reauthMessage)
				}
				return
			}

			// Transient transport or parse failure: consume one attempt and
			// wait longer than the normal cadence before trying again.
			if w.logger != nil {
				w.logger.Warn("status poll failed, will retry",
					zap.String("story_id", storyID),
					zap.Int("attempt", attempt),
					zap.Error(err))
			}
			if attempt == opts.MaxAttempts {
				// No point sleeping into the timeout.
				break
			}
			if !w.wait(ctx, errorWait.NextBackOff()) {
				return
			}
			continue
		}

		switch {
		case status.CurrentStep == entities.ProcessingStepPublished:
			if w.logger != nil {
				w.logger.Info("story processing completed",
					zap.String("story_id", storyID),
					zap.Int("attempts", attempt))
			}
			if cb.OnComplete != nil {
				cb.OnComplete(status)
			}
			return

		case status.CurrentStep == entities.ProcessingStepFailed:
			message := status.Error
			if message == "" {
				message = failedMessage
			}
			if w.logger != nil {
				w.logger.Error("story processing failed",
					zap.String("story_id", storyID),
					zap.String("error", message))
			}
			if cb.OnError != nil {
				cb.OnError(message)
			}
			return

		default:
			if cb.OnUpdate != nil {
				cb.OnUpdate(status)
			}
			if attempt == opts.MaxAttempts {
				// No point sleeping into the timeout.
				break
			}
			if !w.wait(ctx, opts.PollInterval) {
				return
			}
		}
	}

	if w.logger != nil {
		w.logger.Warn("status poll budget exhausted",
			zap.String("story_id", storyID),
			zap.Int("attempts", opts.MaxAttempts))
	}
	if cb.OnError != nil {
		cb.OnError(timeoutMessage)
	}
}

// wait sleeps for d or until the context is cancelled. Returns false on
// cancellation.
func (w *Watcher) wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
