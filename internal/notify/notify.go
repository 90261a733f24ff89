// Package notify delivers short user-visible messages (warnings, errors)
// to whatever surface the caller has: a terminal, the log, a test recorder.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/soyeahso/playground/internal/logging"
)

// Level is the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a single user-visible message.
type Notification struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// Notifier surfaces notifications to the end user. Implementations must not
// block the caller for long and never report failures back.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifierFunc adapts a function to a Notifier.
type NotifierFunc func(ctx context.Context, n Notification)

func (f NotifierFunc) Notify(ctx context.Context, n Notification) { f(ctx, n) }

// Discard drops every notification.
var Discard Notifier = NotifierFunc(func(context.Context, Notification) {})

// Sink receives notifications from a Dispatcher.
// Returning an error logs the failure but does not stop delivery to other sinks.
type Sink func(ctx context.Context, n Notification) error

// Dispatcher fans notifications out to named sinks.
type Dispatcher struct {
	mu    sync.RWMutex
	sinks []namedSink
	log   *logging.Logger
	wg    sync.WaitGroup
}

type namedSink struct {
	name string
	sink Sink
}

// NewDispatcher creates a dispatcher with no sinks.
func NewDispatcher(log *logging.Logger) *Dispatcher {
	return &Dispatcher{log: log.Sub("notify")}
}

// On registers a sink under name.
func (d *Dispatcher) On(name string, sink Sink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sinks = append(d.sinks, namedSink{name: name, sink: sink})
	d.log.Debug().Str("sink", name).Msg("sink registered")
}

func (d *Dispatcher) snapshot() []namedSink {
	d.mu.RLock()
	defer d.mu.RUnlock()
	sinks := make([]namedSink, len(d.sinks))
	copy(sinks, d.sinks)
	return sinks
}

// Notify delivers n to every sink on a background goroutine and returns
// immediately. Use Flush to wait for outstanding deliveries.
func (d *Dispatcher) Notify(ctx context.Context, n Notification) {
	sinks := d.snapshot()
	if len(sinks) == 0 {
		return
	}
	n = stamp(n)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.deliver(context.WithoutCancel(ctx), sinks, n)
	}()
}

// Flush blocks until all asynchronous deliveries have finished.
func (d *Dispatcher) Flush() {
	d.wg.Wait()
}

func (d *Dispatcher) deliver(ctx context.Context, sinks []namedSink, n Notification) {
	for _, s := range sinks {
		if err := s.sink(ctx, n); err != nil {
			d.log.Warn().
				Err(err).
				Str("sink", s.name).
				Str("level", string(n.Level)).
				Msg("notification sink error")
		}
	}
}

func stamp(n Notification) Notification {
	if n.Time.IsZero() {
		n.Time = time.Now()
	}
	if n.Level == "" {
		n.Level = LevelInfo
	}
	return n
}

// WriterSink prints one line per notification, e.g. "! Error fetching playground agents".
func WriterSink(w io.Writer) Sink {
	var mu sync.Mutex
	return func(_ context.Context, n Notification) error {
		mu.Lock()
		defer mu.Unlock()
		_, err := fmt.Fprintf(w, "%s %s\n", marker(n.Level), n.Message)
		return err
	}
}

func marker(l Level) string {
	switch l {
	case LevelError:
		return "!!"
	case LevelWarning:
		return "!"
	default:
		return "-"
	}
}

// LogSink forwards notifications to a structured logger.
func LogSink(log *logging.Logger) Sink {
	return func(_ context.Context, n Notification) error {
		log.WithLevel(zerologLevel(n.Level)).
			Time("at", n.Time).
			Msg(n.Message)
		return nil
	}
}

func zerologLevel(l Level) zerolog.Level {
	switch l {
	case LevelError:
		return zerolog.ErrorLevel
	case LevelWarning:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// Recorder keeps every notification it receives in memory.
type Recorder struct {
	mu   sync.Mutex
	seen []Notification
}

// Notify implements Notifier.
func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, stamp(n))
}

// Sink returns r as a Dispatcher sink.
func (r *Recorder) Sink() Sink {
	return func(ctx context.Context, n Notification) error {
		r.Notify(ctx, n)
		return nil
	}
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.seen))
	copy(out, r.seen)
	return out
}

// Len returns how many notifications were recorded.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}

// Warn is shorthand for a warning-level Notify.
func Warn(ctx context.Context, n Notifier, format string, args ...any) {
	n.Notify(ctx, Notification{Level: LevelWarning, Message: fmt.Sprintf(format, args...)})
}
