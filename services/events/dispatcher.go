package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const callEvent = "internal:call"

var ErrStopped = errors.New("dispatcher stopped")

// Event is one unit of work for the consumer. Payload is whatever the
// producer decoded; handlers assert the type they registered for.
type Event struct {
	ID      string
	Name    string
	ConnID  string
	Origin  string
	Payload any

	call func(ctx context.Context)
}

type Handler func(ctx context.Context, evt Event) error

type ErrorHandler func(evt Event, err error)

// Dispatcher serializes every event through a single consumer goroutine.
// Handlers run one at a time, so state they touch needs no locking.
// Register handlers before calling Run.
type Dispatcher struct {
	queue    chan Event
	handlers map[string]Handler
	onError  ErrorHandler
	done     chan struct{}
	stop     sync.Once
}

func NewDispatcher(size int) *Dispatcher {
	if size <= 0 {
		size = 1
	}
	return &Dispatcher{
		queue:    make(chan Event, size),
		handlers: make(map[string]Handler),
		done:     make(chan struct{}),
	}
}

func (d *Dispatcher) Handle(name string, h Handler) {
	d.handlers[name] = h
}

// OnError is called, on the consumer goroutine, when a handler fails or panics
func (d *Dispatcher) OnError(fn ErrorHandler) {
	d.onError = fn
}

// Post enqueues evt, blocking while the queue is full.
// Returns false once the dispatcher is stopped.
func (d *Dispatcher) Post(evt Event) bool {
	if evt.ID == "" {
		evt.ID = uuid.NewString()
	}
	select {
	case <-d.done:
		return false
	default:
	}
	select {
	case d.queue <- evt:
		return true
	case <-d.done:
		return false
	}
}

// After posts evt once delay has elapsed. The handler must re-check state.
func (d *Dispatcher) After(delay time.Duration, evt Event) *time.Timer {
	return time.AfterFunc(delay, func() {
		d.Post(evt)
	})
}

// Every posts evt on each tick until ctx is cancelled or the dispatcher stops
func (d *Dispatcher) Every(ctx context.Context, interval time.Duration, evt Event) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-d.done:
				return
			case <-ticker.C:
				e := evt
				e.ID = ""
				d.Post(e)
			}
		}
	}()
}

// Call runs fn on the consumer goroutine and waits for it to finish
func (d *Dispatcher) Call(ctx context.Context, fn func(ctx context.Context)) error {
	finished := make(chan struct{})
	evt := Event{Name: callEvent, call: func(ctx context.Context) {
		defer close(finished)
		fn(ctx)
	}}
	if !d.Post(evt) {
		return ErrStopped
	}
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-d.done:
		return ErrStopped
	}
}

// Run consumes events until ctx is cancelled or Stop is called
func (d *Dispatcher) Run(ctx context.Context) {
	log.Info().Int("queue", cap(d.queue)).Msg("event dispatcher running")
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.done:
			return
		case evt := <-d.queue:
			d.Process(ctx, evt)
		}
	}
}

func (d *Dispatcher) Stop() {
	d.stop.Do(func() { close(d.done) })
}

// Process runs a single event. A failing or panicking handler is reported
// to the error handler and never affects the next event.
func (d *Dispatcher) Process(ctx context.Context, evt Event) {
	defer func() {
		if r := recover(); r != nil {
			d.fail(evt, fmt.Errorf("panic handling %s: %v", evt.Name, r))
		}
	}()

	if evt.call != nil {
		evt.call(ctx)
		return
	}

	h, ok := d.handlers[evt.Name]
	if !ok {
		log.Warn().Str("event", evt.Name).Str("event_id", evt.ID).Msg("no handler registered")
		return
	}
	if err := h(ctx, evt); err != nil {
		d.fail(evt, err)
	}
}

func (d *Dispatcher) fail(evt Event, err error) {
	log.Error().Err(err).Str("event", evt.Name).Str("event_id", evt.ID).Str("conn", evt.ConnID).Msg("[EVENT-ERROR] handler failed")
	if d.onError != nil {
		d.onError(evt, err)
	}
}
