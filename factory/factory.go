package factory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/katalvlaran/lvmaze/cache"
	"github.com/katalvlaran/lvmaze/floorplan"
	"github.com/sirupsen/logrus"
)

// State of a Factory.
type State int

const (
	// Idle accepts orders.
	Idle State = iota
	// Generating runs one job and rejects new orders.
	Generating
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Generating:
		return "generating"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Factory builds one maze at a time on a worker goroutine.
type Factory struct {
	mu    sync.Mutex
	state State
	job   *job

	log   logrus.FieldLogger
	cache cache.Cache
}

type job struct {
	id     uuid.UUID
	order  Order
	recv   Receiver
	cancel context.CancelFunc
	done   chan struct{}

	// delivering is set under Factory.mu once the job is past cancellation.
	delivering bool
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger routes job lifecycle logs to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("factory: WithLogger(nil)")
	}
	return func(f *Factory) { f.log = l }
}

// WithCache makes identical orders reuse floorplans stored in c. Panics on nil.
func WithCache(c cache.Cache) Option {
	if c == nil {
		panic("factory: WithCache(nil)")
	}
	return func(f *Factory) { f.cache = c }
}

// New returns an idle Factory.
func New(opts ...Option) *Factory {
	f := &Factory{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State returns the current state.
func (f *Factory) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Order starts building o for r. It returns (false, err) for an order that
// can never be built and (false, nil) while another job is running; the
// running job is not affected. On (true, nil) a worker goroutine owns the
// job until it delivers, fails or is canceled.
func (f *Factory) Order(o Order, r Receiver) (bool, error) {
	if r == nil {
		return false, ErrNilReceiver
	}
	if err := o.Validate(); err != nil {
		return false, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == Generating {
		f.log.WithField("job", f.job.id).Debug("order rejected, factory busy")
		return false, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	j := &job{
		id:     uuid.New(),
		order:  o,
		recv:   r,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	f.state = Generating
	f.job = j
	go f.run(ctx, j)

	return true, nil
}

// Cancel stops the running job at its next checkpoint and blocks until the
// worker has returned. A job canceled before delivery began delivers
// nothing. Once Deliver has been entered the job can no longer be canceled
// and Cancel waits for it to return. Cancel is a no-op when idle and must not
// be called from a Receiver callback.
func (f *Factory) Cancel() {
	f.mu.Lock()
	j := f.job
	if j != nil && !j.delivering {
		j.cancel()
	}
	f.mu.Unlock()
	if j != nil {
		<-j.done
	}
}

// WaitTillDelivered blocks until the running job has finished. It returns
// immediately when idle.
func (f *Factory) WaitTillDelivered() {
	f.mu.Lock()
	j := f.job
	f.mu.Unlock()
	if j != nil {
		<-j.done
	}
}

func (f *Factory) run(ctx context.Context, j *job) {
	defer close(j.done)
	defer f.finish(j)
	defer j.cancel()

	log := f.log.WithField("job", j.id).WithFields(j.order.fields())
	log.Info("maze generation started")

	progress := newProgressFilter(j.recv.UpdateProgress)
	progress.update(0)

	m, err := f.produce(ctx, j, progress.update, log)
	if err == nil {
		err = f.commit(ctx, j)
	}
	switch {
	case err == nil:
		m.ID = j.id
		progress.update(100)
		j.recv.Deliver(m)
		log.WithField("start", m.Start.String()).Info("maze delivered")
	case errors.Is(err, context.Canceled):
		log.Info("maze generation canceled")
	default:
		log.WithError(err).Error("maze generation failed")
		if fr, ok := j.recv.(Failer); ok {
			fr.Fail(err)
		}
	}
}

// commit marks j as delivering unless it was canceled first.
func (f *Factory) commit(ctx context.Context, j *job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	j.delivering = true
	return nil
}

func (f *Factory) finish(j *job) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.job == j {
		f.job = nil
		f.state = Idle
	}
}

// produce builds the maze for j, going through the cache when one is set.
func (f *Factory) produce(ctx context.Context, j *job, progress func(int), log *logrus.Entry) (*Maze, error) {
	if f.cache == nil {
		return generate(ctx, j.order, progress, log)
	}

	key := j.order.Key()
	log = log.WithField("key", key)
	if l, ok := f.cache.(cache.Locker); ok {
		unlock, err := l.Lock(ctx, key)
		switch {
		case err == nil:
			defer func() {
				if err := unlock(context.Background()); err != nil {
					log.WithError(err).Warn("cache unlock failed")
				}
			}()
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			log.WithError(err).Warn("cache lock unavailable, generating without it")
		}
	}

	fp, err := f.cache.Get(ctx, key)
	switch {
	case err == nil:
		log.Debug("cache hit")
		progress(buildEnd)
		return assemble(j.order, fp, progress)
	case errors.Is(err, cache.ErrMiss):
		log.Debug("cache miss")
	default:
		log.WithError(err).Warn("cache read failed")
	}

	m, err := generate(ctx, j.order, progress, log)
	if err != nil {
		return nil, err
	}
	if err := f.store(ctx, key, m.Floorplan); err != nil {
		log.WithError(err).Warn("cache write failed")
	}
	return m, nil
}

func (f *Factory) store(ctx context.Context, key string, fp *floorplan.Floorplan) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return f.cache.Put(ctx, key, fp)
}
