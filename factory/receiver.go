package factory

// Receiver gets the progress and the product of one order. Both methods are
// called on the factory's worker goroutine.
type Receiver interface {
	// UpdateProgress is called with strictly increasing values in [0,100].
	UpdateProgress(percent int)
	// Deliver hands over the finished maze. It is called at most once.
	Deliver(m *Maze)
}

// Failer is an optional Receiver extension notified when a job aborts with
// an error other than cancellation.
type Failer interface {
	Fail(err error)
}

// ReceiverFuncs adapts plain funcs to Receiver and Failer. Nil fields are
// skipped.
type ReceiverFuncs struct {
	OnProgress func(percent int)
	OnDeliver  func(m *Maze)
	OnFail     func(err error)
}

// UpdateProgress implements Receiver.
func (r ReceiverFuncs) UpdateProgress(percent int) {
	if r.OnProgress != nil {
		r.OnProgress(percent)
	}
}

// Deliver implements Receiver.
func (r ReceiverFuncs) Deliver(m *Maze) {
	if r.OnDeliver != nil {
		r.OnDeliver(m)
	}
}

// Fail implements Failer.
func (r ReceiverFuncs) Fail(err error) {
	if r.OnFail != nil {
		r.OnFail(err)
	}
}

// progressFilter forwards only values that are in range and larger than the
// last one forwarded.
type progressFilter struct {
	last int
	sink func(int)
}

func newProgressFilter(sink func(int)) *progressFilter {
	return &progressFilter{last: -1, sink: sink}
}

func (p *progressFilter) update(percent int) {
	if percent < 0 || percent > 100 || percent <= p.last {
		return
	}
	p.last = percent
	p.sink(percent)
}
