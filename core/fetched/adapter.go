package fetched

import (
	"model-storage/core/notify"
	"model-storage/core/update"

	"go.uber.org/zap"
)

// Listener receives the change events of an external controller.
type Listener interface {
	BeginChanges()
	SectionInserted(index int)
	SectionDeleted(index int)
	SectionUpdated(index int)
	ObjectInserted(at update.IndexPath)
	ObjectDeleted(at update.IndexPath)
	ObjectUpdated(at update.IndexPath)
	ObjectMoved(from, to update.IndexPath)
	EndChanges()
}

// State is the adapter's position in the Begin/End protocol.
type State int

const (
	// Idle waits for BeginChanges.
	Idle State = iota
	// Collecting stages events until EndChanges.
	Collecting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Collecting:
		return "collecting"
	default:
		return "unknown"
	}
}

// Adapter turns a controller's event stream into updates.
type Adapter struct {
	state    State
	staged   *update.Update
	notifier notify.Notifier
	logger   *zap.Logger
}

var _ Listener = (*Adapter)(nil)

// NewAdapter creates an idle adapter delivering to n, which may be nil.
func NewAdapter(n notify.Notifier, opts ...Option) *Adapter {
	o := newOptions(opts)
	return &Adapter{
		notifier: n,
		logger:   o.logger,
	}
}

// SetNotifier replaces the observer.
func (a *Adapter) SetNotifier(n notify.Notifier) {
	a.notifier = n
}

// State returns the current protocol state.
func (a *Adapter) State() State {
	return a.state
}

// BeginChanges implements Listener.
func (a *Adapter) BeginChanges() {
	if a.state == Collecting {
		a.logger.Warn("BeginChanges received while collecting, discarding staged changes")
		a.reload()
	}
	a.state = Collecting
	a.staged = update.New()
}

// SectionInserted implements Listener.
func (a *Adapter) SectionInserted(index int) {
	if a.collecting("SectionInserted") {
		a.staged.InsertSection(index)
	}
}

// SectionDeleted implements Listener.
func (a *Adapter) SectionDeleted(index int) {
	if a.collecting("SectionDeleted") {
		a.staged.DeleteSection(index)
	}
}

// SectionUpdated implements Listener.
func (a *Adapter) SectionUpdated(index int) {
	if a.collecting("SectionUpdated") {
		a.staged.UpdateSection(index)
	}
}

// ObjectInserted implements Listener.
func (a *Adapter) ObjectInserted(at update.IndexPath) {
	if a.collecting("ObjectInserted") {
		a.staged.InsertItem(at)
	}
}

// ObjectDeleted implements Listener.
func (a *Adapter) ObjectDeleted(at update.IndexPath) {
	if a.collecting("ObjectDeleted") {
		a.staged.DeleteItem(at)
	}
}

// ObjectUpdated implements Listener.
func (a *Adapter) ObjectUpdated(at update.IndexPath) {
	if a.collecting("ObjectUpdated") {
		a.staged.UpdateItem(at)
	}
}

// ObjectMoved implements Listener. A move that keeps its position is staged
// as an update.
func (a *Adapter) ObjectMoved(from, to update.IndexPath) {
	if !a.collecting("ObjectMoved") {
		return
	}
	if from == to {
		a.staged.UpdateItem(to)
		return
	}
	a.staged.MoveItem(from, to)
}

// EndChanges implements Listener.
func (a *Adapter) EndChanges() {
	if a.state != Collecting {
		a.logger.Warn("EndChanges received while idle")
		a.reload()
		return
	}
	u := a.staged
	a.state = Idle
	a.staged = nil
	if u.IsEmpty() || a.notifier == nil {
		return
	}
	a.notifier.OnUpdate(u)
}

func (a *Adapter) collecting(event string) bool {
	if a.state == Collecting {
		return true
	}
	a.logger.Warn("Change event received outside of a change bracket", zap.String("event", event))
	a.reload()
	return false
}

func (a *Adapter) reload() {
	a.staged = nil
	if a.notifier != nil {
		a.notifier.OnReloadRequired()
	}
}
