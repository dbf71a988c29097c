package notify

import "model-storage/core/update"

// Delivery is one recorded notification. Update is nil for reloads.
type Delivery struct {
	Reload bool           `json:"reload"`
	Update *update.Update `json:"update,omitempty"`
}

// Recorder is a Notifier that remembers every delivery in order.
type Recorder struct {
	deliveries []Delivery
}

// OnUpdate implements Notifier.
func (r *Recorder) OnUpdate(u *update.Update) {
	r.deliveries = append(r.deliveries, Delivery{Update: u})
}

// OnReloadRequired implements Notifier.
func (r *Recorder) OnReloadRequired() {
	r.deliveries = append(r.deliveries, Delivery{Reload: true})
}

// Deliveries returns everything recorded so far.
func (r *Recorder) Deliveries() []Delivery {
	return r.deliveries
}

// Last returns the most recent delivery.
func (r *Recorder) Last() (Delivery, bool) {
	if len(r.deliveries) == 0 {
		return Delivery{}, false
	}
	return r.deliveries[len(r.deliveries)-1], true
}

// Len returns the number of recorded deliveries.
func (r *Recorder) Len() int {
	return len(r.deliveries)
}

// Take returns the recorded deliveries and forgets them.
func (r *Recorder) Take() []Delivery {
	d := r.deliveries
	r.deliveries = nil
	return d
}
