package notify

import "model-storage/core/update"

// Notifier receives the outcome of each completed batch.
type Notifier interface {
	// OnUpdate is called with the batch's change descriptor. The descriptor
	// is owned by the receiver from this point on.
	OnUpdate(u *update.Update)
	// OnReloadRequired is called instead of OnUpdate when the batch must be
	// treated as a full reload.
	OnReloadRequired()
}

// Funcs is a Notifier built from optional callbacks. A nil Update callback
// degrades every delivery to Reload; when both are nil deliveries are dropped.
type Funcs struct {
	Update func(u *update.Update)
	Reload func()
}

// OnUpdate implements Notifier.
func (f Funcs) OnUpdate(u *update.Update) {
	if f.Update != nil {
		f.Update(u)
		return
	}
	f.OnReloadRequired()
}

// OnReloadRequired implements Notifier.
func (f Funcs) OnReloadRequired() {
	if f.Reload != nil {
		f.Reload()
	}
}
