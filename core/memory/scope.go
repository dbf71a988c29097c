package memory

// BeginUpdates opens an explicit batch scope and returns the function that
// closes it. Every mutation until then is delivered as one notification.
// Calling end more than once has no further effect.
//
//	end := st.BeginUpdates()
//	defer end()
func (s *Storage) BeginUpdates() (end func()) {
	s.beginBatch(true)
	done := false
	return func() {
		if done {
			return
		}
		done = true
		s.endBatch()
	}
}

// PerformUpdates runs fn inside an explicit batch scope. The batch is
// delivered however fn exits, including error returns and panics, and fn's
// error is returned unchanged.
func (s *Storage) PerformUpdates(fn func() error) error {
	end := s.BeginUpdates()
	defer end()
	return fn()
}

// InBatch reports whether a batch is currently open.
func (s *Storage) InBatch() bool {
	return s.depth > 0
}

func (s *Storage) beginBatch(explicit bool) {
	if s.batch == nil {
		s.batch = newBatch(s.sections)
	}
	if explicit {
		s.batch.explicit = true
	}
	s.depth++
}

func (s *Storage) endBatch() {
	s.depth--
	if s.depth > 0 {
		return
	}
	b := s.batch
	s.batch = nil
	s.deliver(b)
}

func (s *Storage) deliver(b *batch) {
	if b.reload {
		s.logger.Debug("Batch requires full reload")
		if s.notifier != nil {
			s.notifier.OnReloadRequired()
		}
		return
	}
	u := b.build()
	if u.IsEmpty() && !b.explicit {
		return
	}
	if s.notifier != nil {
		s.notifier.OnUpdate(u)
	}
}
