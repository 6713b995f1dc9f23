package notify

import (
	"sync"
	"time"

	"go.liftoff.dev/liftoff/internal/core/domain"
)

// triggerScheduler fires delayed and repeating notification triggers from
// in-process timers. Pending entries can be cancelled until they fire;
// interval entries stay pending and re-arm after every delivery.
type triggerScheduler struct {
	mu      sync.Mutex
	pending map[string]*pendingTrigger
	fire    func(domain.NotificationRequest)
}

type pendingTrigger struct {
	req   domain.NotificationRequest
	timer *time.Timer
}

func newTriggerScheduler(fire func(domain.NotificationRequest)) *triggerScheduler {
	return &triggerScheduler{
		pending: make(map[string]*pendingTrigger),
		fire:    fire,
	}
}

// Add arms a timer for the request. The caller guarantees a delay or
// interval trigger.
func (s *triggerScheduler) Add(req domain.NotificationRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &pendingTrigger{req: req}
	p.timer = time.AfterFunc(req.Trigger.Delay, func() {
		s.fired(req.ID)
	})
	s.pending[req.ID] = p
}

// fired delivers the request and re-arms interval triggers. Re-arming with
// Reset rather than a fresh AfterFunc keeps the period anchored to the
// delivery time.
func (s *triggerScheduler) fired(id string) {
	s.mu.Lock()
	p, ok := s.pending[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	if p.req.Trigger.Kind == domain.TriggerInterval {
		p.timer.Reset(p.req.Trigger.Delay)
	} else {
		delete(s.pending, id)
	}
	req := p.req
	s.mu.Unlock()

	s.fire(req)
}

// Cancel stops a pending trigger. Returns false for unknown ids.
func (s *triggerScheduler) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.pending[id]
	if !ok {
		return false
	}
	p.timer.Stop()
	delete(s.pending, id)
	return true
}

// Pending reports whether the id has an unfired trigger.
func (s *triggerScheduler) Pending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[id]
	return ok
}

// Shutdown stops all pending triggers.
func (s *triggerScheduler) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range s.pending {
		p.timer.Stop()
		delete(s.pending, id)
	}
}
