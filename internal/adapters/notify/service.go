// Package notify implements the push/local-notification workflow against a
// simulator device.
package notify

import (
	"context"
	"slices"
	"strconv"

	"github.com/google/uuid"
	"go.liftoff.dev/liftoff/internal/core/domain"
	"go.liftoff.dev/liftoff/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Notifier = (*Service)(nil)

// Service implements ports.Notifier. Delivery goes through the device
// controller's push interface; triggers fire from an in-process scheduler;
// permission, badge and pending/delivered-notification bookkeeping persists
// in a flat JSON state file shared between liftoff processes.
type Service struct {
	devices   ports.DeviceController
	state     *stateStore
	logger    ports.Logger
	udid      string
	bundleID  string
	sound     string
	scheduler *triggerScheduler
}

// NewService creates a Service for the app on the given device.
func NewService(devices ports.DeviceController, state *stateStore, logger ports.Logger, udid, bundleID, defaultSound string) *Service {
	s := &Service{
		devices:  devices,
		state:    state,
		logger:   logger,
		udid:     udid,
		bundleID: bundleID,
		sound:    defaultSound,
	}
	s.scheduler = newTriggerScheduler(s.fireTrigger)
	return s
}

// Open creates a Service with state stored at statePath.
func Open(devices ports.DeviceController, logger ports.Logger, statePath, udid, bundleID, defaultSound string) (*Service, error) {
	state, err := newStateStore(statePath)
	if err != nil {
		return nil, err
	}
	return NewService(devices, state, logger, udid, bundleID, defaultSound), nil
}

// Permissions reports the recorded permission status.
func (s *Service) Permissions(_ context.Context) (domain.PermissionStatus, error) {
	return s.state.snapshot().Permission, nil
}

// RequestPermissions records a grant unless the user denied before. A prior
// denial is sticky, matching the OS behavior of not re-prompting.
func (s *Service) RequestPermissions(_ context.Context) (domain.PermissionStatus, error) {
	var status domain.PermissionStatus
	err := s.state.update(func(st *state) {
		if st.Permission == domain.PermissionUndetermined {
			st.Permission = domain.PermissionGranted
		}
		status = st.Permission
	})
	if err != nil {
		return "", err
	}
	return status, nil
}

// Schedule registers a notification request. Immediate triggers deliver
// synchronously; delayed and interval triggers are armed on the in-process
// scheduler. Undetermined permissions are auto-requested first.
func (s *Service) Schedule(ctx context.Context, req domain.NotificationRequest) error {
	status, err := s.Permissions(ctx)
	if err != nil {
		return err
	}
	if status == domain.PermissionUndetermined {
		status, err = s.RequestPermissions(ctx)
		if err != nil {
			return err
		}
	}
	if status == domain.PermissionDenied {
		return domain.ErrPermissionDenied
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	switch req.Trigger.Kind {
	case domain.TriggerDelay, domain.TriggerInterval:
		if req.Trigger.Delay <= 0 {
			return zerr.With(zerr.New("trigger delay must be positive"), "id", req.ID)
		}
		err := s.state.update(func(st *state) {
			if !slices.Contains(st.Pending, req.ID) {
				st.Pending = append(st.Pending, req.ID)
			}
		})
		if err != nil {
			return err
		}
		s.scheduler.Add(req)
		return nil
	default:
		s.deliver(req)
		return nil
	}
}

// fireTrigger delivers an armed trigger unless another process cancelled it
// by dropping its id from the shared state file.
func (s *Service) fireTrigger(req domain.NotificationRequest) {
	if err := s.state.load(); err != nil {
		s.logger.Error(err)
	} else if !slices.Contains(s.state.snapshot().Pending, req.ID) {
		s.scheduler.Cancel(req.ID)
		return
	}

	s.deliver(req)

	if req.Trigger.Kind != domain.TriggerInterval {
		err := s.state.update(func(st *state) {
			if i := slices.Index(st.Pending, req.ID); i >= 0 {
				st.Pending = slices.Delete(st.Pending, i, i+1)
			}
		})
		if err != nil {
			s.logger.Error(err)
		}
	}
}

// deliver pushes the payload and records the delivery. Delivery failures are
// logged, not raised: a fired trigger has no caller to report to.
func (s *Service) deliver(req domain.NotificationRequest) {
	payload, err := renderPayload(req.Content, s.sound)
	if err != nil {
		s.logger.Error(err)
		return
	}

	if err := s.devices.Push(context.Background(), s.udid, s.bundleID, payload); err != nil {
		s.logger.Error(zerr.With(err, "notification", req.ID))
		return
	}

	err = s.state.update(func(st *state) {
		if !slices.Contains(st.Delivered, req.ID) {
			st.Delivered = append(st.Delivered, req.ID)
		}
		if req.Content.Badge != nil {
			st.Badge = max(*req.Content.Badge, 0)
		}
	})
	if err != nil {
		s.logger.Error(err)
	}
}

// Cancel removes a pending (not yet fired) request. Triggers armed by
// another liftoff process are reached through the shared state file, which
// their scheduler consults before firing.
func (s *Service) Cancel(_ context.Context, id string) error {
	armed := s.scheduler.Cancel(id)

	persisted := false
	err := s.state.update(func(st *state) {
		if i := slices.Index(st.Pending, id); i >= 0 {
			st.Pending = slices.Delete(st.Pending, i, i+1)
			persisted = true
		}
	})
	if err != nil {
		return err
	}
	if !armed && !persisted {
		return zerr.With(domain.ErrNotificationNotFound, "id", id)
	}
	return nil
}

// Dismiss removes a delivered notification.
func (s *Service) Dismiss(_ context.Context, id string) error {
	found := false
	err := s.state.update(func(st *state) {
		for i, d := range st.Delivered {
			if d == id {
				st.Delivered = slices.Delete(st.Delivered, i, i+1)
				found = true
				return
			}
		}
	})
	if err != nil {
		return err
	}
	if !found {
		return zerr.With(domain.ErrNotificationNotFound, "id", id)
	}
	return nil
}

// Badge returns the recorded app icon badge count.
func (s *Service) Badge(_ context.Context) (int, error) {
	return s.state.snapshot().Badge, nil
}

// SetBadge sets the badge count and delivers a silent badge update. Negative
// counts clamp to zero; zero clears the badge.
func (s *Service) SetBadge(ctx context.Context, count int) error {
	count = max(count, 0)

	badge := count
	payload, err := renderPayload(domain.NotificationContent{Badge: &badge}, "")
	if err != nil {
		return err
	}
	if err := s.devices.Push(ctx, s.udid, s.bundleID, payload); err != nil {
		return zerr.With(err, "badge", strconv.Itoa(count))
	}

	return s.state.update(func(st *state) {
		st.Badge = count
	})
}

// SetCategories replaces the registered notification categories.
func (s *Service) SetCategories(_ context.Context, categories []domain.Category) error {
	return s.state.update(func(st *state) {
		st.Categories = append([]domain.Category(nil), categories...)
	})
}

// Close stops all pending triggers.
func (s *Service) Close() {
	s.scheduler.Shutdown()
}
