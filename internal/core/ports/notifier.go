package ports

import (
	"context"

	"go.liftoff.dev/liftoff/internal/core/domain"
)

// Notifier drives the push/local-notification workflow for one app on one
// device.
//
//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	// Permissions reports the recorded permission status.
	Permissions(ctx context.Context) (domain.PermissionStatus, error)

	// RequestPermissions asks for (and records) notification permissions.
	// Asking again after a denial does not re-prompt.
	RequestPermissions(ctx context.Context) (domain.PermissionStatus, error)

	// Schedule registers a notification request. Immediate triggers deliver
	// before Schedule returns; delayed and interval triggers fire from the
	// in-process scheduler. Returns domain.ErrPermissionDenied when
	// permissions were denied.
	Schedule(ctx context.Context, req domain.NotificationRequest) error

	// Cancel removes a pending (not yet fired) request.
	Cancel(ctx context.Context, id string) error

	// Dismiss removes a delivered notification.
	Dismiss(ctx context.Context, id string) error

	// Badge returns the recorded app icon badge count.
	Badge(ctx context.Context) (int, error)

	// SetBadge sets the badge count and delivers a silent badge update.
	// Negative values are clamped to zero.
	SetBadge(ctx context.Context, count int) error

	// SetCategories replaces the registered notification categories.
	SetCategories(ctx context.Context, categories []domain.Category) error
}
