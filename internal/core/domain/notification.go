package domain

import "time"

// PermissionStatus is the recorded notification permission state for a
// bundle identifier on a device.
type PermissionStatus string

const (
	// PermissionUndetermined means the user has never been asked.
	PermissionUndetermined PermissionStatus = "undetermined"
	// PermissionGranted means notifications may be delivered.
	PermissionGranted PermissionStatus = "granted"
	// PermissionDenied means scheduling must be refused.
	PermissionDenied PermissionStatus = "denied"
)

// TriggerKind distinguishes the supported notification triggers.
type TriggerKind string

const (
	// TriggerImmediate delivers the notification right away.
	TriggerImmediate TriggerKind = "immediate"
	// TriggerDelay delivers once after a delay.
	TriggerDelay TriggerKind = "delay"
	// TriggerInterval delivers repeatedly on a fixed interval.
	TriggerInterval TriggerKind = "interval"
)

// Trigger describes when a scheduled notification fires.
type Trigger struct {
	Kind TriggerKind
	// Delay is the one-shot delay for TriggerDelay and the period for
	// TriggerInterval.
	Delay time.Duration
}

// NotificationContent is the user-visible payload of a notification.
type NotificationContent struct {
	Title    string
	Body     string
	Sound    string
	Category string
	// Badge, when non-nil, sets the app icon badge on delivery.
	Badge *int
	// Data carries custom key/value pairs into the payload alongside aps.
	Data map[string]any
}

// NotificationRequest is a scheduled or delivered notification.
type NotificationRequest struct {
	// ID uniquely identifies the request for cancel/dismiss.
	ID      string
	Content NotificationContent
	Trigger Trigger
}

// Action is a tappable action attached to a notification category.
type Action struct {
	ID    string `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	// Foreground launches the app when the action is tapped.
	Foreground bool `yaml:"foreground" json:"foreground"`
}

// Category groups actions under an identifier referenced by notification
// content.
type Category struct {
	ID      string   `yaml:"id" json:"id"`
	Actions []Action `yaml:"actions" json:"actions"`
}
