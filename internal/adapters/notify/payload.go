package notify

import (
	"encoding/json"

	"go.liftoff.dev/liftoff/internal/core/domain"
	"go.trai.ch/zerr"
)

// apsPayload mirrors the aps dictionary of an APNs payload.
type apsPayload struct {
	Alert            *apsAlert `json:"alert,omitempty"`
	Badge            *int      `json:"badge,omitempty"`
	Sound            string    `json:"sound,omitempty"`
	Category         string    `json:"category,omitempty"`
	ContentAvailable int       `json:"content-available,omitempty"`
}

type apsAlert struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

// renderPayload builds the APNs-style JSON delivered via simctl push. Custom
// data keys sit alongside aps; aps itself cannot be overridden.
func renderPayload(content domain.NotificationContent, defaultSound string) ([]byte, error) {
	aps := apsPayload{
		Badge:    content.Badge,
		Category: content.Category,
	}

	if content.Title != "" || content.Body != "" {
		aps.Alert = &apsAlert{Title: content.Title, Body: content.Body}
		aps.Sound = content.Sound
		if aps.Sound == "" {
			aps.Sound = defaultSound
		}
	} else {
		// No alert means a silent update; APNs requires content-available.
		aps.ContentAvailable = 1
	}

	payload := map[string]any{"aps": aps}
	for k, v := range content.Data {
		if k == "aps" {
			continue
		}
		payload[k] = v
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to render notification payload")
	}
	return data, nil
}
