package xcode

import (
	"encoding/json"

	"go.trai.ch/zerr"
)

// settingsEntry mirrors one element of `xcodebuild -showBuildSettings -json`.
type settingsEntry struct {
	Action        string            `json:"action"`
	Target        string            `json:"target"`
	BuildSettings map[string]string `json:"buildSettings"`
}

// parseBuildSettings extracts the build settings of the first target from
// xcodebuild's JSON output.
func parseBuildSettings(data []byte) (map[string]string, error) {
	var entries []settingsEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, zerr.Wrap(err, "failed to parse build settings")
	}
	if len(entries) == 0 {
		return nil, zerr.New("build settings output is empty")
	}
	return entries[0].BuildSettings, nil
}
