package simctl

import (
	"encoding/json"
	"strings"

	"go.liftoff.dev/liftoff/internal/core/domain"
	"go.trai.ch/zerr"
)

// deviceList mirrors `xcrun simctl list -j devices`: runtime identifier to
// device entries.
type deviceList struct {
	Devices map[string][]deviceEntry `json:"devices"`
}

type deviceEntry struct {
	UDID        string `json:"udid"`
	Name        string `json:"name"`
	State       string `json:"state"`
	IsAvailable bool   `json:"isAvailable"`
}

// parseDeviceList flattens simctl's runtime-keyed device map into available
// iOS devices, booted ones first.
func parseDeviceList(data []byte) ([]domain.Device, error) {
	var list deviceList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, zerr.Wrap(err, "failed to parse device list")
	}

	var booted, available []domain.Device
	for runtime, entries := range list.Devices {
		if !strings.Contains(runtime, "iOS") {
			continue
		}
		for _, entry := range entries {
			if !entry.IsAvailable {
				continue
			}
			d := domain.Device{
				UDID:   entry.UDID,
				Name:   entry.Name,
				OS:     runtimeOS(runtime),
				Booted: entry.State == "Booted",
			}
			if d.Booted {
				booted = append(booted, d)
			} else {
				available = append(available, d)
			}
		}
	}

	return append(booted, available...), nil
}

// runtimeOS turns "com.apple.CoreSimulator.SimRuntime.iOS-17-2" into "iOS 17.2".
func runtimeOS(runtime string) string {
	const prefix = "com.apple.CoreSimulator.SimRuntime."
	s := strings.TrimPrefix(runtime, prefix)
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return s
	}
	return parts[0] + " " + strings.ReplaceAll(parts[1], "-", ".")
}
