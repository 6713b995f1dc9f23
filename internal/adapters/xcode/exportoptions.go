package xcode

import (
	"fmt"
	"os"
	"strings"

	"go.liftoff.dev/liftoff/internal/core/ports"
	"go.trai.ch/zerr"
)

const exportOptionsHeader = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
`

// writeExportOptions renders the export options plist for -exportArchive.
func writeExportOptions(path string, req ports.ArchiveRequest) error {
	method := req.ExportMethod
	if method == "" {
		method = "development"
	}

	var sb strings.Builder
	sb.WriteString(exportOptionsHeader)
	fmt.Fprintf(&sb, "\t<key>method</key>\n\t<string>%s</string>\n", method)
	if req.TeamID != "" {
		fmt.Fprintf(&sb, "\t<key>teamID</key>\n\t<string>%s</string>\n", req.TeamID)
	}
	sb.WriteString("\t<key>compileBitcode</key>\n\t<false/>\n")
	sb.WriteString("</dict>\n</plist>\n")

	//nolint:gosec // plist lives next to the export output
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return zerr.Wrap(err, "failed to write export options")
	}
	return nil
}
