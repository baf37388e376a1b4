package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-utils/internal/document"
)

const uiDivider = "──────────────────────────────────────────────────────"

const (
	previewLines = 14
	previewWidth = 58
)

// mergedJSON renders the merged document the way the writer would,
// so the clipboard matches the file output.
func mergedJSON(doc map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := document.Save(&buf, doc, document.FormatJSON, 2); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// previewText renders value as indented JSON clamped to the preview
// window.
func previewText(value any) (string, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", err
	}

	lines := strings.Split(string(data), "\n")
	var b strings.Builder
	for i, line := range lines {
		if i == previewLines {
			b.WriteString(fmt.Sprintf("… ещё %d\n", len(lines)-i))
			break
		}
		b.WriteString(fitText(line, previewWidth))
		b.WriteString("\n")
	}

	return b.String(), nil
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
