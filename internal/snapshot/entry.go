package snapshot

import (
	"strings"
	"time"

	"github.com/rusenback/dockersnap/internal/model"
)

const (
	// TimestampLayout is ISO-8601 UTC at second precision.
	TimestampLayout = "2006-01-02T15:04:05Z"

	queryFailedLine = "ERROR: Docker query failed"
	noContainers    = "No containers found. (docker ps returned empty)"
)

// Separator starts every log entry.
var Separator = strings.Repeat("=", 72)

// FormatEntry builds one log block. ok reports whether the query
// succeeded; output is the raw listing on success and the diagnostic
// text on failure.
func FormatEntry(ts time.Time, ok bool, output string) string {
	var b strings.Builder
	b.WriteString(Separator + "\n")
	b.WriteString("Timestamp: " + ts.UTC().Format(TimestampLayout) + "\n")

	if !ok {
		b.WriteString(queryFailedLine + "\n")
		b.WriteString(output + "\n")
		return b.String()
	}

	if output == "" {
		b.WriteString(noContainers + "\n")
		return b.String()
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if c, valid := model.ParseLine(line); valid {
			b.WriteString(c.TabLine() + "\n")
		} else {
			// malformed rows are kept as-is
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}
