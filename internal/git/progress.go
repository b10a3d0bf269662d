package git

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// progressWriter reformats git's stderr progress stream for terminal
// display. git rewrites progress lines in place with carriage returns,
// so input is split on both \r and \n.
type progressWriter struct {
	prefix string
	w      io.Writer

	lastPercent string
}

func newProgressWriter(prefix string, w io.Writer) *progressWriter {
	return &progressWriter{prefix: prefix, w: w}
}

var (
	// Receiving objects:  67% (35484/52960), 236.76 MiB | 78.92 MiB/s
	progressRegex = regexp.MustCompile(`(?:Receiving objects|Resolving deltas):\s*(\d+)%\s*\((\d+)/(\d+)\)`)
	// Receiving objects: 100% (52960/52960), 298.63 MiB | 81.39 MiB/s, done.
	completionRegex = regexp.MustCompile(`Receiving objects:\s*100%.*,\s*([\d.]+)\s*([^|,]+)[|,].*done`)
)

func (pw *progressWriter) Write(p []byte) (n int, err error) {
	text := strings.ReplaceAll(string(p), "\r", "\n")
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "remote: ") {
			line = strings.TrimPrefix(line, "remote: ")
		}

		// The caller prints its own header.
		if strings.HasPrefix(line, "Cloning into") {
			continue
		}

		if matches := completionRegex.FindStringSubmatch(line); matches != nil {
			fmt.Fprintf(pw.w, "%s100%% (total %s %s)\n", pw.prefix, matches[1], strings.TrimSpace(matches[2]))
			pw.lastPercent = "100"
			continue
		}

		if matches := progressRegex.FindStringSubmatch(line); matches != nil {
			// Collapse the rewritten-in-place stream to one line per percent.
			if matches[1] == pw.lastPercent {
				continue
			}
			pw.lastPercent = matches[1]
			fmt.Fprintf(pw.w, "%s%s%% (%s/%s)\n", pw.prefix, matches[1], matches[2], matches[3])
			continue
		}

		fmt.Fprintf(pw.w, "%s%s\n", pw.prefix, line)
	}
	return len(p), nil
}
