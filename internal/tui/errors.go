package tui

import "strings"

// humanizeServerError replaces raw transport errors with a short message a
// terminal user can act on; everything else passes through unchanged.
func humanizeServerError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "network is down or the server is unreachable"
	}

	return err.Error()
}
