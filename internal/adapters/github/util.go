package github

import (
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

func parseRateHeaders(h http.Header) (remaining int, reset time.Time, retryAfter int) {
	remaining = atoi(h.Get("X-RateLimit-Remaining"))
	rs := h.Get("X-RateLimit-Reset")
	if rs != "" {
		sec := atoi(rs)
		if sec > 0 {
			reset = time.Unix(int64(sec), 0).UTC()
		}
	}
	retryAfter = atoi(h.Get("Retry-After"))
	return
}

// computeWait decides how long to wait based on headers
func computeWait(remaining int, reset time.Time, retryAfter int, now time.Time) time.Duration {
	if retryAfter > 0 {
		return time.Duration(retryAfter) * time.Second
	}
	if remaining <= 0 && !reset.IsZero() {
		if reset.After(now) {
			return reset.Sub(now)
		}
		return 0
	}
	return 0
}

// hasNextLink reports whether the Link response header declares a rel="next" relation
func hasNextLink(h http.Header) bool {
	link := h.Get("Link")
	if link == "" {
		return false
	}
	for _, part := range strings.Split(link, ",") {
		if _, rel, ok := strings.Cut(part, ";"); ok && strings.Contains(rel, `rel="next"`) {
			return true
		}
	}
	return false
}

// SplitRepositoryURL extracts (owner, name) from a search hit repository_url,
// e.g. https://api.github.com/repos/acme/widgets -> ("acme", "widgets")
func SplitRepositoryURL(s string) (owner, name string) {
	s = strings.TrimRight(s, "/")
	parts := strings.Split(s, "/")
	if len(parts) < 2 {
		return "", s
	}
	return parts[len(parts)-2], parts[len(parts)-1]
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	i, _ := strconv.Atoi(s)
	return i
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
