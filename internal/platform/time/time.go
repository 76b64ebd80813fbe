// Package time contains time related helpers
package time

import "time"

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// Deref returns the zero time if p is nil, else *p
func Deref(p *time.Time) time.Time {
	if p == nil {
		return time.Time{}
	}
	return *p
}
