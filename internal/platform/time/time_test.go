package time

import (
	"testing"
	"time"
)

func TestPtrAndDeref(t *testing.T) {
	if Ptr(time.Time{}) != nil {
		t.Fatal("Ptr of zero time should be nil")
	}

	at := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)
	p := Ptr(at)
	if p == nil || !p.Equal(at) {
		t.Fatalf("Ptr(%v) = %v", at, p)
	}

	if !Deref(nil).IsZero() {
		t.Fatal("Deref(nil) should be the zero time")
	}
	if got := Deref(p); !got.Equal(at) {
		t.Fatalf("Deref round trip = %v, want %v", got, at)
	}
}
