package domain

import (
	"testing"
	"time"
)

func TestQuarterOf(t *testing.T) {
	cases := []struct {
		name string
		at   time.Time
		want Quarter
	}{
		{"first instant of the year", time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), Quarter{2022, 1}},
		{"mid second quarter", time.Date(2022, 4, 15, 10, 30, 0, 0, time.UTC), Quarter{2022, 2}},
		{"quarter boundary month", time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC), Quarter{2022, 3}},
		{"last instant of the year", time.Date(2022, 12, 31, 23, 59, 59, 0, time.UTC), Quarter{2022, 4}},
		{"march stays in q1", time.Date(2023, 3, 31, 23, 59, 59, 0, time.UTC), Quarter{2023, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := QuarterOf(tc.at); got != tc.want {
				t.Fatalf("QuarterOf(%v) = %+v, want %+v", tc.at, got, tc.want)
			}
		})
	}
}

func TestQuarterStrings(t *testing.T) {
	q := Quarter{Year: 2022, N: 3}
	if q.Key() != "2022-Q3" {
		t.Fatalf("Key() = %q", q.Key())
	}
	if q.Label() != "Q3 2022" {
		t.Fatalf("Label() = %q", q.Label())
	}
}
