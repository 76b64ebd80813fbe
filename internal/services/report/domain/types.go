// Package domain defines the quarter model and ports for report publishing
package domain

import (
	"fmt"
	"time"
)

// Quarter identifies one calendar quarter of one year
type Quarter struct {
	Year int
	N    int // 1..4
}

// QuarterOf maps an instant to its calendar quarter
func QuarterOf(t time.Time) Quarter {
	return Quarter{
		Year: t.Year(),
		N:    (int(t.Month())-1)/3 + 1,
	}
}

// Key returns a sortable identity string like "2022-Q3"
func (q Quarter) Key() string { return fmt.Sprintf("%d-Q%d", q.Year, q.N) }

// Label returns the human form used in report headings, like "Q3 2022"
func (q Quarter) Label() string { return fmt.Sprintf("Q%d %d", q.N, q.Year) }
