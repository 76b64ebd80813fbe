// Package domain defines the public ports for the contribution collector
package domain

import "context"

// Params configures one collection run
type Params struct {
	User      string `validate:"required"`
	SinceYear int    `validate:"gte=2008"` // the platform launched in 2008
}

// SearcherPort walks every page of one search query and returns the flattened hits
type SearcherPort interface {
	SearchAll(ctx context.Context, query string) ([]SearchItem, error)
}

// PullReaderPort fetches the canonical pull request document for a search hit
type PullReaderPort interface {
	PullByNumber(ctx context.Context, owner, repo string, number int) (PullDetail, error)
}

// CollectorPort drives a full collection run
type CollectorPort interface {
	Collect(ctx context.Context, p Params) (*Set, error)
}
