package domain

import (
	"context"

	contribdom "chronicle/internal/services/contributions/domain"
)

// WriterPort persists one rendered quarterly report and returns its location
type WriterPort interface {
	WriteReport(ctx context.Context, q Quarter, body []byte) (string, error)
}

// ReporterPort renders and writes every non-empty quarter of a contribution set
type ReporterPort interface {
	Publish(ctx context.Context, set *contribdom.Set) ([]string, error)
}
