// Package service groups contributions by calendar quarter and renders
// one Markdown report per non-empty quarter
package service

import (
	"context"
	"sort"

	"chronicle/internal/platform/logger"
	contribdom "chronicle/internal/services/contributions/domain"
	"chronicle/internal/services/report/domain"
)

// Service implements the quarterly report publisher
type Service struct {
	Writer domain.WriterPort
}

// New constructs the report service
func New(w domain.WriterPort) *Service {
	if w == nil {
		panic("report.Service requires a non nil WriterPort")
	}
	return &Service{Writer: w}
}

// Publish renders every non-empty quarter of set and writes each report
// through the writer port. Returns the written locations in chronological
// quarter order
func (s *Service) Publish(ctx context.Context, set *contribdom.Set) ([]string, error) {
	buckets := groupByQuarter(ctx, set)
	if len(buckets) == 0 {
		logger.C(ctx).Info().Msg("no contributions to report")
		return nil, nil
	}

	quarters := make([]domain.Quarter, 0, len(buckets))
	for q := range buckets {
		quarters = append(quarters, q)
	}
	sort.Slice(quarters, func(i, j int) bool {
		if quarters[i].Year != quarters[j].Year {
			return quarters[i].Year < quarters[j].Year
		}
		return quarters[i].N < quarters[j].N
	})

	paths := make([]string, 0, len(quarters))
	for _, q := range quarters {
		bucket := buckets[q]
		path, err := s.Writer.WriteReport(ctx, q, render(q, bucket))
		if err != nil {
			return nil, err
		}
		logger.C(ctx).Info().
			Str("quarter", q.Key()).
			Int("records", bucket.Len()).
			Str("path", path).
			Msg("report written")
		paths = append(paths, path)
	}
	return paths, nil
}

// groupByQuarter splits a flat contribution set into per-quarter sets.
// Records without a usable timestamp cannot be placed and are dropped
func groupByQuarter(ctx context.Context, set *contribdom.Set) map[domain.Quarter]*contribdom.Set {
	out := map[domain.Quarter]*contribdom.Set{}
	if set == nil {
		return out
	}
	for _, c := range contribdom.Categories() {
		for _, r := range set.Records(c) {
			if r.OccurredAt.IsZero() {
				logger.C(ctx).Debug().
					Str("category", c.String()).
					Str("url", r.URL).
					Msg("record has no timestamp; dropped from report")
				continue
			}
			q := domain.QuarterOf(r.OccurredAt)
			bucket, ok := out[q]
			if !ok {
				bucket = &contribdom.Set{}
				out[q] = bucket
			}
			bucket.Append(c, r)
		}
	}
	return out
}
