// Package service provides the contribution collector implementation
package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"chronicle/internal/adapters/github"
	perr "chronicle/internal/platform/errors"
	"chronicle/internal/platform/logger"
	pstrings "chronicle/internal/platform/strings"
	"chronicle/internal/services/contributions/domain"
)

// placeholder used when a contribution has no body text
const defaultDescription = "No description provided."

// Service implements the contribution collector
type Service struct {
	Search domain.SearcherPort
	Pulls  domain.PullReaderPort

	validate *validator.Validate
	now      func() time.Time
}

// New constructs the collector service
func New(search domain.SearcherPort, pulls domain.PullReaderPort) *Service {
	if search == nil {
		panic("contributions.Service requires a non nil SearcherPort")
	}
	if pulls == nil {
		panic("contributions.Service requires a non nil PullReaderPort")
	}
	return &Service{
		Search:   search,
		Pulls:    pulls,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

// Collect walks every year from p.SinceYear through the current year
// ascending and accumulates the four contribution categories sequentially.
// Any fetch error aborts the run; the partial set is discarded
func (s *Service) Collect(ctx context.Context, p domain.Params) (*domain.Set, error) {
	if err := s.validate.Struct(p); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeValidation, "invalid collect params")
	}

	set := &domain.Set{}
	current := s.now().UTC().Year()
	for year := p.SinceYear; year <= current; year++ {
		logger.C(ctx).Info().Str("user", p.User).Int("year", year).Msg("fetching contributions")
		if err := s.collectYear(ctx, p.User, year, set); err != nil {
			return nil, err
		}
	}
	logger.C(ctx).Info().
		Int("pull_requests", len(set.PullRequests)).
		Int("issues", len(set.Issues)).
		Int("triaged_issues", len(set.TriagedIssues)).
		Int("reviewed_pulls", len(set.ReviewedPulls)).
		Msg("collection complete")
	return set, nil
}

// collectYear runs the four query templates for one year, in the fixed
// fetch order: merged pulls, created issues, reviewed pulls, triaged issues
func (s *Service) collectYear(ctx context.Context, user string, year int, set *domain.Set) error {
	start, end := yearBounds(year)

	if err := s.collectMergedPulls(ctx, user, start, end, set); err != nil {
		return err
	}

	issues, err := s.Search.SearchAll(ctx, createdIssuesQuery(user, start, end))
	if err != nil {
		return err
	}
	for _, it := range issues {
		set.Append(domain.CategoryIssues, normalize(it, it.CreatedAt))
	}

	reviewed, err := s.Search.SearchAll(ctx, reviewedPullsQuery(user, start, end))
	if err != nil {
		return err
	}
	for _, it := range reviewed {
		set.Append(domain.CategoryReviewedPulls, normalize(it, it.UpdatedAt))
	}

	triaged, err := s.Search.SearchAll(ctx, triagedIssuesQuery(user, start, end))
	if err != nil {
		return err
	}
	for _, it := range triaged {
		set.Append(domain.CategoryTriagedIssues, normalize(it, it.UpdatedAt))
	}
	return nil
}

// collectMergedPulls takes the per-item detail lookup: the search payload
// lacks body, merge timestamp, and canonical URL for pulls. A failed lookup
// skips the single item with a diagnostic instead of aborting the run
func (s *Service) collectMergedPulls(ctx context.Context, user, start, end string, set *domain.Set) error {
	hits, err := s.Search.SearchAll(ctx, mergedPullsQuery(user, start, end))
	if err != nil {
		return err
	}
	for _, it := range hits {
		owner, repo := github.SplitRepositoryURL(it.RepositoryURL)
		pd, err := s.Pulls.PullByNumber(ctx, owner, repo, it.Number)
		if err != nil {
			logger.C(ctx).Warn().Err(err).Str("url", it.HTMLURL).Msg("could not fetch pull details; skipping")
			continue
		}
		set.Append(domain.CategoryPullRequests, domain.Record{
			Title:       pd.Title,
			URL:         pd.HTMLURL,
			Repo:        repo,
			Description: pstrings.IfEmpty(pd.Body, defaultDescription),
			OccurredAt:  pd.MergedAt,
		})
	}
	return nil
}

// normalize flattens a search hit into a Record stamped with the
// category-appropriate timestamp
func normalize(it domain.SearchItem, at time.Time) domain.Record {
	return domain.Record{
		Title:       it.Title,
		URL:         it.HTMLURL,
		Repo:        pstrings.LastSegment(it.RepositoryURL),
		Description: pstrings.IfEmpty(it.Body, defaultDescription),
		OccurredAt:  at,
	}
}
