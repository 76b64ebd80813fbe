// Package ingest holds adapter shims for the contribution collector ports.
package ingest

import (
	"context"

	"chronicle/internal/adapters/github"
	"chronicle/internal/modkit"
	ptime "chronicle/internal/platform/time"
	"chronicle/internal/services/contributions/domain"
)

// searcher implements the collector search ports on the GitHub REST client
type searcher struct {
	c *github.Client
}

// New constructs the GitHub-backed ports from config under GITHUB_*.
// This keeps config-reading outside service and avoids passing platform deps into the client
func New(deps modkit.Deps) (domain.SearcherPort, domain.PullReaderPort) {
	gh := deps.Cfg.Prefix("GITHUB_")
	c := github.NewClient(github.Options{
		BaseURL:           gh.MayString("API_URL", ""),
		Token:             gh.MustString("TOKEN"),
		Timeout:           gh.MayDuration("TIMEOUT", 0),
		PageSize:          gh.MayInt("PAGE_SIZE", 0),
		RateLimitCooldown: gh.MayDuration("COOLDOWN", 0),
	})
	s := &searcher{c: c}
	return s, s
}

func (s *searcher) SearchAll(ctx context.Context, query string) ([]domain.SearchItem, error) {
	raw, err := s.c.SearchAll(ctx, query)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SearchItem, 0, len(raw))
	for _, it := range raw {
		out = append(out, domain.SearchItem{
			Number:        it.Number,
			Title:         it.Title,
			Body:          it.Body,
			HTMLURL:       it.HTMLURL,
			RepositoryURL: it.RepositoryURL,
			CreatedAt:     it.CreatedAt,
			UpdatedAt:     it.UpdatedAt,
		})
	}
	return out, nil
}

func (s *searcher) PullByNumber(ctx context.Context, owner, repo string, number int) (domain.PullDetail, error) {
	p, err := s.c.PullByNumber(ctx, owner, repo, number)
	if err != nil {
		return domain.PullDetail{}, err
	}
	return domain.PullDetail{
		Title:    p.Title,
		Body:     p.Body,
		HTMLURL:  p.HTMLURL,
		MergedAt: ptime.Deref(p.MergedAt),
	}, nil
}
