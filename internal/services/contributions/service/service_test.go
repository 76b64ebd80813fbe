package service

import (
	"context"
	"errors"
	"testing"
	"time"

	perr "chronicle/internal/platform/errors"
	kit "chronicle/internal/platform/testkit"
	"chronicle/internal/services/contributions/domain"
)

type fakeSearcher struct {
	queries []string
	results map[string][]domain.SearchItem
	fail    map[string]error
}

func (f *fakeSearcher) SearchAll(_ context.Context, query string) ([]domain.SearchItem, error) {
	f.queries = append(f.queries, query)
	if err, ok := f.fail[query]; ok {
		return nil, err
	}
	return f.results[query], nil
}

type fakePulls struct {
	pulls map[int]domain.PullDetail
	fail  map[int]error
	calls []int
}

func (f *fakePulls) PullByNumber(_ context.Context, _, _ string, number int) (domain.PullDetail, error) {
	f.calls = append(f.calls, number)
	if err, ok := f.fail[number]; ok {
		return domain.PullDetail{}, err
	}
	return f.pulls[number], nil
}

func newTestService(t *testing.T, search *fakeSearcher, pulls *fakePulls, year int) *Service {
	t.Helper()
	s := New(search, pulls)
	kit.Swap(t, &s.now, func() time.Time { return time.Date(year, time.June, 15, 0, 0, 0, 0, time.UTC) })
	return s
}

func TestCollect_ValidatesParams(t *testing.T) {
	search := &fakeSearcher{}
	s := newTestService(t, search, &fakePulls{}, 2023)

	_, err := s.Collect(context.Background(), domain.Params{User: "", SinceYear: 2023})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("empty user err = %v, want validation error", err)
	}

	_, err = s.Collect(context.Background(), domain.Params{User: "someone", SinceYear: 1999})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("pre-2008 since err = %v, want validation error", err)
	}

	if len(search.queries) != 0 {
		t.Fatalf("no network calls expected on invalid params, got %v", search.queries)
	}
}

func TestCollect_IssuesQueriesInFixedOrderPerYear(t *testing.T) {
	search := &fakeSearcher{}
	s := newTestService(t, search, &fakePulls{}, 2024)

	if _, err := s.Collect(context.Background(), domain.Params{User: "octo", SinceYear: 2023}); err != nil {
		t.Fatalf("Collect: %v", err)
	}

	want := []string{
		"is:pr author:octo is:merged merged:>=2023-01-01T00:00:00Z merged:<2024-01-01T00:00:00Z",
		"is:issue author:octo created:>=2023-01-01T00:00:00Z created:<2024-01-01T00:00:00Z",
		"is:pr reviewed-by:octo reviewed:>=2023-01-01T00:00:00Z reviewed:<2024-01-01T00:00:00Z",
		"is:issue assignee:octo created:>=2023-01-01T00:00:00Z created:<2024-01-01T00:00:00Z",
		"is:pr author:octo is:merged merged:>=2024-01-01T00:00:00Z merged:<2025-01-01T00:00:00Z",
		"is:issue author:octo created:>=2024-01-01T00:00:00Z created:<2025-01-01T00:00:00Z",
		"is:pr reviewed-by:octo reviewed:>=2024-01-01T00:00:00Z reviewed:<2025-01-01T00:00:00Z",
		"is:issue assignee:octo created:>=2024-01-01T00:00:00Z created:<2025-01-01T00:00:00Z",
	}
	if len(search.queries) != len(want) {
		t.Fatalf("issued %d queries, want %d: %v", len(search.queries), len(want), search.queries)
	}
	for i := range want {
		if search.queries[i] != want[i] {
			t.Fatalf("query[%d] = %q, want %q", i, search.queries[i], want[i])
		}
	}
}

func TestCollect_NormalizesEachCategory(t *testing.T) {
	created := time.Date(2023, 5, 11, 9, 0, 0, 0, time.UTC)
	updated := time.Date(2023, 7, 2, 9, 0, 0, 0, time.UTC)
	merged := time.Date(2023, 5, 10, 12, 0, 0, 0, time.UTC)

	search := &fakeSearcher{results: map[string][]domain.SearchItem{
		"is:pr author:octo is:merged merged:>=2023-01-01T00:00:00Z merged:<2024-01-01T00:00:00Z": {
			{Number: 42, HTMLURL: "https://github.com/acme/widgets/pull/42",
				RepositoryURL: "https://api.github.com/repos/acme/widgets"},
		},
		"is:issue author:octo created:>=2023-01-01T00:00:00Z created:<2024-01-01T00:00:00Z": {
			{Title: "Bug report", Body: "", HTMLURL: "https://github.com/acme/widgets/issues/7",
				RepositoryURL: "https://api.github.com/repos/acme/widgets", CreatedAt: created, UpdatedAt: updated},
		},
		"is:pr reviewed-by:octo reviewed:>=2023-01-01T00:00:00Z reviewed:<2024-01-01T00:00:00Z": {
			{Title: "Refactor parser", Body: "reviewed body", HTMLURL: "https://github.com/acme/tools/pull/9",
				RepositoryURL: "https://api.github.com/repos/acme/tools", CreatedAt: created, UpdatedAt: updated},
		},
		"is:issue assignee:octo created:>=2023-01-01T00:00:00Z created:<2024-01-01T00:00:00Z": {
			{Title: "Triage me", Body: "needs owner", HTMLURL: "https://github.com/acme/tools/issues/3",
				RepositoryURL: "https://api.github.com/repos/acme/tools", CreatedAt: created, UpdatedAt: updated},
		},
	}}
	pulls := &fakePulls{pulls: map[int]domain.PullDetail{
		42: {Title: "Add frobnicator", Body: "", HTMLURL: "https://github.com/acme/widgets/pull/42", MergedAt: merged},
	}}
	s := newTestService(t, search, pulls, 2023)

	set, err := s.Collect(context.Background(), domain.Params{User: "octo", SinceYear: 2023})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if len(pulls.calls) != 1 || pulls.calls[0] != 42 {
		t.Fatalf("detail lookups = %v, want [42]", pulls.calls)
	}

	pr := set.PullRequests
	if len(pr) != 1 || pr[0].Title != "Add frobnicator" || pr[0].Repo != "widgets" {
		t.Fatalf("pull requests = %+v", pr)
	}
	if pr[0].Description != defaultDescription {
		t.Fatalf("empty pull body should become %q, got %q", defaultDescription, pr[0].Description)
	}
	if !pr[0].OccurredAt.Equal(merged) {
		t.Fatalf("pull timestamp = %v, want merge time %v", pr[0].OccurredAt, merged)
	}

	is := set.Issues
	if len(is) != 1 || !is[0].OccurredAt.Equal(created) {
		t.Fatalf("issues should use created_at: %+v", is)
	}
	if is[0].Description != defaultDescription {
		t.Fatalf("empty issue body should become the placeholder, got %q", is[0].Description)
	}

	rv := set.ReviewedPulls
	if len(rv) != 1 || !rv[0].OccurredAt.Equal(updated) || rv[0].Repo != "tools" {
		t.Fatalf("reviewed pulls should use updated_at: %+v", rv)
	}

	tr := set.TriagedIssues
	if len(tr) != 1 || !tr[0].OccurredAt.Equal(updated) || tr[0].Description != "needs owner" {
		t.Fatalf("triaged issues should use updated_at: %+v", tr)
	}
}

func TestCollect_SkipsPullWhenDetailLookupFails(t *testing.T) {
	q := "is:pr author:octo is:merged merged:>=2023-01-01T00:00:00Z merged:<2024-01-01T00:00:00Z"
	search := &fakeSearcher{results: map[string][]domain.SearchItem{
		q: {
			{Number: 1, RepositoryURL: "https://api.github.com/repos/acme/widgets"},
			{Number: 2, RepositoryURL: "https://api.github.com/repos/acme/widgets"},
		},
	}}
	pulls := &fakePulls{
		pulls: map[int]domain.PullDetail{2: {Title: "Survivor", HTMLURL: "u", Body: "b"}},
		fail:  map[int]error{1: perr.NotFoundf("pull 1 gone")},
	}
	s := newTestService(t, search, pulls, 2023)

	set, err := s.Collect(context.Background(), domain.Params{User: "octo", SinceYear: 2023})
	if err != nil {
		t.Fatalf("a failed detail lookup must not abort the run: %v", err)
	}
	if len(set.PullRequests) != 1 || set.PullRequests[0].Title != "Survivor" {
		t.Fatalf("pull requests = %+v, want only the survivor", set.PullRequests)
	}
}

func TestCollect_AbortsOnSearchError(t *testing.T) {
	q := "is:issue author:octo created:>=2023-01-01T00:00:00Z created:<2024-01-01T00:00:00Z"
	search := &fakeSearcher{fail: map[string]error{q: errors.New("boom")}}
	s := newTestService(t, search, &fakePulls{}, 2023)

	set, err := s.Collect(context.Background(), domain.Params{User: "octo", SinceYear: 2023})
	if err == nil {
		t.Fatal("search failure must abort the collection")
	}
	if set != nil {
		t.Fatal("no partial set on failure")
	}
}

func TestNew_NilGuards(t *testing.T) {
	kit.MustPanic(t, func() { New(nil, &fakePulls{}) })
	kit.MustPanic(t, func() { New(&fakeSearcher{}, nil) })
}
