package domain

import "time"

// Category discriminates the four contribution kinds tracked per run
type Category uint8

const (
	// CategoryPullRequests is merged pull requests authored by the user
	CategoryPullRequests Category = iota

	// CategoryIssues is issues created by the user
	CategoryIssues

	// CategoryTriagedIssues is issues the user was assigned to triage
	CategoryTriagedIssues

	// CategoryReviewedPulls is pull requests the user reviewed
	CategoryReviewedPulls
)

// Categories returns all categories in their fixed report order
func Categories() []Category {
	return []Category{CategoryPullRequests, CategoryIssues, CategoryTriagedIssues, CategoryReviewedPulls}
}

// String returns the log-friendly category name
func (c Category) String() string {
	switch c {
	case CategoryPullRequests:
		return "pull_requests"
	case CategoryIssues:
		return "issues"
	case CategoryTriagedIssues:
		return "triaged_issues"
	case CategoryReviewedPulls:
		return "reviewed_pulls"
	default:
		return "unknown"
	}
}

// Record is one normalized contribution. Immutable once created
type Record struct {
	Title       string
	URL         string
	Repo        string
	Description string

	// OccurredAt is the category-appropriate timestamp: merge time for pull
	// requests, creation time for issues, last update for reviewed pulls and
	// triaged issues. Zero when the source carried no usable timestamp
	OccurredAt time.Time
}

// Set holds the per-category record lists accumulated across one run.
// Records are never deduplicated: a hit returned by two overlapping queries
// appears twice
type Set struct {
	PullRequests  []Record
	Issues        []Record
	TriagedIssues []Record
	ReviewedPulls []Record
}

// Append adds r to the list for category c
func (s *Set) Append(c Category, r Record) {
	switch c {
	case CategoryPullRequests:
		s.PullRequests = append(s.PullRequests, r)
	case CategoryIssues:
		s.Issues = append(s.Issues, r)
	case CategoryTriagedIssues:
		s.TriagedIssues = append(s.TriagedIssues, r)
	case CategoryReviewedPulls:
		s.ReviewedPulls = append(s.ReviewedPulls, r)
	}
}

// Records returns the list for category c
func (s *Set) Records(c Category) []Record {
	switch c {
	case CategoryPullRequests:
		return s.PullRequests
	case CategoryIssues:
		return s.Issues
	case CategoryTriagedIssues:
		return s.TriagedIssues
	case CategoryReviewedPulls:
		return s.ReviewedPulls
	default:
		return nil
	}
}

// Len returns the total number of records across all categories
func (s *Set) Len() int {
	return len(s.PullRequests) + len(s.Issues) + len(s.TriagedIssues) + len(s.ReviewedPulls)
}

// Empty reports whether all four category lists are empty
func (s *Set) Empty() bool { return s.Len() == 0 }

// SearchItem is the raw search hit shape the collector consumes
type SearchItem struct {
	Number        int
	Title         string
	Body          string
	HTMLURL       string
	RepositoryURL string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PullDetail carries the fields only the pull detail endpoint returns
type PullDetail struct {
	Title   string
	Body    string
	HTMLURL string

	// MergedAt is zero when the pull carries no merge timestamp
	MergedAt time.Time
}
