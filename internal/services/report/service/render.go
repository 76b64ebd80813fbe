package service

import (
	"fmt"
	"strings"

	contribdom "chronicle/internal/services/contributions/domain"
	"chronicle/internal/services/report/domain"
)

// maxDescription caps table cell text before the ellipsis is applied
const maxDescription = 100

// emptySection is emitted under a heading that has no rows
const emptySection = "No contributions found for this section."

// sectionTitle returns the report heading for a category
func sectionTitle(c contribdom.Category) string {
	switch c {
	case contribdom.CategoryPullRequests:
		return "Pull Requests"
	case contribdom.CategoryIssues:
		return "Issues"
	case contribdom.CategoryTriagedIssues:
		return "Triaged Issues"
	case contribdom.CategoryReviewedPulls:
		return "Reviewed PRs"
	default:
		return "Other"
	}
}

// render produces the full Markdown document for one quarter bucket.
// Sections always appear, in fixed order, even when empty
func render(q domain.Quarter, set *contribdom.Set) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "# Contributions - %s\n\n", q.Label())

	for _, c := range contribdom.Categories() {
		fmt.Fprintf(&b, "## %s\n\n", sectionTitle(c))

		recs := set.Records(c)
		if len(recs) == 0 {
			b.WriteString(emptySection + "\n\n")
			continue
		}

		b.WriteString("| Project Name | Link | Description | Date |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, r := range recs {
			fmt.Fprintf(&b, "| %s | [%s](%s) | %s | %s |\n",
				r.Repo, r.Title, r.URL, cellDescription(r.Description), r.OccurredAt.Format("2006-01-02"))
		}
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// cellDescription flattens newlines so the text stays within one table cell
// and truncates long bodies to maxDescription runes plus an ellipsis
func cellDescription(s string) string {
	flat := strings.ReplaceAll(s, "\r\n", " ")
	flat = strings.ReplaceAll(flat, "\n", " ")

	runes := []rune(flat)
	if len(runes) <= maxDescription {
		return flat
	}
	return string(runes[:maxDescription]) + "..."
}
