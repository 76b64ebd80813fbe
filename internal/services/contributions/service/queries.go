package service

import "fmt"

// yearBounds returns the [start, end) RFC3339 instants bracketing year
func yearBounds(year int) (start, end string) {
	return fmt.Sprintf("%d-01-01T00:00:00Z", year), fmt.Sprintf("%d-01-01T00:00:00Z", year+1)
}

// The four fixed query templates, one per contribution category

func mergedPullsQuery(user, start, end string) string {
	return fmt.Sprintf("is:pr author:%s is:merged merged:>=%s merged:<%s", user, start, end)
}

func createdIssuesQuery(user, start, end string) string {
	return fmt.Sprintf("is:issue author:%s created:>=%s created:<%s", user, start, end)
}

func reviewedPullsQuery(user, start, end string) string {
	return fmt.Sprintf("is:pr reviewed-by:%s reviewed:>=%s reviewed:<%s", user, start, end)
}

func triagedIssuesQuery(user, start, end string) string {
	return fmt.Sprintf("is:issue assignee:%s created:>=%s created:<%s", user, start, end)
}
