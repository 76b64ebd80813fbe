package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	perr "chronicle/internal/platform/errors"
)

// SearchPage fetches a single page of issue search results for query.
// next reports whether the response declared a rel="next" link relation
func (c *Client) SearchPage(ctx context.Context, query string, page int) (items []Issue, next bool, err error) {
	path := fmt.Sprintf("/search/issues?q=%s&per_page=%d&page=%d", url.QueryEscape(query), c.opts.PageSize, page)
	resp, err := c.Do(ctx, http.MethodGet, path)
	if err != nil {
		return nil, false, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()

	var out SearchResult
	b, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, false, perr.Wrapf(err, perr.ErrorCodeUnavailable, "github search read failed")
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, false, perr.Wrapf(err, perr.ErrorCodeUnknown, "github search decode failed")
	}
	return out.Items, hasNextLink(resp.Header), nil
}

// SearchAll walks every result page for query, starting at page 1, and
// returns the flattened accumulator. Pagination stops exactly when a page
// carries no rel="next" relation
func (c *Client) SearchAll(ctx context.Context, query string) ([]Issue, error) {
	var all []Issue
	for page := 1; ; page++ {
		items, next, err := c.SearchPage(ctx, query, page)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if !next {
			return all, nil
		}
	}
}

// PullByNumber fetches the canonical pull request document by number
func (c *Client) PullByNumber(ctx context.Context, owner, repo string, number int) (Pull, error) {
	path := fmt.Sprintf("/repos/%s/%s/pulls/%d", owner, repo, number)
	resp, err := c.Do(ctx, http.MethodGet, path)
	if err != nil {
		return Pull{}, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()

	var out Pull
	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Pull{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "github pull read failed")
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return Pull{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "github pull decode failed")
	}
	return out, nil
}
