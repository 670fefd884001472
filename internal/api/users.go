package api

import (
	"context"
	"net/http"
	"net/url"
)

// AssignedEvents returns the ids of events a staff member is assigned to
// work check-in for.
func (c *Client) AssignedEvents(ctx context.Context, userID string) ([]int, error) {
	var out []int
	path := "/api/users/" + url.PathEscape(userID) + "/assigned-events"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
