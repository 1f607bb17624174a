package platform

import (
	"context"
	"fmt"
)

// RecordCompletion asks the platform to durably record a completion.
// Any failure is returned as-is; the completion engine decides what that
// means for local state.
func (c *Client) RecordCompletion(ctx context.Context, itemID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"item_id": itemID}).
		Post("/api/progress/completions")
	if err != nil {
		return fmt.Errorf("record completion of %q: %w", itemID, err)
	}
	if resp.IsError() {
		return statusError(resp)
	}

	c.log.Debug("completion recorded", "item", itemID)
	return nil
}
