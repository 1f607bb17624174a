package platform

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Durgaprasad2408/BrainCell-sub002/internal/catalog"
)

// ListFAQs fetches the answered learner questions for a lesson or video.
func (c *Client) ListFAQs(ctx context.Context, itemID string) ([]catalog.FAQ, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/api/content/%s/faqs", itemID))
	if err != nil {
		return nil, fmt.Errorf("list FAQs for %q: %w", itemID, err)
	}
	if resp.IsError() {
		return nil, statusError(resp)
	}

	var faqs []catalog.FAQ
	if err := json.Unmarshal(resp.Body(), &faqs); err != nil {
		return nil, fmt.Errorf("decode FAQ payload: %w", err)
	}
	return faqs, nil
}

// SubmitQuestion sends a learner question about the given item.
func (c *Client) SubmitQuestion(ctx context.Context, itemID, text string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"question": text}).
		Post(fmt.Sprintf("/api/content/%s/faqs", itemID))
	if err != nil {
		return fmt.Errorf("submit question for %q: %w", itemID, err)
	}
	if resp.IsError() {
		return statusError(resp)
	}

	c.log.Debug("question submitted", "item", itemID)
	return nil
}
