package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/Durgaprasad2408/BrainCell-sub002/internal/catalog"
)

// catalogSchema constrains the content payload served by the platform.
// Authoring defects inside items (wrong correct option and the like) are
// caught separately by catalog validation; this guards the wire shape.
const catalogSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "module", "kind"],
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"title": {"type": "string"},
			"module": {"type": "string", "minLength": 1},
			"kind": {"enum": ["lesson", "video", "quiz"]},
			"video_ref": {"type": "string"},
			"questions": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["text", "options", "correct"],
					"properties": {
						"text": {"type": "string"},
						"options": {"type": "array", "items": {"type": "string"}},
						"correct": {"type": "string"},
						"explanation": {"type": "string"}
					}
				}
			}
		}
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func contentSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(catalogSchema))
		if err != nil {
			schemaErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://catalog.json", doc); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://catalog.json")
	})
	return compiledSchema, schemaErr
}

// ListContent fetches one subject's catalog in authoring order. The
// payload is schema-checked before decoding; order is preserved exactly
// as served, never re-sorted.
func (c *Client) ListContent(ctx context.Context, subjectID string) ([]catalog.ContentItem, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/api/subjects/%s/content", subjectID))
	if err != nil {
		return nil, fmt.Errorf("list content for %q: %w", subjectID, err)
	}
	if resp.IsError() {
		return nil, statusError(resp)
	}

	schema, err := contentSchema()
	if err != nil {
		return nil, err
	}
	var parsed any
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, fmt.Errorf("decode content payload: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("content payload for %q: %w", subjectID, err)
	}

	var items []catalog.ContentItem
	if err := json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode content payload: %w", err)
	}

	c.log.Debug("content listed", "subject", subjectID, "items", len(items))
	return items, nil
}
