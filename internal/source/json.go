package source

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/atomicstack/treemenu/internal/tree"
)

// jsonItem accepts either a bare string or an object.
type jsonItem tree.Item

func (j *jsonItem) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var label string
		if err := json.Unmarshal(trimmed, &label); err != nil {
			return err
		}
		*j = jsonItem{Label: label}
		return nil
	}
	var raw struct {
		Label    string     `json:"label"`
		Children []jsonItem `json:"children"`
	}
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return err
	}
	*j = jsonItem{Label: raw.Label, Children: toItems(raw.Children)}
	return nil
}

func toItems(in []jsonItem) []tree.Item {
	if len(in) == 0 {
		return nil
	}
	out := make([]tree.Item, len(in))
	for i, item := range in {
		out[i] = tree.Item(item)
	}
	return out
}

// JSON reads `[{"label": "...", "children": [...]}]`; strings are leaves.
func JSON(r io.Reader) ([]tree.Item, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read json: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var items []jsonItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return toItems(items), nil
}
