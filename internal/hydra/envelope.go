// Package hydra normalizes backend responses that may arrive either as
// JSON-LD/Hydra collection envelopes or as plain canonical envelopes, and
// provides the defensive field coercion the dashboard relies on. Everything
// in this package is pure and total: malformed input degrades to a safe
// default instead of an error, because these helpers sit in the rendering
// hot path.
package hydra

import (
	"encoding/json"
)

// Envelope keys as emitted by the backend.
const (
	KeyHydraMember     = "hydra:member"
	KeyHydraTotalItems = "hydra:totalItems"
	KeyHydraView       = "hydra:view"

	KeyMember     = "member"
	KeyTotalItems = "totalItems"
	KeyView       = "view"
)

// NormalizeCollection converts a decoded collection response into the
// canonical envelope shape. A Hydra envelope gets canonical aliases added
// (member, totalItems, view) while keeping every original key. Anything that
// is not a Hydra envelope is returned unchanged: plain envelopes are assumed
// canonical already, and non-object values pass through untouched.
func NormalizeCollection(v any) any {
	obj, ok := v.(map[string]any)
	if !ok {
		return v
	}

	members, ok := obj[KeyHydraMember]
	if !ok {
		return obj
	}

	out := make(map[string]any, len(obj)+3)
	for k, val := range obj {
		out[k] = val
	}
	out[KeyMember] = members
	if total, ok := obj[KeyHydraTotalItems]; ok {
		out[KeyTotalItems] = total
	}
	if view, ok := obj[KeyHydraView]; ok {
		out[KeyView] = view
	}
	return out
}

// Collection is the canonical decoded form of a collection response. Items
// are kept raw so each caller can decode them into its own entity type.
type Collection struct {
	Members    []json.RawMessage
	TotalItems int64
	View       *CollectionView
}

// CollectionView carries the pagination links of a Hydra view block. Fields
// the backend omits stay empty.
type CollectionView struct {
	ID       string `json:"@id"`
	First    string `json:"hydra:first"`
	Last     string `json:"hydra:last"`
	Next     string `json:"hydra:next"`
	Previous string `json:"hydra:previous"`
}

// UnmarshalJSON accepts both envelope dialects and, as a convenience, a bare
// JSON array (some item sub-resources skip the envelope entirely).
func (c *Collection) UnmarshalJSON(data []byte) error {
	*c = Collection{}

	// Bare array: treat as the member list itself.
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err == nil {
		c.Members = items
		c.TotalItems = int64(len(items))
		return nil
	}

	var raw struct {
		HydraMember     []json.RawMessage `json:"hydra:member"`
		HydraTotalItems json.Number       `json:"hydra:totalItems"`
		HydraView       *CollectionView   `json:"hydra:view"`
		Member          []json.RawMessage `json:"member"`
		TotalItems      json.Number       `json:"totalItems"`
		View            *CollectionView   `json:"view"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.HydraMember != nil:
		c.Members = raw.HydraMember
		c.TotalItems = numberToInt64(raw.HydraTotalItems, int64(len(raw.HydraMember)))
		c.View = raw.HydraView
	default:
		c.Members = raw.Member
		c.TotalItems = numberToInt64(raw.TotalItems, int64(len(raw.Member)))
		c.View = raw.View
	}
	return nil
}

func numberToInt64(n json.Number, fallback int64) int64 {
	if n == "" {
		return fallback
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return int64(f)
	}
	return fallback
}

// DecodeMembers unmarshals every member of a collection into T, skipping
// members that fail to decode rather than failing the whole page.
func DecodeMembers[T any](c Collection) []T {
	out := make([]T, 0, len(c.Members))
	for _, raw := range c.Members {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}
		out = append(out, item)
	}
	return out
}
