package hydra

import (
	"encoding/json"
	"strings"
)

// Identity keys probed, in order, when a relationship field arrives as an
// embedded object instead of an id or IRI.
var identityKeys = []string{
	"@id",
	"id",
	"productVariantId",
	"variantId",
	"productFamilyId",
	"supplierId",
	"warehouseId",
	"productId",
	"companyId",
	"purchaseOrderId",
}

// ExtractID resolves a relationship field to its bare identifier. The field
// may arrive as a bare id, a slash-delimited reference path ("IRI") whose
// trailing segment is the id, or an embedded object exposing an identity
// field. Unresolvable values yield "". Idempotent: feeding a bare id back in
// returns it unchanged.
func ExtractID(v any) string {
	switch ref := v.(type) {
	case nil:
		return ""
	case string:
		if ref == "" {
			return ""
		}
		if i := strings.LastIndex(ref, "/"); i >= 0 {
			return ref[i+1:]
		}
		return ref
	case map[string]any:
		for _, key := range identityKeys {
			if raw, ok := ref[key]; ok {
				if id := ExtractID(raw); id != "" {
					return id
				}
			}
		}
		return ""
	default:
		return ""
	}
}

// Ref is a relationship field at the API boundary. It absorbs all three wire
// shapes and exposes only the canonical bare id, so the shape union never
// leaks past the model layer.
type Ref struct {
	id  string
	raw json.RawMessage
}

// RefTo builds a Ref from a bare id, for fixtures and synthesized records.
func RefTo(id string) Ref { return Ref{id: id} }

func (r *Ref) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		r.id = ""
		r.raw = nil
		return nil
	}
	r.id = ExtractID(v)
	if _, ok := v.(map[string]any); ok {
		r.raw = append(json.RawMessage(nil), data...)
	} else {
		r.raw = nil
	}
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if r.id == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.id)
}

// ID returns the bare identifier, or "" when the relation is absent.
func (r Ref) ID() string { return r.id }

// IsZero reports whether the relation is absent.
func (r Ref) IsZero() bool { return r.id == "" }

// Embedded decodes the embedded object form into dst and reports whether an
// embedded object was present. Bare-id and IRI forms report false.
func (r Ref) Embedded(dst any) bool {
	if len(r.raw) == 0 {
		return false
	}
	return json.Unmarshal(r.raw, dst) == nil
}
