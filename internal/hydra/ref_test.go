package hydra

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractID(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"empty string", "", ""},
		{"bare id", "abc123", "abc123"},
		{"reference path", "/api/widgets/abc123", "abc123"},
		{"nested path", "/api/companies/c1/warehouses/wh-1", "wh-1"},
		{"at-id object", map[string]any{"@id": "/api/suppliers/sup-7"}, "sup-7"},
		{"entity id object", map[string]any{"productFamilyId": "fam-2", "familyName": "Tees"}, "fam-2"},
		{"object without identity", map[string]any{"name": "no id here"}, ""},
		{"number", float64(12), ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractID(tc.in))
		})
	}
}

func TestExtractIDIdempotent(t *testing.T) {
	for _, in := range []any{"/api/widgets/abc123", "abc123", map[string]any{"@id": "/api/widgets/abc123"}} {
		once := ExtractID(in)
		assert.Equal(t, once, ExtractID(once))
	}
}

func TestRefUnmarshalShapes(t *testing.T) {
	var doc struct {
		Bare     Ref `json:"bare"`
		IRI      Ref `json:"iri"`
		Embedded Ref `json:"embedded"`
		Null     Ref `json:"null"`
		Missing  Ref `json:"missing"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{
		"bare": "sup-1",
		"iri": "/api/suppliers/sup-2",
		"embedded": {"supplierId": "sup-3", "name": "Acme Textiles"},
		"null": null
	}`), &doc))

	assert.Equal(t, "sup-1", doc.Bare.ID())
	assert.Equal(t, "sup-2", doc.IRI.ID())
	assert.Equal(t, "sup-3", doc.Embedded.ID())
	assert.True(t, doc.Null.IsZero())
	assert.True(t, doc.Missing.IsZero())

	var supplier struct {
		Name string `json:"name"`
	}
	require.True(t, doc.Embedded.Embedded(&supplier))
	assert.Equal(t, "Acme Textiles", supplier.Name)

	// Non-object shapes carry no embedded payload.
	assert.False(t, doc.IRI.Embedded(&supplier))
}

func TestRefMarshalCanonical(t *testing.T) {
	out, err := json.Marshal(struct {
		Supplier Ref `json:"supplier"`
		None     Ref `json:"none"`
	}{Supplier: RefTo("sup-9")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"supplier": "sup-9", "none": null}`, string(out))
}
