package hydra

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceNumber(t *testing.T) {
	cases := []struct {
		name     string
		in       any
		fallback float64
		want     float64
	}{
		{"native number", float64(42.5), -1, 42.5},
		{"decimal string", "150.00", -1, 150},
		{"integer string", "7", -1, 7},
		{"negative string", "-3.25", -1, -3.25},
		{"padded string", "  12.5 ", -1, 12.5},
		{"empty string", "", -1, -1},
		{"garbage string", "twelve", -1, -1},
		{"nil", nil, -1, -1},
		{"bool", true, -1, -1},
		{"object", map[string]any{"value": 1}, -1, -1},
		{"inf string", "Inf", -1, -1},
		{"nan string", "NaN", -1, -1},
		{"json number", json.Number("99.9"), -1, 99.9},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CoerceNumber(tc.in, tc.fallback)
			assert.Equal(t, tc.want, got)
			assert.False(t, math.IsNaN(got))
		})
	}
}

func TestCoerceOptionalNumber(t *testing.T) {
	require.Nil(t, CoerceOptionalNumber(""))
	require.Nil(t, CoerceOptionalNumber(nil))
	require.Nil(t, CoerceOptionalNumber("n/a"))

	got := CoerceOptionalNumber("0")
	require.NotNil(t, got)
	assert.Equal(t, float64(0), *got)

	got = CoerceOptionalNumber(float64(12))
	require.NotNil(t, got)
	assert.Equal(t, float64(12), *got)
}

func TestNumberUnmarshal(t *testing.T) {
	var doc struct {
		QtyOnHand Number `json:"qtyOnHand"`
		UnitCost  Number `json:"unitCost"`
		Missing   Number `json:"missing"`
		Bad       Number `json:"bad"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{
		"qtyOnHand": "150.00",
		"unitCost": 9.95,
		"bad": {"nested": true}
	}`), &doc))

	assert.Equal(t, float64(150), doc.QtyOnHand.Float64())
	assert.Equal(t, 9.95, doc.UnitCost.Float64())
	assert.Equal(t, float64(0), doc.Missing.Float64())
	assert.Equal(t, float64(0), doc.Bad.Float64())
}

func TestOptionalNumberUnmarshal(t *testing.T) {
	var doc struct {
		ReorderPoint OptionalNumber `json:"reorderPoint"`
		SafetyStock  OptionalNumber `json:"safetyStock"`
		MaxStock     OptionalNumber `json:"maxStock"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{
		"reorderPoint": "",
		"safetyStock": "0"
	}`), &doc))

	// Empty string is "not set", a literal zero is set.
	assert.False(t, doc.ReorderPoint.IsSet())
	assert.True(t, doc.SafetyStock.IsSet())
	assert.Equal(t, float64(0), doc.SafetyStock.Or(-1))
	assert.False(t, doc.MaxStock.IsSet())
	assert.Equal(t, float64(25), doc.MaxStock.Or(25))
}

func TestOptionalNumberMarshal(t *testing.T) {
	out, err := json.Marshal(struct {
		Set   OptionalNumber `json:"set"`
		Unset OptionalNumber `json:"unset"`
	}{Set: OptionalOf(3)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"set": 3, "unset": null}`, string(out))
}
