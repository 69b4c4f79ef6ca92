package checkout

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		want    Amount
		wantErr bool
	}{
		{name: "json number", json: `1.25`, want: "1.25"},
		{name: "integer number", json: `3`, want: "3"},
		{name: "formatted string", json: `"2.50"`, want: "2.50"},
		{name: "arbitrary text kept for later coercion", json: `"free"`, want: "free"},
		{name: "object rejected", json: `{}`, wantErr: true},
		{name: "array rejected", json: `[1]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Amount
			err := json.Unmarshal([]byte(tt.json), &a)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestAmountMarshal(t *testing.T) {
	numeric, err := json.Marshal(Amount("2.50"))
	require.NoError(t, err)
	assert.Equal(t, `2.50`, string(numeric))

	text, err := json.Marshal(Amount("free"))
	require.NoError(t, err)
	assert.Equal(t, `"free"`, string(text))
}

func TestLineItemRoundTrip(t *testing.T) {
	// The capture client posts prices as toFixed strings.
	in := `{"itemName": "apple", "quantity": 2, "price": "1.25"}`

	var item LineItem
	require.NoError(t, json.Unmarshal([]byte(in), &item))
	assert.Equal(t, "apple", item.ItemName)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, Amount("1.25"), item.Price)
}
