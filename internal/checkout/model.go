package checkout

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Amount is a price as stored: the capture client posts some prices as
// JSON numbers and some as formatted strings, and both are kept verbatim.
// Aggregation, not storage, decides whether the text is numeric.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*a = Amount(n.String())
		return nil
	}
	return fmt.Errorf("price must be a number or string, got %s", string(data))
}

func (a Amount) MarshalJSON() ([]byte, error) {
	// Numeric text round-trips as a bare number, anything else as a string.
	if _, err := strconv.ParseFloat(string(a), 64); err == nil && json.Valid([]byte(a)) {
		return []byte(a), nil
	}
	return json.Marshal(string(a))
}

// LineItem is one scanned product inside a checkout.
type LineItem struct {
	ItemName string `json:"itemName"`
	Quantity int    `json:"quantity"`
	Price    Amount `json:"price"`
}

// Transaction is one completed checkout. Immutable once created.
type Transaction struct {
	ID        string     `json:"id"`
	Products  []LineItem `json:"products"`
	CreatedAt time.Time  `json:"createdAt"`
}
