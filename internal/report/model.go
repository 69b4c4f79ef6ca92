package report

import "excheck/internal/checkout"

// TransactionSummary is a stored transaction with its total recomputed
// from the line items. Stored totals are never trusted; this is the only
// total the report exposes.
type TransactionSummary struct {
	checkout.Transaction
	TotalPrice float64 `json:"totalPrice"`
}

// DateBucket holds one calendar day of checkouts. TotalPrice is the net
// sum of member totals; TaxAmount and GrossTotal are derived from the
// configured tax rate.
type DateBucket struct {
	TotalPrice   float64              `json:"totalPrice"`
	TaxAmount    float64              `json:"taxAmount"`
	GrossTotal   float64              `json:"grossTotal"`
	Transactions []TransactionSummary `json:"transactions"`
}

// Report maps DD/MM/YYYY date keys to their buckets.
type Report map[string]DateBucket
