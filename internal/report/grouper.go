package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"excheck/internal/checkout"
)

// IntegrityError marks a stored transaction whose price text cannot be
// read as a number. The transaction is left out of the report; the error
// is reported to the caller, not swallowed.
type IntegrityError struct {
	TransactionID string
	ItemName      string
	Price         string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("transaction %s: item %q has non-numeric price %q",
		e.TransactionID, e.ItemName, e.Price)
}

// dateKeyFormat renders calendar-day keys as DD/MM/YYYY.
const dateKeyFormat = "02/01/2006"

// Grouper buckets transactions by calendar day. The timezone and tax rate
// are deployment configuration, fixed at construction.
type Grouper struct {
	loc     *time.Location
	taxRate decimal.Decimal
}

func NewGrouper(loc *time.Location, taxRate float64) *Grouper {
	if loc == nil {
		loc = time.UTC
	}
	return &Grouper{
		loc:     loc,
		taxRate: decimal.NewFromFloat(taxRate),
	}
}

// civilDate is a timezone-resolved calendar day, used as the bucket key so
// grouping never compares formatted strings.
type civilDate struct {
	Year  int
	Month time.Month
	Day   int
}

func (d civilDate) render() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(dateKeyFormat)
}

// Group recomputes each transaction's total from its line items, orders
// transactions most-recent-first, and sums them into per-day buckets.
// Transactions with unreadable prices are excluded and returned as
// integrity errors; everything else lands in exactly one bucket.
func (g *Grouper) Group(transactions []checkout.Transaction) (Report, []IntegrityError) {
	type entry struct {
		tx    checkout.Transaction
		total decimal.Decimal
	}

	var integrity []IntegrityError
	entries := make([]entry, 0, len(transactions))
	for _, tx := range transactions {
		total, badItem := transactionTotal(tx)
		if badItem != nil {
			integrity = append(integrity, *badItem)
			continue
		}
		entries = append(entries, entry{tx: tx, total: total})
	}

	// Most recent first; storage order breaks ties.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].tx.CreatedAt.After(entries[j].tx.CreatedAt)
	})

	type bucket struct {
		total        decimal.Decimal
		transactions []TransactionSummary
	}
	buckets := make(map[civilDate]*bucket)

	for _, e := range entries {
		year, month, day := e.tx.CreatedAt.In(g.loc).Date()
		key := civilDate{Year: year, Month: month, Day: day}

		b, ok := buckets[key]
		if !ok {
			b = &bucket{total: decimal.Zero}
			buckets[key] = b
		}
		b.total = b.total.Add(e.total)
		b.transactions = append(b.transactions, TransactionSummary{
			Transaction: e.tx,
			TotalPrice:  e.total.InexactFloat64(),
		})
	}

	result := make(Report, len(buckets))
	for key, b := range buckets {
		tax := b.total.Mul(g.taxRate).Round(2)
		result[key.render()] = DateBucket{
			TotalPrice:   b.total.InexactFloat64(),
			TaxAmount:    tax.InexactFloat64(),
			GrossTotal:   b.total.Add(tax).InexactFloat64(),
			Transactions: b.transactions,
		}
	}
	return result, integrity
}

// transactionTotal sums price*quantity over the line items. Prices are
// stored as received, sometimes as text, so each one is coerced here.
func transactionTotal(tx checkout.Transaction) (decimal.Decimal, *IntegrityError) {
	total := decimal.Zero
	for _, item := range tx.Products {
		price, err := decimal.NewFromString(string(item.Price))
		if err != nil {
			return decimal.Zero, &IntegrityError{
				TransactionID: tx.ID,
				ItemName:      item.ItemName,
				Price:         string(item.Price),
			}
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, nil
}
