package report

import (
	"context"
	"log"

	"excheck/internal/checkout"
)

// Service builds the per-day sales report from a snapshot of the
// transaction store. Reports are recomputed on every call, never cached.
type Service struct {
	transactions checkout.Repository
	grouper      *Grouper
}

func NewService(transactions checkout.Repository, grouper *Grouper) *Service {
	return &Service{transactions: transactions, grouper: grouper}
}

func (s *Service) BuildReport(ctx context.Context) (Report, error) {
	transactions, err := s.transactions.List(ctx)
	if err != nil {
		return nil, err
	}

	result, integrity := s.grouper.Group(transactions)
	for i := range integrity {
		log.Printf("report: excluded transaction: %v", &integrity[i])
	}
	return result, nil
}
