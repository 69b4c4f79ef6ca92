package report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"excheck/internal/checkout"
)

func setupReportRouter(repo checkout.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	service := NewService(repo, NewGrouper(time.UTC, 0.06))
	handler := NewHandler(service)

	r.GET("/transactions", handler.GetTransactions)
	return r
}

func TestGetTransactionsReport(t *testing.T) {
	repo := checkout.NewInMemoryRepository()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := repo.Add(ctx, &checkout.Transaction{
			Products: []checkout.LineItem{
				{ItemName: "apple", Quantity: 1, Price: "1.25"},
			},
			CreatedAt: time.Date(2023, 4, 4, 10+i, 0, 0, 0, time.UTC),
		}); err != nil {
			t.Fatal(err)
		}
	}

	router := setupReportRouter(repo)

	req, _ := http.NewRequest("GET", "/transactions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Result Report `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	bucket, ok := resp.Result["04/04/2023"]
	if !ok {
		t.Fatalf("expected 04/04/2023 bucket, got %v", resp.Result)
	}
	if len(bucket.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(bucket.Transactions))
	}
	if bucket.TotalPrice != 2.5 {
		t.Fatalf("expected total 2.5, got %v", bucket.TotalPrice)
	}
}

func TestGetTransactionsEmptyStore(t *testing.T) {
	router := setupReportRouter(checkout.NewInMemoryRepository())

	req, _ := http.NewRequest("GET", "/transactions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"result":{}}` {
		t.Fatalf("expected empty report, got %s", w.Body.String())
	}
}
