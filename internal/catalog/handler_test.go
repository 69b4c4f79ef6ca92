package catalog

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupCatalogRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(NewService(repo))
	r.POST("/product", handler.SaveProduct)
	r.GET("/products", handler.ListProducts)
	return r
}

func TestSaveProductAndList(t *testing.T) {
	router := setupCatalogRouter(NewInMemoryRepository())

	body := `{"productInfo": {"name": "apple", "price": 1.25, "category": "fruit"}}`
	req, _ := http.NewRequest("POST", "/product", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	req, _ = http.NewRequest("GET", "/products", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Result []Product `json:"result"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Result) != 1 || resp.Result[0].Name != "apple" {
		t.Fatalf("unexpected products: %+v", resp.Result)
	}
}

func TestSaveProductWithoutName(t *testing.T) {
	router := setupCatalogRouter(NewInMemoryRepository())

	body := `{"productInfo": {"price": 1.25}}`
	req, _ := http.NewRequest("POST", "/product", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListProductsEmpty(t *testing.T) {
	router := setupCatalogRouter(NewInMemoryRepository())

	req, _ := http.NewRequest("GET", "/products", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != `{"result":[]}` {
		t.Fatalf("expected empty result array, got %s", w.Body.String())
	}
}
