package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/eaglebank/transactions/shared/cqrs"
	"github.com/eaglebank/transactions/shared/middleware"
	"github.com/eaglebank/transactions/shared/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ---- mock implementations ----

type mockTransactionCommander struct {
	submitFn func(cqrs.SubmitTransactionCommand) error
	calls    []cqrs.SubmitTransactionCommand
}

func (m *mockTransactionCommander) SubmitTransaction(ctx context.Context, cmd cqrs.SubmitTransactionCommand) error {
	m.calls = append(m.calls, cmd)
	if m.submitFn != nil {
		return m.submitFn(cmd)
	}
	return nil
}

type mockTransactionQuerier struct {
	getFn  func(cqrs.GetTransactionQuery) (*models.TransactionView, error)
	listFn func(cqrs.ListTransactionsQuery) ([]models.TransactionView, error)
}

func (m *mockTransactionQuerier) GetTransaction(ctx context.Context, q cqrs.GetTransactionQuery) (*models.TransactionView, error) {
	if m.getFn != nil {
		return m.getFn(q)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockTransactionQuerier) ListTransactions(ctx context.Context, q cqrs.ListTransactionsQuery) ([]models.TransactionView, error) {
	if m.listFn != nil {
		return m.listFn(q)
	}
	return nil, fmt.Errorf("not configured")
}

type mockTaxCommander struct {
	submitFn func(cqrs.SubmitTaxCommand) error
	calls    []cqrs.SubmitTaxCommand
}

func (m *mockTaxCommander) SubmitTax(ctx context.Context, cmd cqrs.SubmitTaxCommand) error {
	m.calls = append(m.calls, cmd)
	if m.submitFn != nil {
		return m.submitFn(cmd)
	}
	return nil
}

type mockTaxQuerier struct {
	getFn  func(cqrs.GetTaxQuery) (*models.TaxView, error)
	listFn func(cqrs.ListTaxesQuery) ([]models.TaxView, error)
}

func (m *mockTaxQuerier) GetTax(ctx context.Context, q cqrs.GetTaxQuery) (*models.TaxView, error) {
	if m.getFn != nil {
		return m.getFn(q)
	}
	return nil, fmt.Errorf("not configured")
}

func (m *mockTaxQuerier) ListTaxes(ctx context.Context, q cqrs.ListTaxesQuery) ([]models.TaxView, error) {
	if m.listFn != nil {
		return m.listFn(q)
	}
	return nil, fmt.Errorf("not configured")
}

// ---- helpers ----

func newTestRouter(txCmds TransactionCommander, txQrys TransactionQuerier, taxCmds TaxCommander, taxQrys TaxQuerier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(false))
	RegisterRoutes(r, NewTransactionHandler(txCmds, txQrys), NewTaxHandler(taxCmds, taxQrys))
	return r
}

func doRequest(router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	switch b := body.(type) {
	case nil:
	case string:
		req, _ = http.NewRequest(method, url, strings.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	default:
		raw, _ := json.Marshal(b)
		req, _ = http.NewRequest(method, url, strings.NewReader(string(raw)))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) middleware.ErrorResponse {
	t.Helper()
	var body middleware.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected error json, got %q", w.Body.String())
	}
	return body
}

// ---- test data ----

var testTransactionView = &models.TransactionView{
	ID: "tx-1", Amount: decimal.NewFromInt(1), PaymentMethod: models.PaymentMethodCash,
	GoodsType: "ELECTRONICS", TaxCategory: "STD", CreatedAt: time.Now(),
}

var testTaxView = &models.TaxView{
	Category: "STD", Value: decimal.RequireFromString("0.2"), CreatedAt: time.Now(), UpdatedAt: time.Now(),
}

func validTransactionBody() map[string]interface{} {
	return map[string]interface{}{
		"transactionId": "tx-1",
		"amount":        1,
		"paymentMethod": "CASH",
		"goodsType":     "ELECTRONICS",
		"taxCategory":   "STD",
	}
}

func transactionBodyWith(key string, value interface{}) map[string]interface{} {
	body := validTransactionBody()
	body[key] = value
	return body
}
