package handler

import (
	"context"
	"net/http"

	"github.com/eaglebank/transactions/shared/cqrs"
	"github.com/eaglebank/transactions/shared/errs"
	"github.com/eaglebank/transactions/shared/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const transactionSubmittedMessage = "The new transaction was submitted successfully"

// TransactionCommander defines the write-side operations used by TransactionHandler.
type TransactionCommander interface {
	SubmitTransaction(context.Context, cqrs.SubmitTransactionCommand) error
}

// TransactionQuerier defines the read-side operations used by TransactionHandler.
type TransactionQuerier interface {
	GetTransaction(context.Context, cqrs.GetTransactionQuery) (*models.TransactionView, error)
	ListTransactions(context.Context, cqrs.ListTransactionsQuery) ([]models.TransactionView, error)
}

type TransactionHandler struct {
	commands TransactionCommander
	queries  TransactionQuerier
}

type SubmitTransactionRequest struct {
	TransactionID string          `json:"transactionId" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"decimalgte=1"`
	PaymentMethod string          `json:"paymentMethod" validate:"required"`
	GoodsType     string          `json:"goodsType" validate:"required"`
	TaxCategory   string          `json:"taxCategory" validate:"required"`
}

func NewTransactionHandler(commands TransactionCommander, queries TransactionQuerier) *TransactionHandler {
	return &TransactionHandler{commands: commands, queries: queries}
}

func (h *TransactionHandler) SubmitTransaction(c *gin.Context) {
	var req SubmitTransactionRequest
	if err := bindAndValidate(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	paymentMethod, err := models.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.commands.SubmitTransaction(c.Request.Context(), cqrs.SubmitTransactionCommand{
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
		PaymentMethod: paymentMethod,
		GoodsType:     req.GoodsType,
		TaxCategory:   req.TaxCategory,
	}); err != nil {
		_ = c.Error(err)
		return
	}

	c.String(http.StatusAccepted, transactionSubmittedMessage)
}

func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, ok := c.Params.Get("id")
	if !ok {
		_ = c.Error(errs.NewInvalidRequest("Transaction Id is not informed"))
		return
	}

	view, err := h.queries.GetTransaction(c.Request.Context(), cqrs.GetTransactionQuery{TransactionID: id})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	views, err := h.queries.ListTransactions(c.Request.Context(), cqrs.ListTransactionsQuery{})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, views)
}
