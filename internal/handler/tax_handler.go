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

const taxSubmittedMessage = "The new tax was submitted successfully"

type TaxCommander interface {
	SubmitTax(context.Context, cqrs.SubmitTaxCommand) error
}

type TaxQuerier interface {
	GetTax(context.Context, cqrs.GetTaxQuery) (*models.TaxView, error)
	ListTaxes(context.Context, cqrs.ListTaxesQuery) ([]models.TaxView, error)
}

type TaxHandler struct {
	commands TaxCommander
	queries  TaxQuerier
}

type SubmitTaxRequest struct {
	TaxCategory string          `json:"taxCategory" validate:"required"`
	TaxValue    decimal.Decimal `json:"taxValue" validate:"decimalgte=0.1"`
}

func NewTaxHandler(commands TaxCommander, queries TaxQuerier) *TaxHandler {
	return &TaxHandler{commands: commands, queries: queries}
}

func (h *TaxHandler) SubmitTax(c *gin.Context) {
	var req SubmitTaxRequest
	if err := bindAndValidate(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.commands.SubmitTax(c.Request.Context(), cqrs.SubmitTaxCommand{
		TaxCategory: req.TaxCategory,
		TaxValue:    req.TaxValue,
	}); err != nil {
		_ = c.Error(err)
		return
	}

	c.String(http.StatusAccepted, taxSubmittedMessage)
}

// GetTax only rejects a missing path parameter; an empty category is looked up.
func (h *TaxHandler) GetTax(c *gin.Context) {
	category, ok := c.Params.Get("id")
	if !ok {
		_ = c.Error(errs.NewInvalidRequest("Tax Id is not informed"))
		return
	}

	view, err := h.queries.GetTax(c.Request.Context(), cqrs.GetTaxQuery{TaxCategory: category})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *TaxHandler) ListTaxes(c *gin.Context) {
	views, err := h.queries.ListTaxes(c.Request.Context(), cqrs.ListTaxesQuery{})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, views)
}
