package models

import (
	"strings"

	"github.com/eaglebank/transactions/shared/errs"
)

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCard         PaymentMethod = "CARD"
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard    PaymentMethod = "DEBIT_CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodPix          PaymentMethod = "PIX"
)

var paymentMethods = map[PaymentMethod]struct{}{
	PaymentMethodCash:         {},
	PaymentMethodCard:         {},
	PaymentMethodCreditCard:   {},
	PaymentMethodDebitCard:    {},
	PaymentMethodBankTransfer: {},
	PaymentMethodPix:          {},
}

// ParsePaymentMethod matches s against the known payment methods ignoring case.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	if s == "" {
		return "", errs.NewInvalidRequest("Payment method should be informed")
	}
	pm := PaymentMethod(strings.ToUpper(s))
	if _, ok := paymentMethods[pm]; !ok {
		return "", errs.NewInvalidRequest("Payment method is not allowed")
	}
	return pm, nil
}

func (p PaymentMethod) String() string {
	return string(p)
}
