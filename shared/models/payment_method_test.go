package models

import (
	"testing"

	"github.com/eaglebank/transactions/shared/errs"
)

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		input    string
		expected PaymentMethod
		wantErr  bool
	}{
		{input: "card", expected: PaymentMethodCard},
		{input: "CARD", expected: PaymentMethodCard},
		{input: "Card", expected: PaymentMethodCard},
		{input: "cash", expected: PaymentMethodCash},
		{input: "bank_transfer", expected: PaymentMethodBankTransfer},
		{input: "Pix", expected: PaymentMethodPix},
		{input: "cheque", wantErr: true},
		{input: " card", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			pm, err := ParsePaymentMethod(tt.input)
			if tt.wantErr {
				if !errs.IsKind(err, errs.KindInvalidRequest) {
					t.Fatalf("expected invalid request, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if pm != tt.expected {
				t.Errorf("expected %s got %s", tt.expected, pm)
			}
		})
	}
}
