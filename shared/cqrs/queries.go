package cqrs

// ---------- Transaction queries ----------

// GetTransactionQuery fetches a single transaction by its caller-supplied id.
type GetTransactionQuery struct {
	TransactionID string
}

// ListTransactionsQuery fetches every stored transaction.
type ListTransactionsQuery struct{}

// ---------- Tax queries ----------

// GetTaxQuery fetches a tax rate by category.
type GetTaxQuery struct {
	TaxCategory string
}

type ListTaxesQuery struct{}
