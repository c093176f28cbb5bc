package handler

import "github.com/gin-gonic/gin"

const basePath = "/transactions/v1"

// RegisterRoutes mounts both endpoint groups under /transactions/v1.
func RegisterRoutes(r gin.IRouter, transactions *TransactionHandler, taxes *TaxHandler) {
	v1 := r.Group(basePath)
	{
		v1.POST("/submitTransaction", transactions.SubmitTransaction)
		v1.GET("/retrieveTransaction", transactions.ListTransactions)
		v1.GET("/retrieveTransaction/:id", transactions.GetTransaction)

		v1.POST("/submitTax", taxes.SubmitTax)
		v1.GET("/retrieveTax", taxes.ListTaxes)
		v1.GET("/retrieveTax/:id", taxes.GetTax)
	}
}
