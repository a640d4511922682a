package controllers

import (
	"net/http"

	dbpkg "crosscheck/db"
	"crosscheck/models"

	"github.com/gin-gonic/gin"
)

// GET /api/payment-types
// Global reference data, not landlord-scoped.
func GetPaymentTypes(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	var paymentTypes []models.PaymentType
	if err := db.Order("id asc").Find(&paymentTypes).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, paymentTypes)
}
