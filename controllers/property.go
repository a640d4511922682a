package controllers

import (
	"net/http"

	dbpkg "crosscheck/db"
	"crosscheck/models"

	"github.com/gin-gonic/gin"
)

type PropertyRequest struct {
	Street     string `json:"street" form:"street"`
	City       string `json:"city" form:"city"`
	State      string `json:"state" form:"state"`
	PostalCode string `json:"postal_code" form:"postal_code"`
}

// POST /api/properties
func CreateProperty(c *gin.Context) {
	landlord, ok := CurrentLandlord(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req PropertyRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	property := models.Property{
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		LandlordID: landlord.ID,
	}

	missing := property.MissingFields()
	if missing != "" {
		RespondError(c, "missing field "+missing, http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if err := db.Create(&property).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondCreated(c, property)
}
