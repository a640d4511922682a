package controllers

import (
	"net/http"
	"strconv"

	dbpkg "crosscheck/db"
	"crosscheck/models"

	"github.com/gin-gonic/gin"
)

type TenantRequest struct {
	PhoneNumber string `json:"phone_number" form:"phone_number"`
	Email       string `json:"email" form:"email"`
	FullName    string `json:"full_name" form:"full_name"`
}

// POST /api/tenants
func CreateTenant(c *gin.Context) {
	landlord, ok := CurrentLandlord(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req TenantRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	tenant := models.Tenant{
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		FullName:    req.FullName,
		LandlordID:  landlord.ID,
	}

	missing := tenant.MissingFields()
	if missing != "" {
		RespondError(c, "missing field "+missing, http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if err := db.Create(&tenant).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondCreated(c, tenant)
}

// GET /api/tenants
// With ?table=1 the response is a plain id -> full_name mapping, used
// by the client to populate dropdowns.
func GetTenants(c *gin.Context) {
	landlord, ok := CurrentLandlord(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	var tenants []models.Tenant
	if err := db.Where("landlord_id = ?", landlord.ID).Order("id asc").Find(&tenants).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	if c.Query("table") != "" {
		table := make(map[string]string, len(tenants))
		for _, t := range tenants {
			table[strconv.FormatInt(t.ID, 10)] = t.FullName
		}
		RespondSuccess(c, gin.H{"tenants": table})
		return
	}

	RespondSuccess(c, tenants)
}

// GET /api/tenants/:id
func GetTenantByID(c *gin.Context) {
	landlord, ok := CurrentLandlord(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	var tenant models.Tenant
	if err := db.Where("landlord_id = ?", landlord.ID).First(&tenant, id).Error; err != nil {
		RespondError(c, "tenant not found", http.StatusNotFound)
		return
	}

	RespondSuccess(c, tenant)
}

// PUT /api/tenants/:id
// Full replacement of phone/email/full_name. The landlord is always
// the acting one, never taken from the payload.
func UpdateTenant(c *gin.Context) {
	landlord, ok := CurrentLandlord(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var req TenantRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	var tenant models.Tenant
	if err := db.Where("landlord_id = ?", landlord.ID).First(&tenant, id).Error; err != nil {
		RespondError(c, "tenant not found", http.StatusNotFound)
		return
	}

	tenant.PhoneNumber = req.PhoneNumber
	tenant.Email = req.Email
	tenant.FullName = req.FullName
	tenant.LandlordID = landlord.ID

	missing := tenant.MissingFields()
	if missing != "" {
		RespondError(c, "missing field "+missing, http.StatusBadRequest)
		return
	}

	if err := db.Save(&tenant).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondNoContent(c)
}

// DELETE /api/tenants/:id
func DeleteTenant(c *gin.Context) {
	landlord, ok := CurrentLandlord(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	var tenant models.Tenant
	if err := db.Where("landlord_id = ?", landlord.ID).First(&tenant, id).Error; err != nil {
		RespondError(c, "tenant not found", http.StatusNotFound)
		return
	}

	// Payments and leases go with the tenant. Postgres cascades via the
	// foreign keys; sqlite cannot, so the dependents are deleted here in
	// the same transaction.
	tx := db.Begin()
	if err := tx.Delete(&models.Payment{}, "tenant_id = ?", tenant.ID).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tx.Delete(&models.TenantPropertyRel{}, "tenant_id = ?", tenant.ID).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tx.Delete(&models.Tenant{}, "id = ?", tenant.ID).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondNoContent(c)
}
