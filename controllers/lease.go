package controllers

import (
	"net/http"

	dbpkg "crosscheck/db"
	"crosscheck/models"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

type LeaseRequest struct {
	Tenant         int64 `json:"tenant" form:"tenant"`
	RentedProperty int64 `json:"rented_property" form:"rented_property"`
}

// resolveLeasedProperty returns the property id from the tenant's
// current lease, or nil when the tenant has no lease. When several
// relations exist the newest one wins.
func resolveLeasedProperty(db *gorm.DB, tenantID int64) (*int64, error) {
	var lease models.TenantPropertyRel
	err := db.Where("tenant_id = ?", tenantID).Order("id desc").First(&lease).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}
	id := lease.RentedPropertyID
	return &id, nil
}

// POST /api/leases
// Associates a landlord-owned tenant with a landlord-owned property.
func CreateLease(c *gin.Context) {
	landlord, ok := CurrentLandlord(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req LeaseRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Tenant <= 0 {
		RespondError(c, "missing field tenant", http.StatusBadRequest)
		return
	}
	if req.RentedProperty <= 0 {
		RespondError(c, "missing field rented_property", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)

	var tenant models.Tenant
	if err := db.Where("landlord_id = ?", landlord.ID).First(&tenant, req.Tenant).Error; err != nil {
		RespondError(c, "tenant not found", http.StatusNotFound)
		return
	}

	var property models.Property
	if err := db.Where("landlord_id = ?", landlord.ID).First(&property, req.RentedProperty).Error; err != nil {
		RespondError(c, "property not found", http.StatusNotFound)
		return
	}

	lease := models.TenantPropertyRel{
		TenantID:         tenant.ID,
		RentedPropertyID: property.ID,
	}
	if err := db.Create(&lease).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondCreated(c, lease)
}

// GET /api/leases
func GetLeases(c *gin.Context) {
	landlord, ok := CurrentLandlord(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	var leases []models.TenantPropertyRel
	err := db.Table("tenant_property_rels").
		Select("tenant_property_rels.*").
		Joins("join tenants on tenants.id = tenant_property_rels.tenant_id").
		Where("tenants.landlord_id = ?", landlord.ID).
		Order("tenant_property_rels.id asc").
		Find(&leases).Error
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, leases)
}
