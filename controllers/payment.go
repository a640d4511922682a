package controllers

import (
	"net/http"
	"strings"
	"time"

	dbpkg "crosscheck/db"
	"crosscheck/models"

	"github.com/gin-gonic/gin"
)

type PaymentRequest struct {
	Tenant      int64  `json:"tenant" form:"tenant"`
	Date        string `json:"date" form:"date"`
	Amount      int64  `json:"amount" form:"amount"`
	RefNum      string `json:"ref_num" form:"ref_num"`
	PaymentType int64  `json:"payment_type" form:"payment_type"`
}

type DateRangeRequest struct {
	StartDate string `json:"startDate" form:"startDate"`
	EndDate   string `json:"endDate" form:"endDate"`
}

// PaymentTenant is the tenant sub-object embedded in payment responses.
type PaymentTenant struct {
	ID          int64  `json:"id"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Landlord    int64  `json:"landlord"`
	FullName    string `json:"full_name"`
}

type PaymentResponse struct {
	ID             int64         `json:"id"`
	Date           string        `json:"date"`
	Amount         int64         `json:"amount"`
	RefNum         string        `json:"ref_num"`
	Tenant         PaymentTenant `json:"tenant"`
	RentedProperty *int64        `json:"rented_property"`
	PaymentType    int64         `json:"payment_type"`
}

func serializePayment(payment models.Payment, tenant models.Tenant) PaymentResponse {
	return PaymentResponse{
		ID:     payment.ID,
		Date:   payment.Date.Format(models.DateLayout),
		Amount: payment.Amount,
		RefNum: payment.RefNum,
		Tenant: PaymentTenant{
			ID:          tenant.ID,
			PhoneNumber: tenant.PhoneNumber,
			Email:       tenant.Email,
			Landlord:    tenant.LandlordID,
			FullName:    tenant.FullName,
		},
		RentedProperty: payment.RentedPropertyID,
		PaymentType:    payment.PaymentTypeID,
	}
}

func (req PaymentRequest) missingFields() string {
	if req.Tenant <= 0 {
		return "tenant"
	} else if req.Date == "" {
		return "date"
	} else if req.Amount == 0 {
		return "amount"
	} else if req.RefNum == "" {
		return "ref_num"
	} else if req.PaymentType <= 0 {
		return "payment_type"
	}
	return ""
}

// POST /api/payments
// The rented property is derived from the tenant's lease, not supplied
// by the caller. A tenant without a lease yields a null property.
func CreatePayment(c *gin.Context) {
	landlord, ok := CurrentLandlord(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if missing := req.missingFields(); missing != "" {
		RespondError(c, "missing field "+missing, http.StatusBadRequest)
		return
	}

	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		RespondError(c, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)

	var tenant models.Tenant
	if err := db.Where("landlord_id = ?", landlord.ID).First(&tenant, req.Tenant).Error; err != nil {
		RespondError(c, "tenant not found", http.StatusNotFound)
		return
	}

	var paymentType models.PaymentType
	if err := db.First(&paymentType, req.PaymentType).Error; err != nil {
		RespondError(c, "payment type not found", http.StatusNotFound)
		return
	}

	propertyID, err := resolveLeasedProperty(db, tenant.ID)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	payment := models.Payment{
		Date:             date,
		Amount:           req.Amount,
		RefNum:           req.RefNum,
		TenantID:         tenant.ID,
		RentedPropertyID: propertyID,
		PaymentTypeID:    paymentType.ID,
		LandlordID:       landlord.ID,
	}

	if err := db.Create(&payment).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondCreated(c, serializePayment(payment, tenant))
}

// GET /api/payments
// Two combinable filters: ?keyword= matches ref_num or tenant name
// (case-insensitive, union); ?date=1 reads {startDate, endDate} from
// the body and keeps payments inside the inclusive range.
func GetPayments(c *gin.Context) {
	landlord, ok := CurrentLandlord(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	q := db.Where("payments.landlord_id = ?", landlord.ID)

	if keyword := c.Query("keyword"); keyword != "" {
		kw := "%" + strings.ToLower(keyword) + "%"
		q = q.Joins("join tenants on tenants.id = payments.tenant_id").
			Where("LOWER(payments.ref_num) LIKE ? OR LOWER(tenants.full_name) LIKE ?", kw, kw)
	}

	if c.Query("date") != "" {
		var rng DateRangeRequest
		if err := c.ShouldBindJSON(&rng); err != nil {
			RespondError(c, "startDate and endDate are required in the body", http.StatusBadRequest)
			return
		}
		start, err := time.Parse(models.DateLayout, rng.StartDate)
		if err != nil {
			RespondError(c, "startDate must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		end, err := time.Parse(models.DateLayout, rng.EndDate)
		if err != nil {
			RespondError(c, "endDate must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		q = q.Where("payments.date >= ? AND payments.date <= ?", start, end)
	}

	var payments []models.Payment
	if err := q.Order("payments.id asc").Find(&payments).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	// One query for all referenced tenants, then serialize.
	tenantByID := make(map[int64]models.Tenant)
	if len(payments) > 0 {
		ids := make([]int64, 0, len(payments))
		for _, p := range payments {
			ids = append(ids, p.TenantID)
		}
		var tenants []models.Tenant
		if err := db.Where("id in (?)", ids).Find(&tenants).Error; err != nil {
			RespondError(c, err.Error(), http.StatusInternalServerError)
			return
		}
		for _, t := range tenants {
			tenantByID[t.ID] = t
		}
	}

	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, serializePayment(p, tenantByID[p.TenantID]))
	}

	RespondSuccess(c, out)
}

// GET /api/payments/:id
func GetPaymentByID(c *gin.Context) {
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
	var payment models.Payment
	if err := db.Where("landlord_id = ?", landlord.ID).First(&payment, id).Error; err != nil {
		RespondError(c, "payment not found", http.StatusNotFound)
		return
	}

	var tenant models.Tenant
	if err := db.First(&tenant, payment.TenantID).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondSuccess(c, serializePayment(payment, tenant))
}

// PUT /api/payments/:id
// Same field and lease resolution as create, applied to an existing
// payment. The lease lookup is guarded here too: no lease means a null
// property, never a failure.
func UpdatePayment(c *gin.Context) {
	landlord, ok := CurrentLandlord(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var req PaymentRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if missing := req.missingFields(); missing != "" {
		RespondError(c, "missing field "+missing, http.StatusBadRequest)
		return
	}

	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		RespondError(c, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)

	var payment models.Payment
	if err := db.Where("landlord_id = ?", landlord.ID).First(&payment, id).Error; err != nil {
		RespondError(c, "payment not found", http.StatusNotFound)
		return
	}

	var tenant models.Tenant
	if err := db.Where("landlord_id = ?", landlord.ID).First(&tenant, req.Tenant).Error; err != nil {
		RespondError(c, "tenant not found", http.StatusNotFound)
		return
	}

	var paymentType models.PaymentType
	if err := db.First(&paymentType, req.PaymentType).Error; err != nil {
		RespondError(c, "payment type not found", http.StatusNotFound)
		return
	}

	propertyID, err := resolveLeasedProperty(db, tenant.ID)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	payment.Date = date
	payment.Amount = req.Amount
	payment.RefNum = req.RefNum
	payment.TenantID = tenant.ID
	payment.RentedPropertyID = propertyID
	payment.PaymentTypeID = paymentType.ID
	payment.LandlordID = landlord.ID

	if err := db.Save(&payment).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondNoContent(c)
}

// DELETE /api/payments/:id
func DeletePayment(c *gin.Context) {
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
	var payment models.Payment
	if err := db.Where("landlord_id = ?", landlord.ID).First(&payment, id).Error; err != nil {
		RespondError(c, "payment not found", http.StatusNotFound)
		return
	}

	if err := db.Delete(&models.Payment{}, "id = ?", payment.ID).Error; err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	RespondNoContent(c)
}
