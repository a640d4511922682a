package controllers_test

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentBody struct {
	ID             int64  `json:"id"`
	Date           string `json:"date"`
	Amount         int64  `json:"amount"`
	RefNum         string `json:"ref_num"`
	RentedProperty *int64 `json:"rented_property"`
	PaymentType    int64  `json:"payment_type"`
	Tenant         struct {
		ID       int64  `json:"id"`
		FullName string `json:"full_name"`
		Landlord int64  `json:"landlord"`
	} `json:"tenant"`
}

func createPayment(t *testing.T, r *gin.Engine, token string, tenantID int64, date, refNum string, amount int64) paymentBody {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/payments", token, map[string]any{
		"tenant":       tenantID,
		"date":         date,
		"amount":       amount,
		"ref_num":      refNum,
		"payment_type": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var payment paymentBody
	decodeBody(t, w, &payment)
	return payment
}

func TestCreatePaymentResolvesLeasedProperty(t *testing.T) {
	r := newTestServer(t)
	token := registerLandlord(t, r, "landlord_a")
	tenantID := createTenant(t, r, token, "Alice Smith")
	propertyID := createProperty(t, r, token, "500 Main St")
	createLease(t, r, token, tenantID, propertyID)

	payment := createPayment(t, r, token, tenantID, "2023-01-05", "AB100", 85000)

	require.NotNil(t, payment.RentedProperty)
	assert.Equal(t, propertyID, *payment.RentedProperty)
	assert.Equal(t, "Alice Smith", payment.Tenant.FullName)
	assert.Equal(t, tenantID, payment.Tenant.ID)
	assert.Equal(t, "2023-01-05", payment.Date)
}

func TestCreatePaymentWithoutLeaseLeavesPropertyNull(t *testing.T) {
	r := newTestServer(t)
	token := registerLandlord(t, r, "landlord_a")
	tenantID := createTenant(t, r, token, "Alice Smith")

	payment := createPayment(t, r, token, tenantID, "2023-01-05", "AB100", 85000)
	assert.Nil(t, payment.RentedProperty)
}

func TestCreatePaymentNewestLeaseWins(t *testing.T) {
	r := newTestServer(t)
	token := registerLandlord(t, r, "landlord_a")
	tenantID := createTenant(t, r, token, "Alice Smith")
	oldProperty := createProperty(t, r, token, "500 Main St")
	newProperty := createProperty(t, r, token, "12 Oak Ave")
	createLease(t, r, token, tenantID, oldProperty)
	createLease(t, r, token, tenantID, newProperty)

	payment := createPayment(t, r, token, tenantID, "2023-01-05", "AB100", 85000)
	require.NotNil(t, payment.RentedProperty)
	assert.Equal(t, newProperty, *payment.RentedProperty)
}

func TestCreatePaymentUnknownTenant(t *testing.T) {
	r := newTestServer(t)
	token := registerLandlord(t, r, "landlord_a")

	w := doJSON(t, r, http.MethodPost, "/api/payments", token, map[string]any{
		"tenant":       999,
		"date":         "2023-01-05",
		"amount":       85000,
		"ref_num":      "AB100",
		"payment_type": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentKeywordFilter(t *testing.T) {
	r := newTestServer(t)
	token := registerLandlord(t, r, "landlord_a")
	alice := createTenant(t, r, token, "Alice Smith")
	createPayment(t, r, token, alice, "2023-01-05", "AB100", 85000)
	createPayment(t, r, token, alice, "2023-02-10", "ZZ900", 90000)

	// Matches ref_num, case-insensitive.
	w := doJSON(t, r, http.MethodGet, "/api/payments?keyword=ab", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var byRef []paymentBody
	decodeBody(t, w, &byRef)
	require.Len(t, byRef, 1)
	assert.Equal(t, "AB100", byRef[0].RefNum)

	// Matches tenant name, so both of Alice's payments come back.
	w = doJSON(t, r, http.MethodGet, "/api/payments?keyword=alice", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var byName []paymentBody
	decodeBody(t, w, &byName)
	assert.Len(t, byName, 2)
}

func TestPaymentDateRangeFilter(t *testing.T) {
	r := newTestServer(t)
	token := registerLandlord(t, r, "landlord_a")
	alice := createTenant(t, r, token, "Alice Smith")
	createPayment(t, r, token, alice, "2023-01-05", "AB100", 85000)
	createPayment(t, r, token, alice, "2023-02-10", "ZZ900", 90000)

	w := doJSON(t, r, http.MethodGet, "/api/payments?date=1", token, map[string]any{
		"startDate": "2023-01-01",
		"endDate":   "2023-01-31",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var payments []paymentBody
	decodeBody(t, w, &payments)
	require.Len(t, payments, 1)
	assert.Equal(t, "2023-01-05", payments[0].Date)
}

func TestPaymentKeywordAndDateFiltersCombine(t *testing.T) {
	r := newTestServer(t)
	token := registerLandlord(t, r, "landlord_a")
	alice := createTenant(t, r, token, "Alice Smith")
	createPayment(t, r, token, alice, "2023-01-05", "AB100", 85000)
	createPayment(t, r, token, alice, "2023-02-10", "AB200", 90000)

	w := doJSON(t, r, http.MethodGet, "/api/payments?keyword=ab&date=1", token, map[string]any{
		"startDate": "2023-02-01",
		"endDate":   "2023-02-28",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var payments []paymentBody
	decodeBody(t, w, &payments)
	require.Len(t, payments, 1)
	assert.Equal(t, "AB200", payments[0].RefNum)
}

func TestPaymentListIsLandlordScoped(t *testing.T) {
	r := newTestServer(t)
	tokenA := registerLandlord(t, r, "landlord_a")
	tokenB := registerLandlord(t, r, "landlord_b")
	alice := createTenant(t, r, tokenA, "Alice Smith")
	createPayment(t, r, tokenA, alice, "2023-01-05", "AB100", 85000)

	w := doJSON(t, r, http.MethodGet, "/api/payments", tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var payments []paymentBody
	decodeBody(t, w, &payments)
	assert.Empty(t, payments)
}

func TestPaymentRoundTrip(t *testing.T) {
	r := newTestServer(t)
	token := registerLandlord(t, r, "landlord_a")
	tenantID := createTenant(t, r, token, "Alice Smith")
	propertyID := createProperty(t, r, token, "500 Main St")
	createLease(t, r, token, tenantID, propertyID)

	created := createPayment(t, r, token, tenantID, "2023-01-05", "AB100", 85000)

	w := doJSON(t, r, http.MethodGet, "/api/payments/"+strconv.FormatInt(created.ID, 10), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var fetched paymentBody
	decodeBody(t, w, &fetched)
	assert.Equal(t, created, fetched)
}

func TestUpdatePaymentWithoutLease(t *testing.T) {
	r := newTestServer(t)
	token := registerLandlord(t, r, "landlord_a")
	tenantID := createTenant(t, r, token, "Alice Smith")
	created := createPayment(t, r, token, tenantID, "2023-01-05", "AB100", 85000)
	path := "/api/payments/" + strconv.FormatInt(created.ID, 10)

	// No lease exists; the update still succeeds with a null property.
	w := doJSON(t, r, http.MethodPut, path, token, map[string]any{
		"tenant":       tenantID,
		"date":         "2023-01-06",
		"amount":       86000,
		"ref_num":      "AB101",
		"payment_type": 2,
	})
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	assert.Empty(t, w.Body.Bytes())

	w = doJSON(t, r, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched paymentBody
	decodeBody(t, w, &fetched)
	assert.Equal(t, "2023-01-06", fetched.Date)
	assert.Equal(t, int64(86000), fetched.Amount)
	assert.Equal(t, "AB101", fetched.RefNum)
	assert.Equal(t, int64(2), fetched.PaymentType)
	assert.Nil(t, fetched.RentedProperty)
}

func TestUpdateMissingPaymentReturnsNotFound(t *testing.T) {
	r := newTestServer(t)
	token := registerLandlord(t, r, "landlord_a")
	tenantID := createTenant(t, r, token, "Alice Smith")

	w := doJSON(t, r, http.MethodPut, "/api/payments/999", token, map[string]any{
		"tenant":       tenantID,
		"date":         "2023-01-06",
		"amount":       86000,
		"ref_num":      "AB101",
		"payment_type": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMissingPaymentReturnsNotFound(t *testing.T) {
	r := newTestServer(t)
	token := registerLandlord(t, r, "landlord_a")

	w := doJSON(t, r, http.MethodDelete, "/api/payments/999", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Code string `json:"code"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "not_found", resp.Code)
}

func TestPaymentTypesList(t *testing.T) {
	r := newTestServer(t)
	token := registerLandlord(t, r, "landlord_a")

	w := doJSON(t, r, http.MethodGet, "/api/payment-types", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var types []struct {
		ID    int64  `json:"id"`
		Label string `json:"label"`
	}
	decodeBody(t, w, &types)
	require.NotEmpty(t, types)
	assert.Equal(t, "Rent", types[0].Label)
}
