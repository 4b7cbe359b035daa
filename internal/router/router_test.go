package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"
	"github.com/Mouhib912/Event-Management-Platform/internal/repository"
	"github.com/Mouhib912/Event-Management-Platform/internal/router"
	"github.com/Mouhib912/Event-Management-Platform/internal/service"
	"github.com/Mouhib912/Event-Management-Platform/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	ownerEmail    = "owner@events.test"
	ownerPassword = "s3cret!"
)

type apiClient struct {
	t      *testing.T
	engine *gin.Engine
	db     *gorm.DB
	token  string
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := testutil.Config()
	db := testutil.NewDB(t)

	auth := service.NewAuthService(repository.NewUserRepository(db), cfg, nil)
	_, err := auth.EnsureOwner(context.Background(), ownerEmail, ownerPassword, "Owner")
	require.NoError(t, err)

	return &apiClient{t: t, engine: router.New(cfg, db, nil), db: db}
}

func (a *apiClient) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *apiClient) login(email, password string) {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: email, Password: password})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.LoginResponse
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &resp))
	a.token = resp.AccessToken
}

// created posts body and returns the id from the 201 response.
func (a *apiClient) created(path string, body interface{}) uint {
	a.t.Helper()
	w := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	var resp dto.MessageResponse
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	api := newAPI(t)
	w := api.do(http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]interface{}](t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "disabled", body["redis"])
}

func TestAuth_LoginAndMe(t *testing.T) {
	api := newAPI(t)

	w := api.do(http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: ownerEmail, Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	api.login(ownerEmail, ownerPassword)
	w = api.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[dto.UserResponse](t, w)
	assert.Equal(t, ownerEmail, me.Email)
	assert.Equal(t, model.RoleOwner, me.Role)

	// Without a denylist logout succeeds but the token stays usable.
	assert.Equal(t, http.StatusOK, api.do(http.MethodPost, "/api/auth/logout", nil).Code)
}

func TestRoles_VisitorIsRejected(t *testing.T) {
	api := newAPI(t)
	api.login(ownerEmail, ownerPassword)
	api.created("/api/auth/register", dto.RegisterRequest{
		Email: "visitor@events.test", Password: "visitor1", Name: "Vis", Role: "visitor",
	})

	api.login("visitor@events.test", "visitor1")
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodPost, "/api/stands", dto.CreateStandRequest{Name: "S"}).Code)
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodGet, "/api/users", nil).Code)
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodPost, "/api/stands/1/validate-finance", nil).Code)
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/stands", nil).Code)
}

func TestValidationErrors(t *testing.T) {
	api := newAPI(t)
	api.login(ownerEmail, ownerPassword)

	w := api.do(http.MethodPost, "/api/suppliers", dto.SupplierRequest{Email: "not-an-email"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decode[map[string]interface{}](t, w)
	fields, ok := body["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "required", fields["name"])
	assert.Equal(t, "email", fields["email"])

	w = api.do(http.MethodPut, "/api/stands/abc", map[string]string{"name": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, "/api/invoices/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStandToFactureFlow(t *testing.T) {
	api := newAPI(t)
	api.login(ownerEmail, ownerPassword)

	supplierID := api.created("/api/suppliers", dto.SupplierRequest{Name: "Sono Pro", Email: "sono@events.test"})
	categoryID := api.created("/api/categories", dto.CreateCategoryRequest{Name: "Audio"})
	productID := api.created("/api/products", dto.CreateProductRequest{
		Name: "Enceinte", CategoryID: categoryID, SupplierID: supplierID,
		Unit: "pièce", Price: decimal.NewFromInt(100), PricingType: model.PricingPerDay,
	})

	w := api.do(http.MethodPost, "/api/stands", dto.CreateStandRequest{
		Name:  "Salon Auto",
		Items: []dto.LineItemInput{{ProductID: productID, Quantity: 2, Days: 3}},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	stand := decode[dto.CreateStandResponse](t, w)
	require.Len(t, stand.PurchasesCreated, 1)
	assert.Equal(t, supplierID, stand.PurchasesCreated[0].SupplierID)

	// Creation approves the stand; later validations only record the validator.
	standPath := fmt.Sprintf("/api/stands/%d", stand.StandID)
	for _, step := range []string{"/validate-logistics", "/validate-finance"} {
		w = api.do(http.MethodPost, standPath+step, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, model.StandApproved, decode[dto.WorkflowResponse](t, w).Status)
	}

	w = api.do(http.MethodPost, "/api/invoices", dto.CreateInvoiceRequest{StandID: &stand.StandID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[dto.CreateInvoiceResponse](t, w)
	assert.True(t, strings.HasPrefix(created.InvoiceNumber, "DEV-"), created.InvoiceNumber)

	invoicePath := fmt.Sprintf("/api/invoices/%d", created.InvoiceID)
	invoice := decode[dto.InvoiceResponse](t, api.do(http.MethodGet, invoicePath, nil))
	assert.True(t, decimal.NewFromInt(600).Equal(invoice.TotalHT), invoice.TotalHT.String())
	assert.Equal(t, model.InvoiceDevis, invoice.Status)
	assert.Equal(t, model.DefaultClientName, invoice.ClientName)

	status := model.InvoiceFacture
	w = api.do(http.MethodPut, invoicePath, dto.UpdateInvoiceRequest{Status: &status})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	invoice = decode[dto.InvoiceResponse](t, api.do(http.MethodGet, invoicePath, nil))
	assert.Equal(t, model.InvoiceFacture, invoice.Status)
	assert.True(t, strings.HasPrefix(invoice.InvoiceNumber, "FAC-"), invoice.InvoiceNumber)
	assert.NotNil(t, invoice.ApprovedAt)

	w = api.do(http.MethodGet, invoicePath+"/pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))

	w = api.do(http.MethodPost, invoicePath+"/send", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestStandWorkflow_OverHTTP(t *testing.T) {
	api := newAPI(t)
	api.login(ownerEmail, ownerPassword)

	newDraft := func(name string) string {
		st := &model.Stand{Name: name, Status: model.StandDraft, TotalAmount: decimal.Zero, Currency: "TND"}
		require.NoError(t, api.db.Create(st).Error)
		return fmt.Sprintf("/api/stands/%d", st.ID)
	}
	step := func(path, action string) string {
		w := api.do(http.MethodPost, path+action, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		return decode[dto.WorkflowResponse](t, w).Status
	}

	first := newDraft("Logistics first")
	assert.Equal(t, model.StandValidatedLogistics, step(first, "/validate-logistics"))
	assert.Equal(t, model.StandApproved, step(first, "/validate-finance"))

	second := newDraft("Finance first")
	assert.Equal(t, model.StandValidatedFinance, step(second, "/validate-finance"))
	assert.Equal(t, model.StandValidatedFinance, step(second, "/validate-logistics"))
}
