//go:build integration

package router_test

// End-to-end tests against real Postgres and Redis containers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Mouhib912/Event-Management-Platform/internal/config"
	"github.com/Mouhib912/Event-Management-Platform/internal/infra"
	"github.com/Mouhib912/Event-Management-Platform/internal/repository"
	"github.com/Mouhib912/Event-Management-Platform/internal/router"
	"github.com/Mouhib912/Event-Management-Platform/internal/service"
	"github.com/Mouhib912/Event-Management-Platform/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

type e2eEnv struct {
	server *httptest.Server
	rdb    *redis.Client
	token  string
}

func (e *e2eEnv) do(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, e.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if e.token != "" {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeResp(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func setupE2E(t *testing.T) *e2eEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		tcPostgres.WithDatabase("events_test"),
		tcPostgres.WithUsername("events"),
		tcPostgres.WithPassword("events"),
		testcontainers.WithWaitStrategy(tcPostgres.BasicWaitStrategies()...),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })
	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })
	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		WorkerPoolSize:     1,
		DefaultCurrency:    "TND",
		CompanyName:        "Events Co",
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL, true)
	require.NoError(t, err)
	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	auth := service.NewAuthService(repository.NewUserRepository(db), cfg, infra.NewTokenDenylist(rdb))
	_, err = auth.EnsureOwner(ctx, "admin@e2e.test", "e2e-password", "Admin E2E")
	require.NoError(t, err)

	srv := httptest.NewServer(router.New(cfg, db, rdb))
	t.Cleanup(srv.Close)

	env := &e2eEnv{server: srv, rdb: rdb}
	resp := env.do(t, http.MethodPost, "/api/auth/login", map[string]string{"email": "admin@e2e.test", "password": "e2e-password"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		AccessToken string `json:"access_token"`
	}
	decodeResp(t, resp, &login)
	require.NotEmpty(t, login.AccessToken)
	env.token = login.AccessToken
	return env
}

func createID(t *testing.T, env *e2eEnv, path string, body any) uint {
	t.Helper()
	resp := env.do(t, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out struct {
		ID uint `json:"id"`
	}
	decodeResp(t, resp, &out)
	return out.ID
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_StandApprovalToFacture(t *testing.T) {
	env := setupE2E(t)

	supplierA := createID(t, env, "/api/suppliers", map[string]any{"name": "Sono Pro", "email": "sono@e2e.test"})
	supplierB := createID(t, env, "/api/suppliers", map[string]any{"name": "Mobilier Plus", "email": "mob@e2e.test"})
	category := createID(t, env, "/api/categories", map[string]any{"name": "Location"})
	speaker := createID(t, env, "/api/products", map[string]any{
		"name": "Enceinte", "category_id": category, "supplier_id": supplierA,
		"unit": "pièce", "price": "100", "pricing_type": "Par Jour",
	})
	table := createID(t, env, "/api/products", map[string]any{
		"name": "Table", "category_id": category, "supplier_id": supplierB,
		"unit": "pièce", "price": "25", "pricing_type": "Forfait",
	})

	// 1. Stand with two suppliers fans out into two purchase orders
	resp := env.do(t, http.MethodPost, "/api/stands", map[string]any{
		"name": "Salon Habitat",
		"items": []map[string]any{
			{"product_id": speaker, "quantity": 2, "days": 3},
			{"product_id": table, "quantity": 4},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var stand struct {
		StandID          uint `json:"stand_id"`
		PurchasesCreated []struct {
			PurchaseNumber string `json:"purchase_number"`
		} `json:"purchases_created"`
	}
	decodeResp(t, resp, &stand)
	require.Len(t, stand.PurchasesCreated, 2)
	assert.NotEqual(t, stand.PurchasesCreated[0].PurchaseNumber, stand.PurchasesCreated[1].PurchaseNumber)

	// 2. Approval workflow
	for _, step := range []string{"validate-logistics", "validate-finance"} {
		resp = env.do(t, http.MethodPost, fmt.Sprintf("/api/stands/%d/%s", stand.StandID, step), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, step)
		resp.Body.Close()
	}

	// 3. Devis from the approved stand, then facture
	resp = env.do(t, http.MethodPost, "/api/invoices", map[string]any{"stand_id": stand.StandID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		InvoiceID     uint   `json:"invoice_id"`
		InvoiceNumber string `json:"invoice_number"`
	}
	decodeResp(t, resp, &created)
	assert.True(t, strings.HasPrefix(created.InvoiceNumber, "DEV-"))

	invoicePath := fmt.Sprintf("/api/invoices/%d", created.InvoiceID)
	resp = env.do(t, http.MethodPut, invoicePath, map[string]any{"status": "facture"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, invoicePath, nil)
	var invoice struct {
		InvoiceNumber string      `json:"invoice_number"`
		Status        string      `json:"status"`
		TotalHT       json.Number `json:"total_ht"`
	}
	decodeResp(t, resp, &invoice)
	assert.Equal(t, "facture", invoice.Status)
	assert.True(t, strings.HasPrefix(invoice.InvoiceNumber, "FAC-"))
	assert.Equal(t, "700", invoice.TotalHT.String())

	// 4. Send queues an email job in Redis
	resp = env.do(t, http.MethodPost, invoicePath+"/send", map[string]string{"to": "client@e2e.test"})
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp.Body.Close()
	n, err := env.rdb.LLen(context.Background(), worker.QueueEmail).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestE2E_LogoutRevokesToken(t *testing.T) {
	env := setupE2E(t)

	resp := env.do(t, http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
