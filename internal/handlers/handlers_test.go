package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	neturl "net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donationDB/Donation-Web/internal/config"
	"github.com/donationDB/Donation-Web/internal/handlers"
	"github.com/donationDB/Donation-Web/internal/models"
	"github.com/donationDB/Donation-Web/internal/routes"
	"github.com/donationDB/Donation-Web/internal/services"
	"github.com/donationDB/Donation-Web/internal/store"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

type testStores struct {
	donors     store.DonorRepository
	programs   store.Repository[models.Program]
	companies  store.Repository[models.Company]
	categories store.Repository[models.Category]
	pinger     handlers.Pinger
}

func memoryStores(t *testing.T) testStores {
	t.Helper()
	s, err := store.LoadSample()
	require.NoError(t, err)
	return testStores{
		donors:     s.Donors,
		programs:   s.Programs,
		companies:  s.Companies,
		categories: s.Categories,
		pinger:     okPinger{},
	}
}

func offlineStores() testStores {
	return testStores{
		donors:     store.Offline[models.Donor]{},
		programs:   store.Offline[models.Program]{},
		companies:  store.Offline[models.Company]{},
		categories: store.Offline[models.Category]{},
		pinger:     store.Offline[struct{}]{},
	}
}

// newApp mounts the full route table over primary, with sample as the
// fallback store when it is non-nil.
func newApp(t *testing.T, cfg *config.Config, primary testStores, sample *store.Sample) *fiber.App {
	t.Helper()

	var (
		sDonors     store.DonorRepository
		sPrograms   store.Repository[models.Program]
		sCompanies  store.Repository[models.Company]
		sCategories store.Repository[models.Category]
	)
	if sample != nil {
		sDonors, sPrograms, sCompanies, sCategories = sample.Donors, sample.Programs, sample.Companies, sample.Categories
	}

	codec := services.PlainCodec{}
	programs := services.NewProgramService(primary.programs, sPrograms)
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	routes.Setup(app, cfg, routes.Handlers{
		Health:     handlers.NewHealthHandler(primary.pinger),
		Auth:       handlers.NewAuthHandler(services.NewAuthService(cfg, primary.donors, sDonors, codec)),
		Donors:     handlers.NewDonorHandler(services.NewDonorService(primary.donors, sDonors, codec)),
		Programs:   handlers.NewProgramHandler(programs),
		Categories: handlers.NewCategoryHandler(services.NewCategoryService(primary.categories, sCategories)),
		Companies:  handlers.NewCompanyHandler(services.NewCompanyService(primary.companies, sCompanies, programs)),
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			r = bytes.NewBufferString(b)
		default:
			buf, err := json.Marshal(b)
			require.NoError(t, err)
			r = bytes.NewReader(buf)
		}
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func errorOf(t *testing.T, body []byte) string {
	t.Helper()
	var e struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &e))
	return e.Error
}

func TestHealth(t *testing.T) {
	cfg := &config.Config{}

	status, body := do(t, newApp(t, cfg, memoryStores(t), nil), "GET", "/api/health", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"ok":true}`, string(body))

	status, body = do(t, newApp(t, cfg, offlineStores(), nil), "GET", "/api/health", nil)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.NotEmpty(t, errorOf(t, body))
	assert.NotContains(t, string(body), store.ErrOffline.Error())
}

func TestCreateDonor(t *testing.T) {
	app := newApp(t, &config.Config{}, memoryStores(t), nil)

	status, body := do(t, app, "POST", "/api/donors", map[string]any{"name": "Kim", "password": "pw"})
	require.Equal(t, fiber.StatusCreated, status, string(body))

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "Kim", got["name"])
	assert.EqualValues(t, 4, got["donor_id"])
	assert.NotContains(t, got, "password")

	status, body = do(t, app, "POST", "/api/donors", map[string]any{"name": "Kim"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "password 필수", errorOf(t, body))

	status, _ = do(t, app, "POST", "/api/donors", map[string]any{
		"name": "Other", "password": "pw", "email": "SKY.KIM@example.com",
	})
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestLogin(t *testing.T) {
	cfg := &config.Config{AdminEmail: "admin@example.com", AdminPassword: "secret", AdminName: "관리자"}
	app := newApp(t, cfg, memoryStores(t), nil)

	t.Run("null email", func(t *testing.T) {
		status, body := do(t, app, "POST", "/api/login", `{"email":null,"password":"x"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "email 필수", errorOf(t, body))
	})

	t.Run("malformed body", func(t *testing.T) {
		status, _ := do(t, app, "POST", "/api/login", `{"email":`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("donor", func(t *testing.T) {
		status, body := do(t, app, "POST", "/api/login", map[string]any{
			"email": "sky.kim@example.com", "password": "sky1234",
		})
		require.Equal(t, fiber.StatusOK, status, string(body))
		var got map[string]any
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "donor", got["role"])
		assert.Equal(t, "김하늘", got["name"])
		assert.NotContains(t, got, "password")
		assert.NotContains(t, got, "access_token")
	})

	t.Run("admin", func(t *testing.T) {
		status, body := do(t, app, "POST", "/api/login", map[string]any{
			"email": "admin@example.com", "password": "secret",
		})
		require.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, string(body), `"role":"admin"`)
	})

	t.Run("wrong password", func(t *testing.T) {
		status, body := do(t, app, "POST", "/api/login", map[string]any{
			"email": "sky.kim@example.com", "password": "nope",
		})
		assert.Equal(t, fiber.StatusUnauthorized, status)
		assert.Equal(t, services.ErrInvalidCredentials.Error(), errorOf(t, body))
	})
}

func TestLoginPrimaryFailure(t *testing.T) {
	s, err := store.LoadSample()
	require.NoError(t, err)
	app := newApp(t, &config.Config{}, offlineStores(), s)

	status, _ := do(t, app, "POST", "/api/login", map[string]any{
		"email": "sky.kim@example.com", "password": "sky1234",
	})
	assert.Equal(t, fiber.StatusInternalServerError, status)
}

func TestListsFallBackWhenPrimaryIsDown(t *testing.T) {
	s, err := store.LoadSample()
	require.NoError(t, err)
	app := newApp(t, &config.Config{}, offlineStores(), s)

	status, body := do(t, app, "GET", "/api/programs", nil)
	require.Equal(t, fiber.StatusOK, status)
	var programs []models.Program
	require.NoError(t, json.Unmarshal(body, &programs))
	assert.Len(t, programs, 7)

	status, _ = do(t, app, "GET", "/api/categories", nil)
	assert.Equal(t, fiber.StatusOK, status)

	// the donor list reports the outage instead of serving sample donors
	status, _ = do(t, app, "GET", "/api/donors", nil)
	assert.Equal(t, fiber.StatusInternalServerError, status)
}

func TestListPrograms(t *testing.T) {
	app := newApp(t, &config.Config{}, memoryStores(t), nil)

	status, body := do(t, app, "GET", "/api/programs?status=running&sort=deadline", nil)
	require.Equal(t, fiber.StatusOK, status)
	var programs []models.Program
	require.NoError(t, json.Unmarshal(body, &programs))
	require.NotEmpty(t, programs)
	for _, p := range programs {
		assert.Equal(t, "running", p.Status, p.ProgramID)
	}
}

func TestCompaniesNestPrograms(t *testing.T) {
	app := newApp(t, &config.Config{}, memoryStores(t), nil)

	status, body := do(t, app, "GET", "/api/companies?keyword="+url("한빛"), nil)
	require.Equal(t, fiber.StatusOK, status)

	var companies []models.Company
	require.NoError(t, json.Unmarshal(body, &companies))
	require.Len(t, companies, 1)
	assert.Equal(t, "C1", companies[0].CompanyID)

	var ids []string
	for _, p := range companies[0].Programs {
		ids = append(ids, p.ProgramID)
	}
	assert.Equal(t, []string{"P3", "P1"}, ids)
}

func TestCompanyWrites(t *testing.T) {
	app := newApp(t, &config.Config{}, memoryStores(t), nil)

	status, body := do(t, app, "POST", "/api/companies", map[string]any{"company_name": "새 재단"})
	require.Equal(t, fiber.StatusCreated, status, string(body))
	assert.Contains(t, string(body), `"company_id":"C4"`)
	assert.Contains(t, string(body), `"programs":[]`)

	status, _ = do(t, app, "DELETE", "/api/companies/C1", nil)
	assert.Equal(t, fiber.StatusConflict, status)

	status, _ = do(t, app, "DELETE", "/api/companies/C4", nil)
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = do(t, app, "DELETE", "/api/companies/C4", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestCategoryWrites(t *testing.T) {
	app := newApp(t, &config.Config{}, memoryStores(t), nil)

	status, body := do(t, app, "POST", "/api/categories", `{"category_id":7,"category_name":"재난"}`)
	require.Equal(t, fiber.StatusCreated, status, string(body))
	assert.Contains(t, string(body), `"category_id":"7"`)

	status, _ = do(t, app, "POST", "/api/categories", `{"category_id":"7","category_name":"중복"}`)
	assert.Equal(t, fiber.StatusConflict, status)

	status, body = do(t, app, "POST", "/api/categories", `{"category_id":"8"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "category_name 필수", errorOf(t, body))

	status, _ = do(t, app, "DELETE", "/api/categories/7", nil)
	assert.Equal(t, fiber.StatusNoContent, status)
	status, _ = do(t, app, "DELETE", "/api/categories/7", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestProgramStatusAndDelete(t *testing.T) {
	app := newApp(t, &config.Config{}, memoryStores(t), nil)

	t.Run("unknown program", func(t *testing.T) {
		status, _ := do(t, app, "GET", "/api/programs/nope", nil)
		assert.Equal(t, fiber.StatusNotFound, status)
		status, _ = do(t, app, "PATCH", "/api/programs/nope/status", map[string]any{"status": "approved"})
		assert.Equal(t, fiber.StatusNotFound, status)
		status, _ = do(t, app, "DELETE", "/api/programs/nope", nil)
		assert.Equal(t, fiber.StatusNotFound, status)
	})

	t.Run("missing id", func(t *testing.T) {
		status, body := do(t, app, "DELETE", "/api/programs", nil)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, services.ErrMissingID.Error(), errorOf(t, body))
	})

	t.Run("invalid status", func(t *testing.T) {
		status, _ := do(t, app, "PATCH", "/api/programs/P1/status", map[string]any{"status": "bogus"})
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("delete running program is refused", func(t *testing.T) {
		status, _ := do(t, app, "DELETE", "/api/programs/P2", nil)
		assert.Equal(t, fiber.StatusConflict, status)

		status, body := do(t, app, "GET", "/api/programs/P2", nil)
		require.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, string(body), `"status":"running"`)
	})

	t.Run("approve then refuse a second approval", func(t *testing.T) {
		status, body := do(t, app, "PATCH", "/api/programs/P1/status", map[string]any{"status": "approved"})
		require.Equal(t, fiber.StatusOK, status, string(body))
		assert.Contains(t, string(body), `"status":"running"`)

		status, _ = do(t, app, "PATCH", "/api/programs/P1/status", map[string]any{"status": "approved"})
		assert.Equal(t, fiber.StatusConflict, status)
	})

	t.Run("delete planned program", func(t *testing.T) {
		status, _ := do(t, app, "DELETE", "/api/programs/101", nil)
		assert.Equal(t, fiber.StatusNoContent, status)
		status, _ = do(t, app, "GET", "/api/programs/101", nil)
		assert.Equal(t, fiber.StatusNotFound, status)
	})
}

func TestAdminGuard(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiry:     time.Hour,
		AdminEmail:    "admin@example.com",
		AdminPassword: "secret",
	}
	app := newApp(t, cfg, memoryStores(t), nil)

	status, _ := do(t, app, "GET", "/api/donors", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	// reads and signup stay public
	status, _ = do(t, app, "GET", "/api/programs", nil)
	assert.Equal(t, fiber.StatusOK, status)

	status, body := do(t, app, "POST", "/api/login", map[string]any{"email": "admin@example.com", "password": "secret"})
	require.Equal(t, fiber.StatusOK, status)
	var login struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(body, &login))
	require.NotEmpty(t, login.AccessToken)

	req := httptest.NewRequest("GET", "/api/donors", nil)
	req.Header.Set("Authorization", "Bearer "+login.AccessToken)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func url(s string) string {
	return neturl.QueryEscape(s)
}
