package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JohanMiguel/Gestiones-de-Corporex/app/dto"
	businessflow "github.com/JohanMiguel/Gestiones-de-Corporex/business_flow"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCompanyFlow records Create calls and returns a canned company
type stubCompanyFlow struct {
	created []*dto.CreateCompanyRequest
}

func (f *stubCompanyFlow) Create(ctx context.Context, request *dto.CreateCompanyRequest, metadata *businessflow.ClientMetadata) (*dto.CompanyDTO, error) {
	f.created = append(f.created, request)
	return &dto.CompanyDTO{ID: 1, Name: request.Name}, nil
}

func (f *stubCompanyFlow) ListAll(ctx context.Context, limit, offset int, metadata *businessflow.ClientMetadata) (*dto.CompanyListResponse, error) {
	return &dto.CompanyListResponse{Companies: []*dto.CompanyDTO{}}, nil
}

func (f *stubCompanyFlow) ListFiltered(ctx context.Context, request *dto.ListCompaniesRequest, metadata *businessflow.ClientMetadata) (*dto.CompanyListResponse, error) {
	return &dto.CompanyListResponse{Companies: []*dto.CompanyDTO{}}, nil
}

func (f *stubCompanyFlow) Update(ctx context.Context, companyID uint, request *dto.UpdateCompanyRequest, metadata *businessflow.ClientMetadata) (*dto.CompanyDTO, error) {
	return &dto.CompanyDTO{ID: companyID}, nil
}

func newCreateTestApp(t *testing.T) (*fiber.App, *stubCompanyFlow) {
	t.Helper()

	flow := &stubCompanyFlow{}
	handler := NewCompanyHandler(flow)

	app := fiber.New()
	app.Post("/corporex/v1/companies/addCategory", handler.Create)
	return app, flow
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, dto.APIResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var parsed dto.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func validationMessages(t *testing.T, body dto.APIResponse) []string {
	t.Helper()

	detail, ok := body.Error.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", detail["code"])

	rawMessages, ok := detail["details"].([]any)
	require.True(t, ok)

	messages := make([]string, 0, len(rawMessages))
	for _, raw := range rawMessages {
		message, ok := raw.(string)
		require.True(t, ok)
		messages = append(messages, message)
	}
	return messages
}

func TestCompanyCreate_DescriptionIsRequired(t *testing.T) {
	app, flow := newCreateTestApp(t)

	resp, body := postJSON(t, app, "/corporex/v1/companies/addCategory", `{
		"name": "corporex labs",
		"impactLevel": "High",
		"foundingYear": 2010,
		"category": "Technology"
	}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, validationMessages(t, body), "Description is required")
	assert.Empty(t, flow.created)
}

func TestCompanyCreate_CollectsEveryViolation(t *testing.T) {
	app, flow := newCreateTestApp(t)

	resp, body := postJSON(t, app, "/corporex/v1/companies/addCategory", `{
		"impactLevel": "Extreme",
		"foundingYear": 2010
	}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	messages := validationMessages(t, body)
	assert.Contains(t, messages, "Name is required")
	assert.Contains(t, messages, "ImpactLevel must be one of: Low Medium High")
	assert.Contains(t, messages, "Category is required")
	assert.Contains(t, messages, "Description is required")
	assert.Empty(t, flow.created)
}

func TestCompanyCreate_CompleteRequestPasses(t *testing.T) {
	app, flow := newCreateTestApp(t)

	resp, body := postJSON(t, app, "/corporex/v1/companies/addCategory", `{
		"name": "corporex labs",
		"impactLevel": "High",
		"foundingYear": 2010,
		"category": "Technology",
		"description": "Industrial automation"
	}`)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, body.Success)
	require.Len(t, flow.created, 1)
	assert.Equal(t, "Industrial automation", flow.created[0].Description)
}
