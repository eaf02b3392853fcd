// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/JohanMiguel/Gestiones-de-Corporex/app/dto"
	businessflow "github.com/JohanMiguel/Gestiones-de-Corporex/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// CompanyHandlerInterface defines the contract for company handlers
type CompanyHandlerInterface interface {
	Create(c fiber.Ctx) error
	List(c fiber.Ctx) error
	ListFiltered(c fiber.Ctx) error
	Update(c fiber.Ctx) error
}

// CompanyHandler handles company-related HTTP requests
type CompanyHandler struct {
	companyFlow businessflow.CompanyFlow
	validator   *validator.Validate
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyFlow businessflow.CompanyFlow) *CompanyHandler {
	return &CompanyHandler{
		companyFlow: companyFlow,
		validator:   validator.New(),
	}
}

func (h *CompanyHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *CompanyHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Create handles company registration
// @Summary Register Company
// @Description Register a new company in the registry
// @Tags Companies
// @Accept json
// @Produce json
// @Param request body dto.CreateCompanyRequest true "Company data"
// @Success 201 {object} dto.APIResponse{data=dto.CompanyDTO} "Company registered"
// @Failure 400 {object} dto.APIResponse "Validation error or duplicate name"
// @Failure 401 {object} dto.APIResponse "Missing or invalid token"
// @Failure 403 {object} dto.APIResponse "Insufficient role"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /corporex/v1/companies/addCategory [post]
func (h *CompanyHandler) Create(c fiber.Ctx) error {
	var req dto.CreateCompanyRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	// Validate request, collecting every violation
	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"), c.Get("X-Request-ID"))

	result, err := h.companyFlow.Create(h.createRequestContext(c, "/corporex/v1/companies/addCategory"), &req, metadata)
	if err != nil {
		if businessflow.IsCompanyAlreadyExistsError(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "A company with this name already exists", "COMPANY_ALREADY_EXISTS", nil)
		}
		if businessflow.IsInvalidImpactLevelError(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Impact level must be Low, Medium, or High", "VALIDATION_ERROR", nil)
		}

		log.Println("Company registration failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to register company", "COMPANY_CREATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, "Company registered successfully", result)
}

// List handles the full company listing with pagination and report export
// @Summary List Companies
// @Description List registered companies and write the full registry to a spreadsheet report
// @Tags Companies
// @Produce json
// @Param limite query int false "Page size" default(10)
// @Param desde query int false "Page offset" default(0)
// @Success 200 {object} dto.APIResponse{data=dto.CompanyListResponse} "Companies listed"
// @Failure 404 {object} dto.APIResponse "No companies registered"
// @Failure 500 {object} dto.APIResponse "Report export failed"
// @Router /corporex/v1/companies [get]
func (h *CompanyHandler) List(c fiber.Ctx) error {
	limit := queryInt(c, "limite", 10)
	offset := queryInt(c, "desde", 0)

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"), c.Get("X-Request-ID"))

	result, err := h.companyFlow.ListAll(h.createRequestContext(c, "/corporex/v1/companies"), limit, offset, metadata)
	if err != nil {
		if businessflow.IsNoCompaniesFoundError(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "No companies registered", "NO_COMPANIES_FOUND", nil)
		}
		if businessflow.IsExportFailedError(err) {
			log.Println("Company report export failed", err)
			return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export company report", "EXPORT_FAILED", nil)
		}

		log.Println("Company listing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list companies", "COMPANY_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Companies listed successfully", result)
}

// ListFiltered handles the filtered and sorted company listing
// @Summary Filter Companies
// @Description List companies matching category, impact level, or years-active filters
// @Tags Companies
// @Produce json
// @Param category query string false "Category, matched case-insensitively"
// @Param impactLevel query string false "Impact level" Enums(Low, Medium, High)
// @Param yearsActive query int false "Exact years since founding"
// @Param sortMode query string false "Sort mode" Enums(none, by-years-ascending, name-ascending, name-descending)
// @Param limite query int false "Page size" default(10)
// @Param desde query int false "Page offset" default(0)
// @Success 200 {object} dto.APIResponse{data=dto.CompanyListResponse} "Companies listed, possibly an empty page"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /corporex/v1/companies/filtros [get]
func (h *CompanyHandler) ListFiltered(c fiber.Ctx) error {
	var req dto.ListCompaniesRequest
	if err := c.Bind().Query(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"), c.Get("X-Request-ID"))

	result, err := h.companyFlow.ListFiltered(h.createRequestContext(c, "/corporex/v1/companies/filtros"), &req, metadata)
	if err != nil {
		log.Println("Filtered company listing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list companies", "COMPANY_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Companies listed successfully", result)
}

// Update handles partial company updates
// @Summary Edit Company
// @Description Apply a partial update to a registered company
// @Tags Companies
// @Accept json
// @Produce json
// @Param companyId path int true "Company ID"
// @Param request body dto.UpdateCompanyRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.CompanyDTO} "Company updated"
// @Failure 400 {object} dto.APIResponse "Validation error or duplicate name"
// @Failure 401 {object} dto.APIResponse "Missing or invalid token"
// @Failure 403 {object} dto.APIResponse "Insufficient role"
// @Failure 404 {object} dto.APIResponse "Company not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /corporex/v1/companies/editar/{companyId} [put]
func (h *CompanyHandler) Update(c fiber.Ctx) error {
	companyID, err := strconv.ParseUint(c.Params("companyId"), 10, 32)
	if err != nil || companyID == 0 {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid company id", "INVALID_REQUEST", nil)
	}

	var req dto.UpdateCompanyRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"), c.Get("X-Request-ID"))

	result, err := h.companyFlow.Update(h.createRequestContext(c, "/corporex/v1/companies/editar"), uint(companyID), &req, metadata)
	if err != nil {
		if businessflow.IsCompanyNotFoundError(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Company not found", "COMPANY_NOT_FOUND", nil)
		}
		if businessflow.IsCompanyAlreadyExistsError(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "A company with this name already exists", "COMPANY_ALREADY_EXISTS", nil)
		}
		if businessflow.IsInvalidImpactLevelError(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Impact level must be Low, Medium, or High", "VALIDATION_ERROR", nil)
		}

		log.Println("Company update failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update company", "COMPANY_UPDATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Company updated successfully", result)
}

// createRequestContext creates a context with request-scoped values for observability and timeout
func (h *CompanyHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	return createRequestContextWithTimeout(c, endpoint, 30*time.Second)
}

// queryInt reads an integer query parameter, falling back on absent or bad values
func queryInt(c fiber.Ctx, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
