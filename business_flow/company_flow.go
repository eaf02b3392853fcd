// Package businessflow contains the core business logic flows for authentication and company management
package businessflow

import (
	"context"
	"strings"
	"time"

	"github.com/JohanMiguel/Gestiones-de-Corporex/app/dto"
	"github.com/JohanMiguel/Gestiones-de-Corporex/app/services"
	"github.com/JohanMiguel/Gestiones-de-Corporex/models"
	"github.com/JohanMiguel/Gestiones-de-Corporex/repository"
	"github.com/JohanMiguel/Gestiones-de-Corporex/utils"
	"github.com/google/uuid"
)

const (
	defaultListLimit  = 10
	defaultListOffset = 0
)

// CompanyFlow handles company registration, listing, and update operations
type CompanyFlow interface {
	Create(ctx context.Context, request *dto.CreateCompanyRequest, metadata *ClientMetadata) (*dto.CompanyDTO, error)
	ListAll(ctx context.Context, limit, offset int, metadata *ClientMetadata) (*dto.CompanyListResponse, error)
	ListFiltered(ctx context.Context, request *dto.ListCompaniesRequest, metadata *ClientMetadata) (*dto.CompanyListResponse, error)
	Update(ctx context.Context, companyID uint, request *dto.UpdateCompanyRequest, metadata *ClientMetadata) (*dto.CompanyDTO, error)
}

// CompanyFlowImpl implements the company business flow
type CompanyFlowImpl struct {
	companyRepo  repository.CompanyRepository
	excelService services.ExcelService
}

// NewCompanyFlow creates a new company flow instance
func NewCompanyFlow(companyRepo repository.CompanyRepository, excelService services.ExcelService) CompanyFlow {
	return &CompanyFlowImpl{
		companyRepo:  companyRepo,
		excelService: excelService,
	}
}

// Create registers a new company. Names are stored lowercase so two spellings
// differing only in case collide.
func (cf *CompanyFlowImpl) Create(ctx context.Context, request *dto.CreateCompanyRequest, metadata *ClientMetadata) (*dto.CompanyDTO, error) {
	if !models.ValidImpactLevel(request.ImpactLevel) {
		return nil, NewBusinessError("INVALID_IMPACT_LEVEL", "Impact level must be Low, Medium, or High", ErrInvalidImpactLevel)
	}

	name := normalizeName(request.Name)

	existing, err := cf.companyRepo.ByName(ctx, name)
	if err != nil {
		return nil, NewBusinessError("COMPANY_LOOKUP_FAILED", "Failed to check company name", err)
	}
	if existing != nil {
		return nil, NewBusinessError("COMPANY_ALREADY_EXISTS", "A company with this name already exists", ErrCompanyAlreadyExists)
	}

	company := &models.Company{
		UUID:         uuid.New(),
		Name:         name,
		ImpactLevel:  request.ImpactLevel,
		FoundingYear: request.FoundingYear,
		Category:     request.Category,
		Description:  request.Description,
		CreatedAt:    utils.UTCNow(),
		UpdatedAt:    utils.UTCNow(),
	}

	if err := cf.companyRepo.Save(ctx, company); err != nil {
		return nil, NewBusinessError("COMPANY_CREATE_FAILED", "Failed to register company", err)
	}

	return ToCompanyDTO(company), nil
}

// ListAll returns a page of companies in insertion order and writes the full
// listing to a spreadsheet report as a side effect. An empty registry is an
// error, not an empty page.
func (cf *CompanyFlowImpl) ListAll(ctx context.Context, limit, offset int, metadata *ClientMetadata) (*dto.CompanyListResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = defaultListOffset
	}

	filter := models.CompanyFilter{}

	total, err := cf.companyRepo.Count(ctx, filter)
	if err != nil {
		return nil, NewBusinessError("COMPANY_LIST_FAILED", "Failed to list companies", err)
	}
	if total == 0 {
		return nil, NewBusinessError("NO_COMPANIES_FOUND", "No companies registered", ErrNoCompaniesFound)
	}

	page, err := cf.companyRepo.ByFilter(ctx, filter, "", limit, offset)
	if err != nil {
		return nil, NewBusinessError("COMPANY_LIST_FAILED", "Failed to list companies", err)
	}

	// The report always covers the whole registry, not just the page
	all, err := cf.companyRepo.ByFilter(ctx, filter, "", 0, 0)
	if err != nil {
		return nil, NewBusinessError("COMPANY_LIST_FAILED", "Failed to list companies", err)
	}

	downloadURL, err := cf.excelService.ExportCompanies(all)
	if err != nil {
		return nil, NewBusinessError("EXPORT_FAILED", "Failed to export company report", ErrExportFailed)
	}

	return &dto.CompanyListResponse{
		Total:       total,
		Companies:   ToCompanyDTOs(page),
		DownloadURL: downloadURL,
	}, nil
}

// ListFiltered returns a page of companies matching the requested filters and
// sort mode. A years-active filter selects companies founded exactly that
// many years before the current year. Unlike ListAll, an empty match is a
// normal result with a zero total, not an error.
func (cf *CompanyFlowImpl) ListFiltered(ctx context.Context, request *dto.ListCompaniesRequest, metadata *ClientMetadata) (*dto.CompanyListResponse, error) {
	limit := request.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := request.Offset
	if offset < 0 {
		offset = defaultListOffset
	}

	filter := models.CompanyFilter{}
	if category := strings.TrimSpace(request.Category); category != "" {
		filter.Category = utils.ToPtr(category)
	}
	if request.ImpactLevel != "" {
		filter.ImpactLevel = utils.ToPtr(request.ImpactLevel)
	}
	if request.YearsActive != nil {
		filter.FoundingYear = utils.ToPtr(utils.CurrentYear() - *request.YearsActive)
	}

	orderBy := repository.SortOrderFor(request.SortMode)

	total, err := cf.companyRepo.Count(ctx, filter)
	if err != nil {
		return nil, NewBusinessError("COMPANY_LIST_FAILED", "Failed to list companies", err)
	}

	page, err := cf.companyRepo.ByFilter(ctx, filter, orderBy, limit, offset)
	if err != nil {
		return nil, NewBusinessError("COMPANY_LIST_FAILED", "Failed to list companies", err)
	}

	return &dto.CompanyListResponse{
		Total:     total,
		Companies: ToCompanyDTOs(page),
	}, nil
}

// Update applies a partial update to an existing company. A renamed company
// must not collide with another registered name.
func (cf *CompanyFlowImpl) Update(ctx context.Context, companyID uint, request *dto.UpdateCompanyRequest, metadata *ClientMetadata) (*dto.CompanyDTO, error) {
	updates := map[string]any{}

	if request.Name != nil {
		name := normalizeName(*request.Name)
		existing, err := cf.companyRepo.ByName(ctx, name)
		if err != nil {
			return nil, NewBusinessError("COMPANY_LOOKUP_FAILED", "Failed to check company name", err)
		}
		if existing != nil && existing.ID != companyID {
			return nil, NewBusinessError("COMPANY_ALREADY_EXISTS", "A company with this name already exists", ErrCompanyAlreadyExists)
		}
		updates["name"] = name
	}
	if request.ImpactLevel != nil {
		if !models.ValidImpactLevel(*request.ImpactLevel) {
			return nil, NewBusinessError("INVALID_IMPACT_LEVEL", "Impact level must be Low, Medium, or High", ErrInvalidImpactLevel)
		}
		updates["impact_level"] = *request.ImpactLevel
	}
	if request.FoundingYear != nil {
		updates["founding_year"] = *request.FoundingYear
	}
	if request.Category != nil {
		updates["category"] = *request.Category
	}
	if request.Description != nil {
		updates["description"] = *request.Description
	}

	if len(updates) == 0 {
		company, err := cf.companyRepo.ByID(ctx, companyID)
		if err != nil {
			return nil, NewBusinessError("COMPANY_LOOKUP_FAILED", "Failed to load company", err)
		}
		if company == nil {
			return nil, NewBusinessError("COMPANY_NOT_FOUND", "Company not found", ErrCompanyNotFound)
		}
		return ToCompanyDTO(company), nil
	}

	updates["updated_at"] = utils.UTCNow()

	company, err := cf.companyRepo.UpdateByID(ctx, companyID, updates)
	if err != nil {
		return nil, NewBusinessError("COMPANY_UPDATE_FAILED", "Failed to update company", err)
	}
	if company == nil {
		return nil, NewBusinessError("COMPANY_NOT_FOUND", "Company not found", ErrCompanyNotFound)
	}

	return ToCompanyDTO(company), nil
}

// normalizeName canonicalizes a company name for storage and comparison
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ToCompanyDTO converts a company model to its API representation
func ToCompanyDTO(company *models.Company) *dto.CompanyDTO {
	return &dto.CompanyDTO{
		ID:           company.ID,
		UUID:         company.UUID.String(),
		Name:         company.Name,
		ImpactLevel:  company.ImpactLevel,
		FoundingYear: company.FoundingYear,
		YearsActive:  utils.CurrentYear() - company.FoundingYear,
		Category:     company.Category,
		Description:  company.Description,
		CreatedAt:    company.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    company.UpdatedAt.Format(time.RFC3339),
	}
}

// ToCompanyDTOs converts a slice of company models
func ToCompanyDTOs(companies []*models.Company) []*dto.CompanyDTO {
	dtos := make([]*dto.CompanyDTO, 0, len(companies))
	for _, company := range companies {
		dtos = append(dtos, ToCompanyDTO(company))
	}
	return dtos
}
