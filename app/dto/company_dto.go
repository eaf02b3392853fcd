package dto

// CreateCompanyRequest represents a request to register a new company
type CreateCompanyRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=50" example:"corporex labs"`
	ImpactLevel  string `json:"impactLevel" validate:"required,oneof=Low Medium High" example:"High"`
	FoundingYear int    `json:"foundingYear" validate:"required,min=1800,max=2100" example:"2010"`
	Category     string `json:"category" validate:"required,min=1,max=255" example:"Technology"`
	Description  string `json:"description" validate:"required,max=1024" example:"Industrial automation"`
}

// UpdateCompanyRequest represents a partial company update. Only non-nil
// fields are applied; absent fields keep their stored values.
type UpdateCompanyRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=50"`
	ImpactLevel  *string `json:"impactLevel,omitempty" validate:"omitempty,oneof=Low Medium High"`
	FoundingYear *int    `json:"foundingYear,omitempty" validate:"omitempty,min=1800,max=2100"`
	Category     *string `json:"category,omitempty" validate:"omitempty,min=1,max=255"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=1024"`
}

// ListCompaniesRequest represents the filter, sort, and pagination query of
// the listing endpoint. YearsActive selects companies whose age matches
// exactly; SortMode is one of none, by-years-ascending, name-ascending,
// name-descending.
type ListCompaniesRequest struct {
	Category    string `query:"category" validate:"omitempty,max=255"`
	ImpactLevel string `query:"impactLevel" validate:"omitempty,oneof=Low Medium High"`
	YearsActive *int   `query:"yearsActive" validate:"omitempty,min=0,max=300"`
	SortMode    string `query:"sortMode" validate:"omitempty,oneof=none by-years-ascending name-ascending name-descending"`
	Limit       int    `query:"limite" validate:"omitempty,min=1,max=100"`
	Offset      int    `query:"desde" validate:"omitempty,min=0"`
}

// CompanyDTO represents company information in API responses. YearsActive is
// derived from the founding year at read time and is never stored.
type CompanyDTO struct {
	ID           uint   `json:"id"`
	UUID         string `json:"uuid"`
	Name         string `json:"name"`
	ImpactLevel  string `json:"impactLevel"`
	FoundingYear int    `json:"foundingYear"`
	YearsActive  int    `json:"yearsActive"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// CompanyListResponse represents a paginated company listing. Total counts
// every row matching the filter, ignoring pagination. DownloadURL points at
// the spreadsheet report when one was produced for this listing.
type CompanyListResponse struct {
	Total       int64         `json:"total"`
	Companies   []*CompanyDTO `json:"companies"`
	DownloadURL string        `json:"downloadUrl,omitempty"`
}
