package catalog

import (
	"context"

	"jobmate/job-service/internal/apperr"
	"jobmate/job-service/internal/auth"
	"jobmate/job-service/internal/model"
)

// Companies is the company store. *store.CompanyStore satisfies it.
type Companies interface {
	Create(ctx context.Context, in model.Company) (*model.Company, error)
	FindByID(ctx context.Context, id int64) (*model.Company, error)
	FindByName(ctx context.Context, name string) (*model.Company, error)
	Search(ctx context.Context, name string) ([]model.Company, error)
	UpdateByID(ctx context.Context, id int64, in model.Company) (*model.Company, error)
	Delete(ctx context.Context, id int64) error
}

// CompanyService handles company CRUD. Get is unauthenticated: company
// profiles are public. Create and Search are member operations, Update
// and Delete require the admin policy.
type CompanyService struct {
	companies Companies
	member    auth.Authorizer
	admin     auth.Authorizer
}

func NewCompanyService(companies Companies, member, admin auth.Authorizer) *CompanyService {
	return &CompanyService{companies: companies, member: member, admin: admin}
}

func (s *CompanyService) Create(ctx context.Context, in model.Company, userID int64, credential string) (*model.Company, error) {
	if err := s.member.Authorize(ctx, userID, credential); err != nil {
		return nil, err
	}
	existing, err := s.companies.FindByName(ctx, in.Name)
	if err != nil {
		return nil, fail("Error creating company", err)
	}
	if existing != nil {
		return nil, apperr.E(apperr.BadRequest, "Company already created", nil)
	}
	created, err := s.companies.Create(ctx, in)
	if err != nil {
		return nil, fail("Error creating company", err)
	}
	return created, nil
}

func (s *CompanyService) Get(ctx context.Context, id int64) (*model.Company, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, fail("Error fetching company", err)
	}
	if company == nil {
		return nil, apperr.E(apperr.NotFound, "Company not found", nil)
	}
	return company, nil
}

func (s *CompanyService) Search(ctx context.Context, name string, userID int64, credential string) ([]model.Company, error) {
	if err := s.member.Authorize(ctx, userID, credential); err != nil {
		return nil, err
	}
	companies, err := s.companies.Search(ctx, name)
	if err != nil {
		return nil, fail("Error fetching companies", err)
	}
	return companies, nil
}

func (s *CompanyService) Update(ctx context.Context, id int64, in model.Company, userID int64, credential string) (*model.Company, error) {
	if err := s.admin.Authorize(ctx, userID, credential); err != nil {
		return nil, err
	}
	existing, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, fail("Error updating company", err)
	}
	if existing == nil {
		return nil, apperr.E(apperr.BadRequest, "Company does not exist", nil)
	}
	updated, err := s.companies.UpdateByID(ctx, id, in)
	if err != nil {
		return nil, fail("Error updating company", err)
	}
	return updated, nil
}

func (s *CompanyService) Delete(ctx context.Context, id int64, userID int64, credential string) error {
	if err := s.admin.Authorize(ctx, userID, credential); err != nil {
		return err
	}
	existing, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return fail("Error deleting company", err)
	}
	if existing == nil {
		return apperr.E(apperr.BadRequest, "Company does not exist", nil)
	}
	if err := s.companies.Delete(ctx, id); err != nil {
		return fail("Error deleting company", err)
	}
	return nil
}

// ─── Industries ─────────────────────────────────────────────────────────────

// Industries is the industry store. *store.IndustryStore satisfies it.
type Industries interface {
	Search(ctx context.Context, name string) ([]model.Industry, error)
}

// IndustryService exposes industry search to members.
type IndustryService struct {
	industries Industries
	member     auth.Authorizer
}

func NewIndustryService(industries Industries, member auth.Authorizer) *IndustryService {
	return &IndustryService{industries: industries, member: member}
}

func (s *IndustryService) Search(ctx context.Context, name string, userID int64, credential string) ([]model.Industry, error) {
	if err := s.member.Authorize(ctx, userID, credential); err != nil {
		return nil, err
	}
	industries, err := s.industries.Search(ctx, name)
	if err != nil {
		return nil, fail("Error fetching industries", err)
	}
	return industries, nil
}

// ─── Company sizes ──────────────────────────────────────────────────────────

// CompanySizes is the company size store. *store.CompanySizeStore satisfies it.
type CompanySizes interface {
	FindAll(ctx context.Context) ([]model.CompanySize, error)
}

// CompanySizeService exposes the company size listing to members.
type CompanySizeService struct {
	sizes  CompanySizes
	member auth.Authorizer
}

func NewCompanySizeService(sizes CompanySizes, member auth.Authorizer) *CompanySizeService {
	return &CompanySizeService{sizes: sizes, member: member}
}

func (s *CompanySizeService) List(ctx context.Context, userID int64, credential string) ([]model.CompanySize, error) {
	if err := s.member.Authorize(ctx, userID, credential); err != nil {
		return nil, err
	}
	sizes, err := s.sizes.FindAll(ctx)
	if err != nil {
		return nil, fail("Error fetching company sizes", err)
	}
	return sizes, nil
}
