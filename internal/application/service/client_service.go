package service

import (
	"context"

	"github.com/HarshJ166/invomax-sub000/internal/domain/entity"
	"github.com/HarshJ166/invomax-sub000/internal/domain/repository"
	"github.com/HarshJ166/invomax-sub000/pkg/apperror"
	"github.com/HarshJ166/invomax-sub000/pkg/pagination"
	"github.com/google/uuid"
)

// ClientService handles client CRUD
type ClientService struct {
	clientRepo  repository.ClientRepository
	companyRepo repository.CompanyRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository, companyRepo repository.CompanyRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo, companyRepo: companyRepo}
}

// CreateClientInput represents the input for creating a client
type CreateClientInput struct {
	CompanyID uuid.UUID
	Name      string
	State     string
	GSTIN     string
	Email     string
	Phone     string
	Address   *string
}

// CreateClient persists a client under a company
func (s *ClientService) CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "must not be empty"},
		})
	}

	company, err := s.companyRepo.GetByID(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, apperror.NewNotFoundError("Company")
	}

	client := &entity.Client{
		CompanyID: input.CompanyID,
		Name:      input.Name,
		State:     input.State,
		GSTIN:     input.GSTIN,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// UpdateClientInput represents the input for updating a client
type UpdateClientInput struct {
	ID      uuid.UUID
	Name    string
	State   string
	GSTIN   string
	Email   string
	Phone   string
	Address *string
}

// UpdateClient updates a client
func (s *ClientService) UpdateClient(ctx context.Context, input *UpdateClientInput) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	client.Name = input.Name
	client.State = input.State
	client.GSTIN = input.GSTIN
	client.Email = input.Email
	client.Phone = input.Phone
	client.Address = input.Address

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient deletes a client
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return apperror.NewNotFoundError("Client")
	}
	return s.clientRepo.Delete(ctx, id)
}

// ListClients lists clients for a company with filtering
func (s *ClientService) ListClients(ctx context.Context, companyID uuid.UUID, params *repository.ClientFilterParams) (*pagination.PaginatedResult[entity.Client], error) {
	clients, total, err := s.clientRepo.List(ctx, companyID, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(clients, pag), nil
}
