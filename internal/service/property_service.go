package service

import (
	"context"
	"fmt"

	"github.com/pablotanner/RocketRealtor/internal/domain"
	"github.com/pablotanner/RocketRealtor/internal/events"
	"github.com/pablotanner/RocketRealtor/internal/presenter"
	"github.com/pablotanner/RocketRealtor/internal/repository"
	"github.com/pablotanner/RocketRealtor/internal/store"

	"go.uber.org/zap"
)

// PropertyService properties with their units and images, plus the portfolio summary
type PropertyService interface {
	ListProperties(ctx context.Context, req ListPropertiesRequest) (*ListPropertiesResponse, error)
	GetProperty(ctx context.Context, req GetPropertyRequest) (*GetPropertyResponse, error)
	CreateProperty(ctx context.Context, req CreatePropertyRequest) (*CreatePropertyResponse, error)
	DeleteProperty(ctx context.Context, req DeletePropertyRequest) (*DeletePropertyResponse, error)
	PortfolioSummary(ctx context.Context, req PortfolioSummaryRequest) (*PortfolioSummaryResponse, error)
}

type propertyService struct {
	propertiesRepo repository.PropertiesRepository
	support        Support
	logger         *zap.Logger
}

func NewPropertyService(propertiesRepo repository.PropertiesRepository, support Support) PropertyService {
	support = support.withDefaults()
	return &propertyService{
		propertiesRepo: propertiesRepo,
		support:        support,
		logger:         support.Logger,
	}
}

type ListPropertiesRequest struct {
	RealtorID uint
}

type ListPropertiesResponse struct {
	Items []*domain.Property `json:"items"`
}

type GetPropertyRequest struct {
	RealtorID  uint
	PropertyID uint
}

type GetPropertyResponse struct {
	Property *domain.Property `json:"property"`
}

type CreatePropertyRequest struct {
	RealtorID uint
	Property  domain.PropertyInput
}

type CreatePropertyResponse struct {
	Property *domain.Property `json:"property"`
}

type DeletePropertyRequest struct {
	RealtorID  uint
	PropertyID uint
}

type DeletePropertyResponse struct {
	Success bool `json:"success"`
}

type PortfolioSummaryRequest struct {
	RealtorID uint
}

type PortfolioSummaryResponse struct {
	Portfolio presenter.Portfolio `json:"portfolio"`
}

// every property mutation touches all cached collections
var propertyEntities = []store.Entity{store.EntityProperties, store.EntityUnits, store.EntityLeases, store.EntityTenants}

func (s *propertyService) listProperties(ctx context.Context, realtorID uint) ([]*domain.Property, error) {
	return cached(ctx, s.support, store.EntityProperties, realtorID, "", func() ([]*domain.Property, error) {
		return s.propertiesRepo.ListProperties(ctx, realtorID)
	})
}

func (s *propertyService) ListProperties(ctx context.Context, req ListPropertiesRequest) (*ListPropertiesResponse, error) {
	items, err := s.listProperties(ctx, req.RealtorID)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return &ListPropertiesResponse{Items: items}, nil
}

func (s *propertyService) GetProperty(ctx context.Context, req GetPropertyRequest) (*GetPropertyResponse, error) {
	p, err := s.propertiesRepo.GetProperty(ctx, req.RealtorID, req.PropertyID)
	if err != nil {
		return nil, err
	}
	return &GetPropertyResponse{Property: p}, nil
}

func (s *propertyService) CreateProperty(ctx context.Context, req CreatePropertyRequest) (*CreatePropertyResponse, error) {
	if err := req.Property.Validate(); err != nil {
		return nil, err
	}

	p := req.Property.ToModel(req.RealtorID)
	if err := s.propertiesRepo.CreateProperty(ctx, p); err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}

	s.logger.Info("property created", zap.Uint("property_id", p.ID), zap.Int("units", len(p.Units)))
	s.support.changed(ctx, events.New(events.PropertyCreated, req.RealtorID, p.ID, nil), propertyEntities...)
	return &CreatePropertyResponse{Property: p}, nil
}

func (s *propertyService) DeleteProperty(ctx context.Context, req DeletePropertyRequest) (*DeletePropertyResponse, error) {
	if err := s.propertiesRepo.DeleteProperty(ctx, req.RealtorID, req.PropertyID); err != nil {
		return nil, err
	}

	s.logger.Info("property deleted", zap.Uint("property_id", req.PropertyID), zap.Uint("realtor_id", req.RealtorID))
	s.support.changed(ctx, events.New(events.PropertyDeleted, req.RealtorID, req.PropertyID, nil), propertyEntities...)
	return &DeletePropertyResponse{Success: true}, nil
}

func (s *propertyService) PortfolioSummary(ctx context.Context, req PortfolioSummaryRequest) (*PortfolioSummaryResponse, error) {
	props, err := s.listProperties(ctx, req.RealtorID)
	if err != nil {
		return nil, fmt.Errorf("portfolio summary: %w", err)
	}
	return &PortfolioSummaryResponse{Portfolio: presenter.SummarizePortfolio(props)}, nil
}
