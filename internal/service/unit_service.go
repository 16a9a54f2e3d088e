package service

import (
	"context"
	"fmt"

	"github.com/pablotanner/RocketRealtor/internal/domain"
	"github.com/pablotanner/RocketRealtor/internal/events"
	"github.com/pablotanner/RocketRealtor/internal/repository"
	"github.com/pablotanner/RocketRealtor/internal/store"

	"go.uber.org/zap"
)

type UnitService interface {
	ListUnits(ctx context.Context, req ListUnitsRequest) (*ListUnitsResponse, error)
	GetUnit(ctx context.Context, req GetUnitRequest) (*GetUnitResponse, error)
	CreateUnit(ctx context.Context, req CreateUnitRequest) (*CreateUnitResponse, error)
	UpdateUnitStatus(ctx context.Context, req UpdateUnitStatusRequest) (*UpdateUnitStatusResponse, error)
}

type unitService struct {
	unitsRepo      repository.UnitsRepository
	propertiesRepo repository.PropertiesRepository
	support        Support
	logger         *zap.Logger
}

func NewUnitService(unitsRepo repository.UnitsRepository, propertiesRepo repository.PropertiesRepository, support Support) UnitService {
	support = support.withDefaults()
	return &unitService{
		unitsRepo:      unitsRepo,
		propertiesRepo: propertiesRepo,
		support:        support,
		logger:         support.Logger,
	}
}

type ListUnitsRequest struct {
	RealtorID uint
	Filters   repository.UnitFilters
}

type ListUnitsResponse struct {
	Items []*domain.Unit `json:"items"`
}

type GetUnitRequest struct {
	RealtorID uint
	UnitID    uint
}

type GetUnitResponse struct {
	Unit *domain.Unit `json:"unit"`
}

type CreateUnitRequest struct {
	RealtorID  uint
	PropertyID uint
	Unit       domain.UnitInput
}

type CreateUnitResponse struct {
	Unit *domain.Unit `json:"unit"`
}

type UpdateUnitStatusRequest struct {
	RealtorID uint
	UnitID    uint
	Status    domain.ListingStatus
}

type UpdateUnitStatusResponse struct {
	Unit *domain.Unit `json:"unit"`
}

func (s *unitService) ListUnits(ctx context.Context, req ListUnitsRequest) (*ListUnitsResponse, error) {
	variant := "status=" + string(req.Filters.Status)
	if req.Filters.PropertyID != nil {
		variant += fmt.Sprintf(",property=%d", *req.Filters.PropertyID)
	}
	items, err := cached(ctx, s.support, store.EntityUnits, req.RealtorID, variant, func() ([]*domain.Unit, error) {
		return s.unitsRepo.ListUnits(ctx, req.RealtorID, req.Filters)
	})
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	return &ListUnitsResponse{Items: items}, nil
}

func (s *unitService) GetUnit(ctx context.Context, req GetUnitRequest) (*GetUnitResponse, error) {
	unit, err := s.unitsRepo.GetUnit(ctx, req.RealtorID, req.UnitID)
	if err != nil {
		return nil, err
	}
	return &GetUnitResponse{Unit: unit}, nil
}

func (s *unitService) CreateUnit(ctx context.Context, req CreateUnitRequest) (*CreateUnitResponse, error) {
	if err := req.Unit.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.propertiesRepo.GetProperty(ctx, req.RealtorID, req.PropertyID); err != nil {
		return nil, err
	}

	unit := req.Unit.ToModel(req.PropertyID)
	if err := s.unitsRepo.CreateUnit(ctx, unit); err != nil {
		return nil, fmt.Errorf("create unit: %w", err)
	}

	s.support.changed(ctx, events.New(events.UnitCreated, req.RealtorID, unit.ID, map[string]uint{"propertyId": req.PropertyID}),
		store.EntityUnits, store.EntityProperties)
	return &CreateUnitResponse{Unit: unit}, nil
}

func (s *unitService) UpdateUnitStatus(ctx context.Context, req UpdateUnitStatusRequest) (*UpdateUnitStatusResponse, error) {
	if !req.Status.Valid() {
		return nil, domain.ValidationErrors{{Field: "status", Message: "Invalid status"}}
	}
	unit, err := s.unitsRepo.UpdateUnitStatus(ctx, req.RealtorID, req.UnitID, req.Status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("unit status changed",
		zap.Uint("unit_id", unit.ID),
		zap.String("status", string(req.Status)),
	)
	s.support.changed(ctx, events.New(events.UnitStatusChanged, req.RealtorID, unit.ID, map[string]string{"status": string(req.Status)}),
		store.EntityUnits, store.EntityProperties)
	return &UpdateUnitStatusResponse{Unit: unit}, nil
}
