package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stpnv0/AmenityBooker/internal/clock"
	"github.com/stpnv0/AmenityBooker/internal/domain"
	"github.com/stpnv0/AmenityBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AmenityService struct {
	repo     ports.AmenityRepo
	catalog  ports.AmenityCatalog
	validate *validator.Validate
	clock    clock.Clock
	logger   logger.Logger
}

func NewAmenityService(
	repo ports.AmenityRepo,
	catalog ports.AmenityCatalog,
	clk clock.Clock,
	logger logger.Logger,
) *AmenityService {
	return &AmenityService{
		repo:     repo,
		catalog:  catalog,
		validate: validator.New(),
		clock:    clk,
		logger:   logger,
	}
}

func (s *AmenityService) Create(ctx context.Context, actor domain.Actor, input domain.AmenityInput) (*domain.Amenity, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}

	now := s.clock.Now()
	a := &domain.Amenity{
		ID:        uuid.New().String(),
		Active:    true,
		CreatedAt: now,
	}
	if err := s.apply(a, input); err != nil {
		return nil, err
	}
	a.UpdatedAt = now

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create amenity: %w", err)
	}

	s.logger.Info("amenity created",
		logger.String("amenity_id", a.ID),
		logger.String("name", a.Name),
		logger.String("category", string(a.Category)),
	)

	return a, nil
}

func (s *AmenityService) Update(ctx context.Context, actor domain.Actor, id string, input domain.AmenityInput) (*domain.Amenity, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrAdminOnly
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get amenity: %w", err)
	}
	if err = s.apply(a, input); err != nil {
		return nil, err
	}
	a.UpdatedAt = s.clock.Now()

	if err = s.repo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("update amenity: %w", err)
	}
	s.catalog.Invalidate(ctx, a.ID)

	s.logger.Info("amenity updated",
		logger.String("amenity_id", a.ID),
		logger.String("name", a.Name),
	)

	return a, nil
}

func (s *AmenityService) GetByID(ctx context.Context, id string) (*domain.Amenity, error) {
	return s.catalog.GetByID(ctx, id)
}

func (s *AmenityService) List(ctx context.Context, activeOnly bool) ([]*domain.Amenity, error) {
	return s.repo.List(ctx, activeOnly)
}

// apply validates input and copies it onto a.
func (s *AmenityService) apply(a *domain.Amenity, input domain.AmenityInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, describeValidation(err))
	}

	open, err := domain.ParseTimeOfDay(input.Open)
	if err != nil {
		return err
	}
	closing, err := domain.ParseTimeOfDay(input.Close)
	if err != nil {
		return err
	}
	if closing <= open {
		return fmt.Errorf("%w: closing time must follow opening time", domain.ErrValidation)
	}

	a.Name = input.Name
	a.Description = input.Description
	a.Category = input.Category
	a.Capacity = input.Capacity
	a.Hours = domain.OperatingHours{Days: input.Days, Open: open, Close: closing}
	a.Requirements = domain.SpecialRequirements{
		MaxVisitors:         input.MaxVisitors,
		AdvanceBookingHours: input.AdvanceBookingHours,
	}
	a.RequiresApproval = input.RequiresApproval

	a.AutoApproval = nil
	if input.MaxDurationMinutes > 0 {
		a.AutoApproval = &domain.AutoApprovalRules{
			MaxDurationMinutes: input.MaxDurationMinutes,
			MaxBookingsPerDay:  input.MaxBookingsPerDay,
		}
	}

	if input.Active != nil {
		a.Active = *input.Active
	}
	return nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
