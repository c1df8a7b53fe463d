package packages

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ConciergeBooking/internal/domain"
	packagesRepo "github.com/m04kA/SMC-ConciergeBooking/internal/infra/storage/packages"
	"github.com/m04kA/SMC-ConciergeBooking/internal/service/packages/models"
)

// Service сервис сохраненных пакетов конструктора
type Service struct {
	repo         PackageRepository
	validator    DraftValidator
	calculator   Calculator
	items        domain.Options
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса пакетов
func NewService(
	repo PackageRepository,
	validator DraftValidator,
	calculator Calculator,
	items domain.Options,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		repo:         repo,
		validator:    validator,
		calculator:   calculator,
		items:        items,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Save проверяет, оценивает и сохраняет пакет владельца
func (s *Service) Save(ctx context.Context, req *models.SavePackageRequest) (*models.PackageResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}
	if req.OwnerID == "" {
		return nil, ErrMissingOwner
	}
	s.logger.Info("Save: owner=%s, package id=%q, items=%d", req.OwnerID, req.ID, len(req.Items))

	form := req.Form()
	if errs := s.validator.ValidatePackageDraft(form); !errs.Empty() {
		s.logger.Warn("Save: invalid package for owner=%s: fields=%v", req.OwnerID, errs.Fields())
		return nil, &ValidationError{Fields: errs}
	}

	quote, err := s.calculator.Quote(form)
	if err != nil {
		s.logger.Error("Save: failed to price package for owner=%s: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: Save - pricing error: %v", ErrInternal, err)
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	} else if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("Save: invalid package id=%q for owner=%s", id, req.OwnerID)
		return nil, fmt.Errorf("%w: invalid package id", ErrInvalidInput)
	}

	saved, err := s.repo.Save(ctx, &domain.SavedPackage{
		ID:        id,
		OwnerID:   req.OwnerID,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Guests:    req.Guests,
		Items:     req.Items,
		Total:     quote.Total,
	})
	if err != nil {
		if errors.Is(err, packagesRepo.ErrPackageNotFound) {
			s.logger.Warn("Save: package id=%s does not belong to owner=%s", id, req.OwnerID)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("Save: repository error for package id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: package id=%s saved, total=%.2f", saved.ID, saved.Total)
	return models.FromDomainPackage(saved, s.items), nil
}

// List возвращает пакеты владельца, новые первыми
func (s *Service) List(ctx context.Context, ownerID string) (*models.PackageListResponse, error) {
	if ownerID == "" {
		return nil, ErrMissingOwner
	}

	pkgs, err := s.repo.List(ctx, ownerID)
	if err != nil {
		s.logger.Error("List: repository error for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.PackageListResponse{
		Packages: make([]*models.PackageResponse, 0, len(pkgs)),
		Total:    len(pkgs),
	}
	for _, pkg := range pkgs {
		resp.Packages = append(resp.Packages, models.FromDomainPackage(pkg, s.items))
	}

	s.logger.Info("List: found %d packages for owner=%s", resp.Total, ownerID)
	return resp, nil
}

// Delete удаляет пакет владельца
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return ErrMissingOwner
	}
	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("Delete: invalid package id=%q", id)
		return ErrPackageNotFound
	}

	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, packagesRepo.ErrPackageNotFound) {
			s.logger.Warn("Delete: package id=%s not found for owner=%s", id, ownerID)
			return ErrPackageNotFound
		}
		s.logger.Error("Delete: repository error for package id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: package id=%s deleted by owner=%s", id, ownerID)
	return nil
}

// PurgeOlderThan удаляет пакеты, не обновлявшиеся дольше retention
func (s *Service) PurgeOlderThan(ctx context.Context, retention time.Duration) (int64, error) {
	before := s.timeProvider.Now().Add(-retention)

	removed, err := s.repo.DeleteOlderThan(ctx, before)
	if err != nil {
		s.logger.Error("PurgeOlderThan: repository error: %v", err)
		return 0, fmt.Errorf("%w: PurgeOlderThan - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("PurgeOlderThan: removed %d packages not updated since %s", removed, before.Format(time.RFC3339))
	return removed, nil
}
