package service

import (
	"context"

	"prospace-backend/internal/domain"
	"prospace-backend/internal/repository"
)

type deskService struct {
	deskRepo repository.DeskRepository
}

func NewDeskService(deskRepo repository.DeskRepository) DeskService {
	return &deskService{deskRepo: deskRepo}
}

// numberAvailable checks for an existing desk with the number. The check
// gives a clean message; the desks_desk_number_key index closes the race.
func (s *deskService) numberAvailable(ctx context.Context, number string) error {
	_, err := s.deskRepo.GetByNumber(ctx, number)
	if err == nil {
		return domain.NewConflict("desk number already in use")
	}
	if domain.IsNotFound(err) {
		return nil
	}
	return err
}

func (s *deskService) Create(ctx context.Context, number string) (*domain.Desk, error) {
	if number == "" {
		return nil, domain.NewValidation("desk number is required")
	}
	if err := s.numberAvailable(ctx, number); err != nil {
		return nil, err
	}
	desk := &domain.Desk{DeskNumber: number, IsActive: true}
	if err := s.deskRepo.Create(ctx, desk); err != nil {
		return nil, err
	}
	return desk, nil
}

func (s *deskService) Get(ctx context.Context, id string) (*domain.Desk, error) {
	return s.deskRepo.GetByID(ctx, id)
}

func (s *deskService) List(ctx context.Context) ([]domain.Desk, error) {
	return s.deskRepo.List(ctx)
}

// Update renumbers and/or toggles the active flag. Nil fields are left
// unchanged.
func (s *deskService) Update(ctx context.Context, id string, number *string, active *bool) (*domain.Desk, error) {
	desk, err := s.deskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if number != nil && *number != desk.DeskNumber {
		if *number == "" {
			return nil, domain.NewValidation("desk number is required")
		}
		if err := s.numberAvailable(ctx, *number); err != nil {
			return nil, err
		}
		desk.DeskNumber = *number
	}
	if active != nil {
		desk.IsActive = *active
	}
	if err := s.deskRepo.Update(ctx, desk); err != nil {
		return nil, err
	}
	return desk, nil
}

func (s *deskService) Delete(ctx context.Context, id string) error {
	if _, err := s.deskRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.deskRepo.Delete(ctx, id)
}
