package service

import (
	"context"
	"strings"

	"prospace-backend/internal/domain"
	"prospace-backend/internal/repository"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func validRating(rating int32) bool {
	return rating >= 1 && rating <= 5
}

// Create adds the user's single review. The unique index on user_id
// backstops the pre-check.
func (s *reviewService) Create(ctx context.Context, userID string, rating int32, text string) (*domain.Review, error) {
	if !validRating(rating) {
		return nil, domain.NewValidation("rating must be between 1 and 5")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.NewValidation("review text is required")
	}

	if _, err := s.reviewRepo.GetByUser(ctx, userID); err == nil {
		return nil, domain.NewConflict("you have already submitted a review - you can update it instead")
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	review := &domain.Review{UserID: userID, Rating: rating, Text: text}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByID(ctx, review.ID)
}

func (s *reviewService) Update(ctx context.Context, reviewID, requesterID string, rating *int32, text *string) (*domain.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != requesterID {
		return nil, domain.NewForbidden("not your review")
	}
	if rating != nil {
		if !validRating(*rating) {
			return nil, domain.NewValidation("rating must be between 1 and 5")
		}
		review.Rating = *rating
	}
	if text != nil {
		trimmed := strings.TrimSpace(*text)
		if trimmed == "" {
			return nil, domain.NewValidation("review text is required")
		}
		review.Text = trimmed
	}
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByID(ctx, review.ID)
}

func (s *reviewService) Delete(ctx context.Context, reviewID, requesterID string) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != requesterID {
		return domain.NewForbidden("not your review")
	}
	return s.reviewRepo.Delete(ctx, reviewID)
}

func (s *reviewService) Mine(ctx context.Context, userID string) (*domain.Review, error) {
	return s.reviewRepo.GetByUser(ctx, userID)
}

func (s *reviewService) ListAll(ctx context.Context, viewerID string) ([]domain.Review, error) {
	return s.reviewRepo.ListAll(ctx, viewerID)
}

func (s *reviewService) ToggleLike(ctx context.Context, reviewID, userID string) (*domain.Review, error) {
	if _, err := s.reviewRepo.GetByID(ctx, reviewID); err != nil {
		return nil, err
	}
	if err := s.reviewRepo.ToggleLike(ctx, reviewID, userID); err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByID(ctx, reviewID)
}
