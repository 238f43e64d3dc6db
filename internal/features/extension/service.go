package extension

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"go-marketplace/internal/common/apperr"
	"go-marketplace/internal/features/audit"
	"go-marketplace/internal/latency"
	"go-marketplace/internal/models"
	"go-marketplace/internal/store"
	"go-marketplace/pkg/utils"

	"go.uber.org/zap"
)

type ExtensionService interface {
	Search(ctx context.Context, criteria SearchCriteria) (SearchResult, error)
	GetExtension(ctx context.Context, id string) (models.Extension, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListReviews(ctx context.Context, extensionID string) ([]models.Review, error)
	SubmitReview(ctx context.Context, user models.CurrentUser, extensionID string, input ReviewInput) (models.Review, error)
}

type ExtensionServiceImpl struct {
	Store     *store.Store
	Latency   *latency.Simulator
	Publisher audit.Publisher
	Logger    *zap.Logger
}

func NewExtensionService(s *store.Store, sim *latency.Simulator, publisher audit.Publisher, logger *zap.Logger) ExtensionService {
	return &ExtensionServiceImpl{
		Store:     s,
		Latency:   sim,
		Publisher: publisher,
		Logger:    logger,
	}
}

func (s *ExtensionServiceImpl) Search(ctx context.Context, criteria SearchCriteria) (SearchResult, error) {
	s.Latency.Wait(latency.Search)

	criteria = criteria.Normalise()
	result := SearchResult{Page: criteria.Page, Limit: criteria.Limit}
	err := s.Store.View(func(tx *store.Tx) error {
		page, total := runQuery(tx.Extensions(), criteria)
		result.Total = total
		result.Extensions = make([]models.Extension, 0, len(page))
		for _, e := range page {
			result.Extensions = append(result.Extensions, e.Clone())
		}
		return nil
	})
	result.TotalPages = totalPages(result.Total, result.Limit)
	return result, err
}

func (s *ExtensionServiceImpl) GetExtension(ctx context.Context, id string) (models.Extension, error) {
	s.Latency.Wait(latency.Details)

	var ext models.Extension
	err := s.Store.View(func(tx *store.Tx) error {
		e, ok := tx.Extension(id)
		if !ok {
			return fmt.Errorf("extension %s: %w", id, apperr.ErrNotFound)
		}
		ext = e.Clone()
		return nil
	})
	return ext, err
}

func (s *ExtensionServiceImpl) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	err := s.Store.View(func(tx *store.Tx) error {
		cats = tx.Categories()
		return nil
	})
	return cats, err
}

// ListReviews returns the reviews of an extension, newest first.
func (s *ExtensionServiceImpl) ListReviews(ctx context.Context, extensionID string) ([]models.Review, error) {
	s.Latency.Wait(latency.Reviews)

	var reviews []models.Review
	err := s.Store.View(func(tx *store.Tx) error {
		if _, ok := tx.Extension(extensionID); !ok {
			return fmt.Errorf("extension %s: %w", extensionID, apperr.ErrNotFound)
		}
		reviews = tx.Reviews(extensionID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Reverse(reviews)
	slices.SortStableFunc(reviews, func(a, b models.Review) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return reviews, nil
}

func validateReview(input ReviewInput) error {
	if math.IsNaN(input.Rating) || input.Rating < models.MinReviewRating || input.Rating > models.MaxReviewRating {
		return fmt.Errorf("%w: rating must be between %g and %g", apperr.ErrValidationFailed, models.MinReviewRating, models.MaxReviewRating)
	}
	if strings.TrimSpace(input.Comment) == "" {
		return fmt.Errorf("%w: comment is required", apperr.ErrValidationFailed)
	}
	return nil
}

// SubmitReview appends a review and recomputes the extension rating as the
// mean of all its reviews.
func (s *ExtensionServiceImpl) SubmitReview(ctx context.Context, user models.CurrentUser, extensionID string, input ReviewInput) (models.Review, error) {
	s.Latency.Wait(latency.SubmitReview)

	if err := validateReview(input); err != nil {
		return models.Review{}, err
	}

	review := models.Review{
		ID:          utils.NewID("review"),
		ExtensionID: extensionID,
		UserID:      user.ID,
		UserName:    cmp.Or(user.Name, user.ID),
		Rating:      input.Rating,
		Comment:     strings.TrimSpace(input.Comment),
		Timestamp:   time.Now().UTC(),
	}

	var entry models.AuditLogEntry
	err := s.Store.Update(func(tx *store.Tx) error {
		ext, ok := tx.Extension(extensionID)
		if !ok {
			return fmt.Errorf("extension %s: %w", extensionID, apperr.ErrNotFound)
		}

		tx.AppendReview(review)
		reviews := tx.Reviews(extensionID)
		ext.Rating = models.AverageRating(reviews)
		if dev, ok := tx.DeveloperExtension(extensionID); ok {
			dev.ReviewsCount = len(reviews)
			dev.AverageRating = ext.Rating
		}

		entry = audit.NewEntry(models.AuditActionReview, user.ID, extensionID, models.ConfigMap{
			"extension_name": models.String(ext.Name),
			"rating":         models.Number(input.Rating),
		})
		tx.AppendAudit(entry)
		s.Publisher.Publish(entry)
		return nil
	})
	if err != nil {
		return models.Review{}, err
	}

	s.Logger.Info("review submitted",
		zap.String("extension_id", extensionID),
		zap.String("user_id", user.ID),
		zap.Float64("rating", review.Rating))
	return review, nil
}
