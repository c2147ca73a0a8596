package services

import (
	"context"

	"gorm.io/gorm"

	"questionnaire/models"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// GetOrCreate returns the user's statistics row, creating an empty one on
// first access.
func (s *StatsService) GetOrCreate(ctx context.Context, userID uint) (*models.Statistics, error) {
	var stats models.Statistics
	err := s.db.WithContext(ctx).
		Where(models.Statistics{UserID: userID}).
		FirstOrCreate(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Recalculate recomputes the user's counters in full from the answers and
// questions tables. It never patches incrementally, so concurrent runs are
// idempotent and last-write-wins is safe.
func (s *StatsService) Recalculate(ctx context.Context, userID uint) (*models.Statistics, error) {
	stats, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	var answered int64
	err = s.db.WithContext(ctx).Model(&models.Answer{}).
		Where("user_id = ?", userID).Count(&answered).Error
	if err != nil {
		return nil, err
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Question{}).Count(&total).Error; err != nil {
		return nil, err
	}

	stats.AnsweredQuestions = answered
	stats.UnansweredQuestions = total - answered
	if err := s.db.WithContext(ctx).Save(stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
