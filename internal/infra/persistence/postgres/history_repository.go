// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"hearts/internal/domain/entity"
	domainerrors "hearts/internal/domain/errors"
	"hearts/internal/domain/repository"
	"hearts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// historyRepository implements the repository.HistoryRepository interface.
type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository is the constructor for historyRepository.
func NewHistoryRepository(db *gorm.DB) repository.HistoryRepository {
	return &historyRepository{
		db: db,
	}
}

// Append persists a new history entry for a user.
func (repo *historyRepository) Append(ctx context.Context, userID uuid.UUID, entry *entity.HistoryEntry) error {
	entryM := fromHistoryDomain(userID, entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required history information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append lives history")
	}

	entry.ID = entryM.ID

	return nil
}

// ListByUser retrieves up to limit entries for a user, most recent first.
func (repo *historyRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.HistoryEntry, error) {
	var entryModels []*model.LivesHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list lives history")
	}

	if len(entryModels) == 0 {
		return nil, repository.ErrHistoryNotFound
	}

	entries := make([]*entity.HistoryEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toHistoryDomain(entryM))
	}

	return entries, nil
}

// TrimToLatest deletes all but the newest keep entries for a user.
func (repo *historyRepository) TrimToLatest(ctx context.Context, userID uuid.UUID, keep int) error {
	subQuery := repo.db.
		Model(&model.LivesHistoryModel{}).
		Select("id").
		Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Limit(keep)

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND id NOT IN (?)", userID, subQuery).
		Delete(&model.LivesHistoryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to trim lives history")
	}

	return nil
}

// --- Mapper Functions ---

// toHistoryDomain converts a GORM LivesHistoryModel to a domain HistoryEntry.
func toHistoryDomain(data *model.LivesHistoryModel) *entity.HistoryEntry {
	if data == nil {
		return nil
	}

	return &entity.HistoryEntry{
		ID:        data.ID,
		Type:      entity.HistoryType(data.Type),
		Amount:    data.Amount,
		Reason:    data.Reason,
		QuizID:    data.QuizID,
		CourseID:  data.CourseID,
		Timestamp: data.OccurredAt,
	}
}

// fromHistoryDomain converts a domain HistoryEntry to a GORM LivesHistoryModel.
func fromHistoryDomain(userID uuid.UUID, data *entity.HistoryEntry) *model.LivesHistoryModel {
	if data == nil {
		return nil
	}

	return &model.LivesHistoryModel{
		ID:         data.ID,
		UserID:     userID,
		Type:       string(data.Type),
		Amount:     data.Amount,
		Reason:     data.Reason,
		QuizID:     data.QuizID,
		CourseID:   data.CourseID,
		OccurredAt: data.Timestamp,
	}
}
