package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ticketsla/ticketsla/internal/domain/user"
	"github.com/ticketsla/ticketsla/internal/infrastructure/persistence/mappers"
	"github.com/ticketsla/ticketsla/internal/infrastructure/persistence/models"
	"github.com/ticketsla/ticketsla/internal/shared/biztime"
	"github.com/ticketsla/ticketsla/internal/shared/db"
	"github.com/ticketsla/ticketsla/internal/shared/errors"
)

type SessionRepository struct {
	db     *gorm.DB
	mapper mappers.SessionMapper
}

func NewSessionRepository(gormDB *gorm.DB) user.SessionRepository {
	return &SessionRepository{
		db:     gormDB,
		mapper: mappers.NewSessionMapper(),
	}
}

func (r *SessionRepository) Create(ctx context.Context, session *user.Session) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(session)).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	var model models.SessionModel
	err := db.GetTxFromContext(ctx, r.db).Where("id = ?", sessionID).First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("session not found")
		}
		return nil, fmt.Errorf("failed to get session by ID: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", sessionID).Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Where("expires_at <= ?", biztime.NowUTC()).
		Delete(&models.SessionModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}
