package persistence

import (
	"context"
	"errors"
	"fmt"

	"rsa_demo_service/internal/domain/sessions"
	"rsa_demo_service/internal/infrastructure/persistence/models"
	"rsa_demo_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormSessionRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormSessionRepository creates a new GORM-based SessionRepository implementation
func NewGormSessionRepository(db *gorm.DB, logger logger.Logger) (sessions.SessionRepository, error) {
	return &gormSessionRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormSessionRepository) Create(ctx context.Context, meta *sessions.SessionMeta) error {
	if err := meta.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SessionModel{}
	model.FromDomain(meta)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session metadata: %w", err)
	}

	r.logger.Info("Created session metadata with id ", meta.ID)
	return nil
}

func (r *gormSessionRepository) List(ctx context.Context, query *sessions.SessionQuery) ([]*sessions.SessionMeta, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.SessionModel
	dbQuery := r.db.WithContext(ctx).Model(&models.SessionModel{})

	if query.Algorithm != "" {
		dbQuery = dbQuery.Where("algorithm = ?", query.Algorithm)
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch session metadata: %w", err)
	}

	domainList := make([]*sessions.SessionMeta, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormSessionRepository) GetByID(ctx context.Context, sessionID string) (*sessions.SessionMeta, error) {
	var model models.SessionModel
	if err := r.db.WithContext(ctx).Where("id = ?", sessionID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sessions.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to fetch session metadata: %w", err)
	}

	return model.ToDomain(), nil
}

func (r *gormSessionRepository) UpdateByID(ctx context.Context, meta *sessions.SessionMeta) error {
	if err := meta.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.SessionModel{}
	model.FromDomain(meta)

	// Select the mutable columns explicitly so zero-valued counters are written
	result := r.db.WithContext(ctx).Model(&models.SessionModel{}).
		Where("id = ?", meta.ID).
		Select("algorithm", "key_size", "operations", "date_time_updated").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update session metadata: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return sessions.ErrSessionNotFound
	}

	r.logger.Info("Updated session metadata with id ", meta.ID)
	return nil
}

func (r *gormSessionRepository) DeleteByID(ctx context.Context, sessionID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", sessionID).Delete(&models.SessionModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete session metadata: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return sessions.ErrSessionNotFound
	}

	r.logger.Info("Deleted session metadata with id ", sessionID)
	return nil
}
