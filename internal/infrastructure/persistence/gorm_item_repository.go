package persistence

import (
	"context"
	"errors"
	"fmt"

	"items_service/internal/domain/items"
	"items_service/internal/infrastructure/persistence/models"
	"items_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormItemRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormItemRepository creates a new GORM-based ItemRepository implementation
func NewGormItemRepository(db *gorm.DB, logger logger.Logger) (items.ItemRepository, error) {
	return &gormItemRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormItemRepository) Create(ctx context.Context, item *items.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	model := &models.ItemModel{}
	model.FromDomain(item)
	model.ID = 0 // the database assigns ids

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	*item = *model.ToDomain()

	r.logger.Info("Created item with id ", item.ID)
	return nil
}

func (r *gormItemRepository) GetByID(ctx context.Context, id uint) (*items.Item, error) {
	var model models.ItemModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &items.NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to fetch item: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormItemRepository) UpdateByID(ctx context.Context, id uint, update *items.ItemUpdate) (*items.Item, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	fields := update.Fields()
	if len(fields) > 0 {
		result := r.db.WithContext(ctx).
			Model(&models.ItemModel{}).
			Where("id = ?", id).
			Updates(fields)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update item: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, &items.NotFoundError{ID: id}
		}
	}

	item, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.logger.Info("Updated item with id ", id)
	return item, nil
}

func (r *gormItemRepository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ItemModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &items.NotFoundError{ID: id}
	}

	r.logger.Info("Deleted item with id ", id)
	return nil
}

func (r *gormItemRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ItemModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return total, nil
}

func (r *gormItemRepository) List(ctx context.Context, offset, limit int) ([]*items.Item, error) {
	var modelList []*models.ItemModel

	err := r.db.WithContext(ctx).
		Model(&models.ItemModel{}).
		Order("id asc").
		Offset(offset).
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items: %w", err)
	}

	domainList := make([]*items.Item, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}
