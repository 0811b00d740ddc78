package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wanderly/internal/models/db_models"
)

type FavoriteRepository interface {
	Insert(ctx context.Context, favorite *db_models.Favorite) error
	FindById(ctx context.Context, id string) (*db_models.Favorite, error)
	ListByUserId(ctx context.Context, userId string) ([]db_models.Favorite, error)
	ExistsByUserAndDestination(ctx context.Context, userId, destinationId string) (bool, error)
	Delete(ctx context.Context, id string) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

func (f *favoriteRepository) Insert(ctx context.Context, favorite *db_models.Favorite) error {
	return f.db.WithContext(ctx).Create(favorite).Error
}

func (f *favoriteRepository) FindById(ctx context.Context, id string) (*db_models.Favorite, error) {
	var favorite db_models.Favorite
	err := f.db.WithContext(ctx).First(&favorite, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &favorite, nil
}

// ListByUserId returns the user's favorites newest first.
func (f *favoriteRepository) ListByUserId(ctx context.Context, userId string) ([]db_models.Favorite, error) {
	var favorites []db_models.Favorite
	err := f.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&favorites).Error

	if err != nil {
		return nil, err
	}

	return favorites, nil
}

func (f *favoriteRepository) ExistsByUserAndDestination(ctx context.Context, userId, destinationId string) (bool, error) {
	var count int64
	err := f.db.WithContext(ctx).
		Model(&db_models.Favorite{}).
		Where("user_id = ? AND destination_id = ?", userId, destinationId).
		Limit(1).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (f *favoriteRepository) Delete(ctx context.Context, id string) error {
	return f.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&db_models.Favorite{}).Error
}
