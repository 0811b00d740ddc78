package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"wanderly/internal/models/db_models"
)

type ItineraryRepository interface {
	Insert(ctx context.Context, itinerary *db_models.Itinerary) error
	FindById(ctx context.Context, id string) (*db_models.Itinerary, error)
	ListByUserId(ctx context.Context, userId string) ([]db_models.Itinerary, error)
	Update(ctx context.Context, itinerary *db_models.Itinerary) error
	ReplaceDays(ctx context.Context, itineraryId string, days []db_models.ItineraryDay) error
	Delete(ctx context.Context, id string) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{
		db: db,
	}
}

func (r *itineraryRepository) Insert(ctx context.Context, itinerary *db_models.Itinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *itineraryRepository) FindById(ctx context.Context, id string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("itinerary_days.day_number ASC")
		}).
		Preload("Days.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("itinerary_activities.position ASC")
		}).
		First(&itinerary).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &itinerary, nil
}

// ListByUserId returns the user's itineraries newest first, days preloaded.
func (r *itineraryRepository) ListByUserId(ctx context.Context, userId string) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("itinerary_days.day_number ASC")
		}).
		Preload("Days.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("itinerary_activities.position ASC")
		}).
		Find(&itineraries).Error

	if err != nil {
		return nil, err
	}

	return itineraries, nil
}

func (r *itineraryRepository) Update(ctx context.Context, itinerary *db_models.Itinerary) error {
	return r.db.WithContext(ctx).Save(itinerary).Error
}

// ReplaceDays swaps the day rows of an itinerary for a new set. Old days and
// their activities are removed first so day numbers stay contiguous.
func (r *itineraryRepository) ReplaceDays(ctx context.Context, itineraryId string, days []db_models.ItineraryDay) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&db_models.ItineraryDay{}).
			Select("itinerary_days.id").
			Where("itinerary_days.itinerary_id = ?", itineraryId)

		if err := tx.Where("itinerary_day_id IN (?)", sub).
			Delete(&db_models.ItineraryActivity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("itinerary_id = ?", itineraryId).
			Delete(&db_models.ItineraryDay{}).Error; err != nil {
			return err
		}
		if len(days) == 0 {
			return nil
		}
		return tx.Create(&days).Error
	})
}

func (r *itineraryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&db_models.Itinerary{}).Error
}
