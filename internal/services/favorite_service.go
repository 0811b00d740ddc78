package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"wanderly/internal/models/db_models"
	"wanderly/internal/models/request_models"
	"wanderly/internal/models/response_models"
	"wanderly/internal/repositories"
	"wanderly/pkg/utils"
)

type FavoriteServiceInterface interface {
	AddFavorite(ctx context.Context, userId string, request request_models.AddFavoriteRequest) (string, error)
	IsFavorite(ctx context.Context, userId string, destinationId string) (bool, error)
	RemoveFavorite(ctx context.Context, userId string, favoriteId string) error
	ListFavorites(ctx context.Context, userId string) ([]response_models.FavoriteResponse, error)
}

type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository) FavoriteServiceInterface {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
	}
}

// AddFavorite stamps the record with the caller's identity and a server-side
// timestamp. Duplicate (user, destination) pairs are not rejected here:
// callers pre-check with IsFavorite, the store carries no unique constraint.
func (f *FavoriteService) AddFavorite(ctx context.Context, userId string, request request_models.AddFavoriteRequest) (string, error) {
	ownerId, err := uuid.Parse(userId)
	if err != nil {
		return "", utils.ErrUnauthenticated
	}

	favorite := &db_models.Favorite{
		UserID:        ownerId,
		DestinationID: request.DestinationID,
		Name:          request.Name,
		Country:       request.Country,
		ImageURL:      request.ImageURL,
	}

	if err := f.favoriteRepo.Insert(ctx, favorite); err != nil {
		log.Printf("Error inserting favorite: %v", err)
		return "", utils.ErrDatabaseError
	}

	return favorite.ID.String(), nil
}

// IsFavorite reports false, not an error, when there is no session identity.
func (f *FavoriteService) IsFavorite(ctx context.Context, userId string, destinationId string) (bool, error) {
	if _, err := uuid.Parse(userId); err != nil {
		return false, nil
	}

	exists, err := f.favoriteRepo.ExistsByUserAndDestination(ctx, userId, destinationId)
	if err != nil {
		return false, utils.ErrDatabaseError
	}

	return exists, nil
}

// RemoveFavorite reports the same error for a missing record and a record
// owned by someone else, so existence is never leaked.
func (f *FavoriteService) RemoveFavorite(ctx context.Context, userId string, favoriteId string) error {
	if _, err := uuid.Parse(userId); err != nil {
		return utils.ErrUnauthenticated
	}

	favorite, err := f.favoriteRepo.FindById(ctx, favoriteId)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if favorite == nil || favorite.UserID.String() != userId {
		return utils.ErrNotFoundOrUnauthorized
	}

	if err := f.favoriteRepo.Delete(ctx, favoriteId); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (f *FavoriteService) ListFavorites(ctx context.Context, userId string) ([]response_models.FavoriteResponse, error) {
	if _, err := uuid.Parse(userId); err != nil {
		return nil, utils.ErrUnauthenticated
	}

	favorites, err := f.favoriteRepo.ListByUserId(ctx, userId)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.FavoriteResponse, 0, len(favorites))
	for _, favorite := range favorites {
		out = append(out, response_models.FavoriteResponse{
			ID:            favorite.ID.String(),
			DestinationID: favorite.DestinationID,
			Name:          favorite.Name,
			Country:       favorite.Country,
			ImageURL:      favorite.ImageURL,
			AddedAt:       utils.FormatRFC3339(utils.FromUnixSeconds(favorite.CreatedAt)),
		})
	}

	return out, nil
}
