package services

import (
	"context"

	"github.com/gatherly/gatherly/internal/models"
)

type FavoriteService struct {
	favoriteRepo models.FavoriteRepo
}

func NewFavoriteService(favoriteRepo models.FavoriteRepo) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
	}
}

func (fs *FavoriteService) AddFavorite(ctx context.Context, userID, eventID string) (*models.Favorite, error) {
	uid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	eid, err := parseObjectID(eventID)
	if err != nil {
		return nil, err
	}
	return fs.favoriteRepo.AddFavorite(ctx, uid, eid)
}

func (fs *FavoriteService) ListFavoriteEventsByUser(ctx context.Context, userID string) ([]*models.Event, error) {
	uid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	return fs.favoriteRepo.ListFavoriteEventsByUser(ctx, uid)
}

func (fs *FavoriteService) RemoveFavorite(ctx context.Context, userID, eventID string) error {
	uid, err := parseObjectID(userID)
	if err != nil {
		return err
	}
	eid, err := parseObjectID(eventID)
	if err != nil {
		return err
	}
	return fs.favoriteRepo.RemoveFavorite(ctx, uid, eid)
}
