package ports

import (
	"context"
	"token-lifecycle-server/internal/model"
)

// MediaListRepository : одна таблица личных списков (favorites или watch_list)
type MediaListRepository interface {
	List(ctx context.Context, userID, mediaType string) ([]model.MediaItem, error)
	Add(ctx context.Context, item *model.MediaItem) (*model.MediaItem, error)
	Remove(ctx context.Context, userID string, mediaID int, mediaType string) error
	Contains(ctx context.Context, userID string, mediaID int, mediaType string) (bool, error)
}

type MediaListService interface {
	List(ctx context.Context, username, mediaType string) ([]model.MediaItem, error)
	Add(ctx context.Context, username string, item model.MediaItem) (*model.MediaItem, error)
	Remove(ctx context.Context, username string, mediaID int, mediaType string) error
	Contains(ctx context.Context, username string, mediaID int, mediaType string) (bool, error)
}
