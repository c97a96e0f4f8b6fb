package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"token-lifecycle-server/config"
	"token-lifecycle-server/internal/model"

	"github.com/jmoiron/sqlx"
)

const (
	favoritesTable = "favorites"
	watchListTable = "watch_list"

	mediaColumns = "id, user_id, media_id, media_type, title, poster_path, added_on"
)

// MediaListRepository : личный список фильмов и сериалов. Избранное и watch list
// устроены одинаково и отличаются только таблицей.
type MediaListRepository struct {
	*config.Database
	table string
}

func NewFavoritesRepository(database *config.Database) *MediaListRepository {
	return &MediaListRepository{Database: database, table: favoritesTable}
}

func NewWatchListRepository(database *config.Database) *MediaListRepository {
	return &MediaListRepository{Database: database, table: watchListTable}
}

// List : записи пользователя, новые первыми. Пустой mediaType означает все типы.
func (r *MediaListRepository) List(ctx context.Context, userID, mediaType string) ([]model.MediaItem, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE user_id = $1 AND ($2 = '' OR media_type = $2)
		ORDER BY added_on DESC, id DESC
	`, mediaColumns, r.table)

	items := []model.MediaItem{}
	if err := sqlx.SelectContext(ctx, r.DB, &items, query, userID, mediaType); err != nil {
		return nil, infrastructureError(r.table+".list", userID, err)
	}
	return items, nil
}

// Add : добавляет запись, model.ErrMediaAlreadyListed если она уже есть
func (r *MediaListRepository) Add(ctx context.Context, item *model.MediaItem) (*model.MediaItem, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, media_id, media_type, title, poster_path)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, media_id, media_type) DO NOTHING
		RETURNING %s
	`, r.table, mediaColumns)

	var created model.MediaItem
	err := r.DB.QueryRowxContext(ctx, query, item.UserID, item.MediaID, item.MediaType, item.Title, item.PosterPath).
		StructScan(&created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrMediaAlreadyListed
		}
		return nil, infrastructureError(r.table+".add", item.UserID, err)
	}
	return &created, nil
}

// Remove : удаляет запись, model.ErrNotFound если ее не было
func (r *MediaListRepository) Remove(ctx context.Context, userID string, mediaID int, mediaType string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1 AND media_id = $2 AND media_type = $3`, r.table)
	result, err := r.DB.ExecContext(ctx, query, userID, mediaID, mediaType)
	if err != nil {
		return infrastructureError(r.table+".remove", userID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return infrastructureError(r.table+".remove", userID, err)
	}
	if rowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *MediaListRepository) Contains(ctx context.Context, userID string, mediaID int, mediaType string) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE user_id = $1 AND media_id = $2 AND media_type = $3)`, r.table)
	var exists bool
	if err := sqlx.GetContext(ctx, r.DB, &exists, query, userID, mediaID, mediaType); err != nil {
		return false, infrastructureError(r.table+".contains", userID, err)
	}
	return exists, nil
}
