package model

import "time"

const (
	MediaMovie = "movie"
	MediaTV    = "tv"
)

// MediaItem : фильм или сериал в личном списке пользователя (избранное или "посмотреть позже")
type MediaItem struct {
	ID         int64     `db:"id"`
	UserID     string    `db:"user_id"`
	MediaID    int       `db:"media_id"`
	MediaType  string    `db:"media_type"`
	Title      string    `db:"title"`
	PosterPath string    `db:"poster_path"`
	AddedOn    time.Time `db:"added_on"`
}

func ValidMediaType(mediaType string) bool {
	return mediaType == MediaMovie || mediaType == MediaTV
}
