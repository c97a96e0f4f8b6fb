package requestresponse

import "time"

// AddMediaRequest : тело запроса на добавление в избранное или watch list
type AddMediaRequest struct {
	MediaID    int    `json:"mediaId" example:"550"`
	MediaType  string `json:"mediaType" example:"movie" enums:"movie,tv"`
	Title      string `json:"title" example:"Fight Club"`
	PosterPath string `json:"posterPath" example:"/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"`
}

type MediaItem struct {
	ID         int64     `json:"id" example:"1"`
	MediaID    int       `json:"mediaId" example:"550"`
	MediaType  string    `json:"mediaType" example:"movie"`
	Title      string    `json:"title" example:"Fight Club"`
	PosterPath string    `json:"posterPath" example:"/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"`
	AddedOn    time.Time `json:"addedOn" example:"2025-03-08T10:00:00Z"`
}

type MediaItemResponse struct {
	Response MediaItem `json:"response"`
}

// MediaListResponse : записи списка, новые первыми
type MediaListResponse struct {
	Response []MediaItem `json:"response"`
}

// MediaCheckResponse : {"response": {"isFavorite": true}} или {"response": {"isInWatchList": false}}
type MediaCheckResponse struct {
	Response map[string]bool `json:"response" swaggertype:"object,boolean"`
}
