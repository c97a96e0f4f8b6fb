package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"token-lifecycle-server/internal/model"
	"token-lifecycle-server/internal/model/requestresponse"
	"token-lifecycle-server/internal/ports"
	"token-lifecycle-server/internal/security"
)

const (
	FavoriteCheckField  = "isFavorite"
	WatchListCheckField = "isInWatchList"
)

// MediaListHandler обслуживает и /api/favorites, и /api/watchlist.
// checkField задает имя поля в ответе check.
type MediaListHandler struct {
	service    ports.MediaListService
	checkField string
}

func NewMediaListHandler(service ports.MediaListService, checkField string) *MediaListHandler {
	return &MediaListHandler{service: service, checkField: checkField}
}

// List godoc
// @Summary Список избранного или watch list
// @Tags Media
// @Produce json
// @Param mediaType query string false "movie или tv, без фильтра если не задан"
// @Success 200 {object} requestresponse.MediaListResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Пользователь не найден"
// @Security ApiKeyAuth
// @Router /api/favorites [get]
// @Router /api/watchlist [get]
func (h *MediaListHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		sendErrorResponse(w, http.StatusUnauthorized, "не авторизован")
		return
	}

	items, err := h.service.List(r.Context(), claims.Username, r.URL.Query().Get("mediaType"))
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	resp := requestresponse.MediaListResponse{Response: make([]requestresponse.MediaItem, 0, len(items))}
	for i := range items {
		resp.Response = append(resp.Response, mediaItem(&items[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Add godoc
// @Summary Добавление в избранное или watch list
// @Tags Media
// @Accept json
// @Produce json
// @Param body body requestresponse.AddMediaRequest true "Тело запроса"
// @Success 200 {object} requestresponse.MediaItemResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректные данные или запись уже в списке"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/favorites/add [post]
// @Router /api/watchlist/add [post]
func (h *MediaListHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		sendErrorResponse(w, http.StatusUnauthorized, "не авторизован")
		return
	}

	var req requestresponse.AddMediaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	created, err := h.service.Add(r.Context(), claims.Username, model.MediaItem{
		MediaID:    req.MediaID,
		MediaType:  req.MediaType,
		Title:      req.Title,
		PosterPath: req.PosterPath,
	})
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.MediaItemResponse{Response: mediaItem(created)})
}

// Remove godoc
// @Summary Удаление из избранного или watch list
// @Tags Media
// @Produce json
// @Param mediaId query int true "Идентификатор фильма или сериала"
// @Param mediaType query string true "movie или tv"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Записи нет в списке"
// @Security ApiKeyAuth
// @Router /api/favorites/remove [delete]
// @Router /api/watchlist/remove [delete]
func (h *MediaListHandler) Remove(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		sendErrorResponse(w, http.StatusUnauthorized, "не авторизован")
		return
	}

	mediaID, mediaType, ok := mediaKeyFromQuery(w, r)
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), claims.Username, mediaID, mediaType); err != nil {
		h.sendServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.MessageResponse{Response: "ok"})
}

// Check godoc
// @Summary Есть ли запись в избранном или watch list
// @Tags Media
// @Produce json
// @Param mediaId query int true "Идентификатор фильма или сериала"
// @Param mediaType query string true "movie или tv"
// @Success 200 {object} requestresponse.MediaCheckResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/favorites/check [get]
// @Router /api/watchlist/check [get]
func (h *MediaListHandler) Check(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		sendErrorResponse(w, http.StatusUnauthorized, "не авторизован")
		return
	}

	mediaID, mediaType, ok := mediaKeyFromQuery(w, r)
	if !ok {
		return
	}

	listed, err := h.service.Contains(r.Context(), claims.Username, mediaID, mediaType)
	if err != nil {
		h.sendServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.MediaCheckResponse{Response: map[string]bool{h.checkField: listed}})
}

func (h *MediaListHandler) sendServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		sendErrorResponse(w, http.StatusBadRequest, clientMessage(err))
	case errors.Is(err, model.ErrMediaAlreadyListed):
		sendErrorResponse(w, http.StatusBadRequest, "запись уже в списке")
	case errors.Is(err, model.ErrNotFound):
		sendErrorResponse(w, http.StatusNotFound, "не найдено")
	case errors.Is(err, model.ErrInfrastructure):
		sendErrorResponse(w, http.StatusServiceUnavailable, "сервис временно недоступен")
	default:
		log.Println(err)
		sendErrorResponse(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
	}
}

// mediaKeyFromQuery читает mediaId и mediaType из query; mediaType проверяет сервис
func mediaKeyFromQuery(w http.ResponseWriter, r *http.Request) (int, string, bool) {
	query := r.URL.Query()
	mediaID, err := strconv.Atoi(query.Get("mediaId"))
	if err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "mediaId должен быть числом")
		return 0, "", false
	}
	return mediaID, query.Get("mediaType"), true
}

func mediaItem(item *model.MediaItem) requestresponse.MediaItem {
	return requestresponse.MediaItem{
		ID:         item.ID,
		MediaID:    item.MediaID,
		MediaType:  item.MediaType,
		Title:      item.Title,
		PosterPath: item.PosterPath,
		AddedOn:    item.AddedOn,
	}
}
