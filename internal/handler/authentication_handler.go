package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"token-lifecycle-server/config"
	"token-lifecycle-server/internal/model"
	"token-lifecycle-server/internal/model/requestresponse"
	"token-lifecycle-server/internal/ports"
	"token-lifecycle-server/internal/security"
)

const invalidRefreshTokenMessage = "недействительный refresh токен, выполните вход заново"

type AuthenticationHandler struct {
	ports.AuthenticationService
	cookies tokenCookies
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService, cookieConfig config.CookieConfig) *AuthenticationHandler {
	return &AuthenticationHandler{
		AuthenticationService: authenticationService,
		cookies:               newTokenCookies(cookieConfig),
	}
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Выдает access и refresh токены по логину и паролю. Токены возвращаются в теле ответа и в HttpOnly cookie.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.TokensResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или пустые поля"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный логин или пароль"
// @Failure 503 {object} requestresponse.ErrorResponse "Хранилище недоступно"
// @Router /api/auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Username == "" || req.Password == "" {
		sendErrorResponse(w, http.StatusBadRequest, "username и password обязательны")
		return
	}

	tokens, err := h.AuthenticationService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUnauthenticated):
			sendErrorResponse(w, http.StatusUnauthorized, "неверный логин или пароль")
		case errors.Is(err, model.ErrInfrastructure):
			sendErrorResponse(w, http.StatusServiceUnavailable, "сервис временно недоступен")
		default:
			log.Println(err)
			sendErrorResponse(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		}
		return
	}

	h.cookies.set(w, tokens)
	writeJSON(w, http.StatusOK, tokensResponse(tokens))
}

// RefreshToken godoc
// @Summary Обновление токенов
// @Description Выдает новую пару токенов по access токену (может быть просрочен) и текущему refresh токену. Пустые поля берутся из cookie. Старый refresh токен перестает действовать.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest false "Тело запроса"
// @Success 200 {object} requestresponse.TokensResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Недействительный refresh токен"
// @Failure 503 {object} requestresponse.ErrorResponse "Хранилище недоступно"
// @Router /api/auth/token/refresh [post]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		sendErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.AccessToken == "" {
		if cookie, err := r.Cookie(security.AccessTokenCookie); err == nil {
			req.AccessToken = cookie.Value
		}
	}
	if req.RefreshToken == "" {
		if cookie, err := r.Cookie(security.RefreshTokenCookie); err == nil {
			req.RefreshToken = cookie.Value
		}
	}

	tokens, err := h.AuthenticationService.Refresh(r.Context(), req.AccessToken, req.RefreshToken)
	if err != nil {
		if errors.Is(err, model.ErrInfrastructure) {
			sendErrorResponse(w, http.StatusServiceUnavailable, "сервис временно недоступен")
			return
		}
		sendErrorResponse(w, http.StatusBadRequest, invalidRefreshTokenMessage)
		return
	}

	h.cookies.set(w, tokens)
	writeJSON(w, http.StatusOK, tokensResponse(tokens))
}

// Revoke godoc
// @Summary Завершение сессии
// @Description Отзывает refresh токен текущего пользователя и удаляет cookie. Уже выданный access токен действует до своего истечения.
// @Tags Authentication
// @Produce json
// @Param Authorization header string false "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.RevokeResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 503 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/auth/token/revoke [post]
func (h *AuthenticationHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		sendErrorResponse(w, http.StatusUnauthorized, "не авторизован")
		return
	}

	if err := h.AuthenticationService.Revoke(r.Context(), claims.Username); err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			// отзывать нечего, для клиента это тот же успешный выход
		case errors.Is(err, model.ErrInfrastructure):
			sendErrorResponse(w, http.StatusServiceUnavailable, "сервис временно недоступен")
			return
		default:
			log.Println(err)
			sendErrorResponse(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
			return
		}
	}

	h.cookies.clear(w)
	writeJSON(w, http.StatusOK, requestresponse.RevokeResponse{Response: true})
}

func tokensResponse(tokens *model.TokensPair) requestresponse.TokensResponse {
	resp := requestresponse.TokensResponse{}
	resp.Response.AccessToken = tokens.AccessToken
	resp.Response.RefreshToken = tokens.RefreshToken
	resp.Response.AccessTokenExpiresAt = tokens.AccessTokenExpiresAt
	resp.Response.RefreshTokenExpiresAt = tokens.RefreshTokenExpiresAt
	return resp
}
