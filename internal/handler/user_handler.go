package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"token-lifecycle-server/internal/model"
	"token-lifecycle-server/internal/model/requestresponse"
	"token-lifecycle-server/internal/ports"
	"token-lifecycle-server/internal/security"
)

type UserHandler struct {
	ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService}
}

// Signup godoc
// @Summary Регистрация нового пользователя
// @Description Создает пользователя с ролью User. Токены не выдаются, после регистрации нужен вход.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.SignupRequest true "Тело запроса"
// @Success 201 {object} requestresponse.UserResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректные данные или пользователь уже существует"
// @Failure 503 {object} requestresponse.ErrorResponse
// @Router /api/auth/signup [post]
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	user, err := h.UserService.Signup(r.Context(), req.Username, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			sendErrorResponse(w, http.StatusBadRequest, clientMessage(err))
		case errors.Is(err, model.ErrUserAlreadyExists):
			sendErrorResponse(w, http.StatusBadRequest, "пользователь уже существует")
		case errors.Is(err, model.ErrInfrastructure):
			sendErrorResponse(w, http.StatusServiceUnavailable, "сервис временно недоступен")
		default:
			log.Println(err)
			sendErrorResponse(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		}
		return
	}

	writeJSON(w, http.StatusCreated, userResponse(user))
}

// GetUser godoc
// @Summary Данные текущего пользователя
// @Tags Users
// @Produce json
// @Param Authorization header string false "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.UserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/auth/getuser [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		sendErrorResponse(w, http.StatusUnauthorized, "не авторизован")
		return
	}

	user, err := h.UserService.GetUser(r.Context(), claims.Username)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			sendErrorResponse(w, http.StatusNotFound, "пользователь не найден")
		case errors.Is(err, model.ErrInfrastructure):
			sendErrorResponse(w, http.StatusServiceUnavailable, "сервис временно недоступен")
		default:
			log.Println(err)
			sendErrorResponse(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		}
		return
	}

	writeJSON(w, http.StatusOK, userResponse(user))
}

// UpdateName godoc
// @Summary Смена имени текущего пользователя
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.UpdateNameRequest true "Тело запроса"
// @Success 200 {object} requestresponse.MessageResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse "Имя уже занято"
// @Security ApiKeyAuth
// @Router /api/auth/updatename [put]
func (h *UserHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		sendErrorResponse(w, http.StatusUnauthorized, "не авторизован")
		return
	}

	var req requestresponse.UpdateNameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.UserService.UpdateName(r.Context(), claims.Username, req.NewName); err != nil {
		switch {
		case errors.Is(err, model.ErrValidation):
			sendErrorResponse(w, http.StatusBadRequest, clientMessage(err))
		case errors.Is(err, model.ErrNameTaken):
			sendErrorResponse(w, http.StatusConflict, "имя уже занято")
		case errors.Is(err, model.ErrNotFound):
			sendErrorResponse(w, http.StatusNotFound, "пользователь не найден")
		case errors.Is(err, model.ErrInfrastructure):
			sendErrorResponse(w, http.StatusServiceUnavailable, "сервис временно недоступен")
		default:
			log.Println(err)
			sendErrorResponse(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
		}
		return
	}

	writeJSON(w, http.StatusOK, requestresponse.MessageResponse{Response: "ok"})
}

func userResponse(user *model.User) requestresponse.UserResponse {
	resp := requestresponse.UserResponse{}
	resp.Response.ID = user.ID
	resp.Response.Name = user.Name
	resp.Response.Username = user.Username
	return resp
}

// clientMessage убирает служебный префикс сервиса вида "[UserService] " из текста ошибки
func clientMessage(err error) string {
	msg := err.Error()
	if strings.HasPrefix(msg, "[") {
		if i := strings.Index(msg, "] "); i > 0 {
			return msg[i+2:]
		}
	}
	return msg
}
