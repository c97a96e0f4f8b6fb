package requestresponse

// ErrorDetail : детальная информация об ошибке
type ErrorDetail struct {
	Code int    `json:"code" example:"400"`
	Text string `json:"text" example:"for example: invalid login or password"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse : текстовый ответ на успешную операцию
type MessageResponse struct {
	Response string `json:"response" example:"ok"`
}

// UserResponse : данные текущего пользователя
type UserResponse struct {
	Response struct {
		ID       string `json:"id" example:"123e4567-e89b-12d3-a456-426614174000"`
		Name     string `json:"name" example:"Alice"`
		Username string `json:"username" example:"alice@example.com"`
	} `json:"response"`
}

// UpdateNameRequest : тело запроса на смену имени
type UpdateNameRequest struct {
	NewName string `json:"newName" example:"Alice Cooper"`
}
