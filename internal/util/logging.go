package util

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

func LogError(message string, err error) error {
	log.Printf("%s: %v", message, err)
	return fmt.Errorf("%s: %w", message, err)
}

// LogOperation пишет сбой операции с пользователем и временем
// Сюда нельзя передавать токены и пароли.
func LogOperation(operation, principal string, err error) {
	log.Printf("op=%s principal=%q at=%s: %v", operation, principal, time.Now().UTC().Format(time.RFC3339Nano), err)
}

func HandleError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Code    int    `json:"code"`
	}{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	}

	json.NewEncoder(w).Encode(errorResponse)
}
