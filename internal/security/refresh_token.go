package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
)

// RefreshTokenSize : 256 бит случайности в каждом refresh-токене
const RefreshTokenSize = 32

type RefreshTokenGenerator struct {
	random io.Reader
}

func NewRefreshTokenGenerator() *RefreshTokenGenerator {
	return &RefreshTokenGenerator{random: rand.Reader}
}

// Generate возвращает непрозрачную строку, которую отдаем клиенту и храним как есть
func (g *RefreshTokenGenerator) Generate() (string, error) {
	tokenBytes := make([]byte, RefreshTokenSize)
	if _, err := io.ReadFull(g.random, tokenBytes); err != nil {
		return "", fmt.Errorf("ошибка генерации refresh токена: %w", err)
	}

	return base64.StdEncoding.EncodeToString(tokenBytes), nil
}

// RefreshTokensEqual сравнивает токены за постоянное время; пустой токен не равен ничему
func RefreshTokensEqual(stored, presented string) bool {
	if stored == "" || presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}
