package validators

import (
	"errors"
	"unicode/utf8"
)

// Границы длины токена заказа
const (
	MinTokenLength = 10
	MaxTokenLength = 100
)

var ErrTokenTooShort = errors.New("token too short")

// TokenResult - результат проверки токена
type TokenResult struct {
	Token string
	// Oversized - токен длиннее обычного, но всё равно передаётся дальше
	Oversized bool
}

// ValidateToken проверяет длину токена-кандидата
func ValidateToken(token string) (TokenResult, error) {
	length := utf8.RuneCountInString(token)
	if length < MinTokenLength {
		return TokenResult{}, ErrTokenTooShort
	}
	return TokenResult{Token: token, Oversized: length > MaxTokenLength}, nil
}
