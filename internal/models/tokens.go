package models

const tokenPreviewLen = 16

// MaskToken - укорачивает токен для вывода в логи
func MaskToken(token string) string {
	runes := []rune(token)
	if len(runes) <= tokenPreviewLen {
		return token
	}
	return string(runes[:tokenPreviewLen]) + "..."
}
