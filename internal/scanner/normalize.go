package scanner

import (
	"encoding/json"
	"errors"
	"strings"
)

// Префикс, который дописывают некоторые 2D-сканеры перед данными
const scannerArtifact = "Штрихкод"

// Тип QR-кода выдачи в старом JSON формате
const pickupType = "pickup"

var (
	ErrWrongQRType = errors.New("wrong QR code type")
	ErrEmptyScan   = errors.New("empty scan")
)

// envelope - старый формат QR-кода {"token": "...", "type": "pickup"}
type envelope struct {
	Token json.RawMessage `json:"token"`
	Type  json.RawMessage `json:"type"`
}

// Clean убирает артефакты сканера и все пробельные символы
func Clean(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, scannerArtifact, "")
	cleaned = strings.Join(strings.Fields(cleaned), "")
	return strings.TrimSpace(cleaned)
}

// Normalize - получение токена-кандидата из сырых данных сканирования.
// Если данные похожи на JSON объект, токен достаётся из конверта,
// иначе токеном считается вся очищенная строка.
func Normalize(raw string) (string, error) {
	cleaned := Clean(raw)
	if cleaned == "" {
		return "", ErrEmptyScan
	}

	if strings.HasPrefix(cleaned, "{") && strings.HasSuffix(cleaned, "}") {
		var env envelope
		if err := json.Unmarshal([]byte(cleaned), &env); err == nil {
			qrType := rawString(env.Type)
			if qrType != "" && qrType != pickupType {
				return "", ErrWrongQRType
			}
			if token := rawString(env.Token); token != "" {
				return token, nil
			}
		}
	}
	return cleaned, nil
}

// rawString - строковое значение JSON поля: строки раскавычиваются,
// числа и прочие скаляры берутся как есть, null и отсутствие - пустая строка
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
