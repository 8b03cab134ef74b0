package utils

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidDataURL = errors.New("payload must be base64 or a base64 data URL")

// DecodeDataURL menerima "data:<mime>;base64,<isi>" atau base64 polos.
// mime kosong kalau input tidak punya prefix data URL.
func DecodeDataURL(raw string) ([]byte, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, "", ErrInvalidDataURL
	}

	var mime string
	payload := raw
	if rest, ok := strings.CutPrefix(raw, "data:"); ok {
		meta, body, found := strings.Cut(rest, ",")
		if !found || body == "" {
			return nil, "", ErrInvalidDataURL
		}
		// Hanya encoding base64 yang didukung
		m, isBase64 := strings.CutSuffix(meta, ";base64")
		if !isBase64 {
			return nil, "", ErrInvalidDataURL
		}
		mime = m
		payload = body
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", ErrInvalidDataURL
	}
	return data, mime, nil
}
