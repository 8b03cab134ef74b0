package advisor

import (
	"errors"
	"strings"

	"sarthi-backend/internal/models"
	"sarthi-backend/pkg/utils"
)

const defaultImageMIME = "image/jpeg"

var ErrInvalidImage = errors.New("image must be a base64 data URL")

// DecodeDataURL mengubah "data:image/png;base64,xxxx" menjadi models.Image.
// Base64 polos tanpa prefix juga diterima sebagai image/jpeg.
func DecodeDataURL(dataURL string) (models.Image, error) {
	dataURL = strings.TrimSpace(dataURL)
	data, mime, err := utils.DecodeDataURL(dataURL)
	if err != nil {
		return models.Image{}, ErrInvalidImage
	}
	if mime == "" {
		mime = defaultImageMIME
	}
	return models.Image{MIMEType: mime, Data: data, DataURL: dataURL}, nil
}
