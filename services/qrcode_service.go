// services/qrcode_service.go
package services

import (
	"errors"

	"github.com/skip2/go-qrcode"
)

// QRCodeEncoder abstracts the QR encoder so tests can substitute failures.
type QRCodeEncoder func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// GenerateQRCode renders a PNG QR code pointing at the given URL. Used for
// trial-event registration flyers.
func GenerateQRCode(url string, size int, encode QRCodeEncoder) ([]byte, error) {
	if url == "" {
		return nil, errors.New("invalid url: must not be empty")
	}
	if size <= 0 {
		return nil, errors.New("invalid size: must be positive")
	}
	if encode == nil {
		encode = qrcode.Encode
	}
	return encode(url, qrcode.Medium, size)
}
