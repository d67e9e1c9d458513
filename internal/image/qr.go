package imagepkg

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	minQRSize = 64
	maxQRSize = 1024
)

// ShareQR encodes a link to a rendered card as a PNG QR code. size is
// clamped to [64, 1024] pixels.
func ShareQR(link string, size int) ([]byte, error) {
	if link == "" {
		return nil, errors.New("qr: empty link")
	}
	q, err := qrcode.New(link, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}
	return q.PNG(min(max(size, minQRSize), maxQRSize))
}
