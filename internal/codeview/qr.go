package codeview

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultQRSize is the PNG edge length in pixels.
const DefaultQRSize = 512

// WriteQR encodes code into a QR code PNG at path. Low error correction
// leaves room for the longer keyframe snippets.
func WriteQR(code, path string, size int) error {
	if size <= 0 {
		size = DefaultQRSize
	}
	if err := qrcode.WriteFile(code, qrcode.Low, size, path); err != nil {
		return fmt.Errorf("qr code: %w", err)
	}
	return nil
}
