package util

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// GeneratePIDBadge renders the generated PID as a QR PNG so it can be printed
// or shared from the dashboard. Size 256 is plenty for screen display.
func GeneratePIDBadge(pid string, size int) ([]byte, error) {
	png, err := qrcode.Encode(pid, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PID badge: %w", err)
	}
	return png, nil
}
