package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes a link to the customer track-order page.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(orderNumber string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/track-order?order=%s", g.BaseURL, orderNumber)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}

var _ QRGenerator = DefaultQRGenerator{}
