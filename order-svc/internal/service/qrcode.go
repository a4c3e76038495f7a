package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the review page of an order as a PNG.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) ReviewLink(orderID int) string {
	return fmt.Sprintf("%s/review.html?order_id=%d", g.BaseURL, orderID)
}

func (g DefaultQRGenerator) Generate(orderID int) ([]byte, error) {
	return qrcode.Encode(g.ReviewLink(orderID), qrcode.Medium, 256)
}

func ReceiptURL(orderID int) string {
	return fmt.Sprintf("/api/orders/%d/qrcode", orderID)
}
