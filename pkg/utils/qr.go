package utils

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

func QRCodePNG(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}

// QRCodeDataURL renders content as an inline image usable directly in an <img> tag.
func QRCodeDataURL(content string) (string, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
