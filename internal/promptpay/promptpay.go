// Package promptpay builds Thai PromptPay QR payloads in the EMVCo
// merchant-presented format.
package promptpay

import (
	"errors"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

var (
	ErrInvalidMobile = errors.New("mobile must be 10 digits")
	ErrInvalidAmount = errors.New("amount must not be negative")
)

const (
	promptPayAID = "A000000677010111"
	currencyTHB  = "764"
	countryTH    = "TH"
	// qrModulePixels is the rendered size of one QR module; go-qrcode treats
	// negative sizes as pixels per module.
	qrModulePixels = -8
)

// Payload returns the tag-length-value string for a 10 digit Thai mobile
// number and an amount in satang, terminated by its CRC (tag 63).
func Payload(mobile string, amountSatang int64) (string, error) {
	if len(mobile) != 10 || strings.Trim(mobile, "0123456789") != "" {
		return "", ErrInvalidMobile
	}
	if amountSatang < 0 {
		return "", ErrInvalidAmount
	}

	// Mobile proxies drop the leading zero and carry the 0066 country prefix.
	proxy := "0066" + mobile[1:]
	merchant := tlv("00", promptPayAID) + tlv("01", proxy)

	var builder strings.Builder
	builder.WriteString(tlv("00", "01"))
	builder.WriteString(tlv("01", "12"))
	builder.WriteString(tlv("29", merchant))
	builder.WriteString(tlv("53", currencyTHB))
	builder.WriteString(tlv("54", FormatAmount(amountSatang)))
	builder.WriteString(tlv("58", countryTH))
	builder.WriteString("6304")

	body := builder.String()
	return body + fmt.Sprintf("%04X", CRC16CCITTFalse([]byte(body))), nil
}

// FormatAmount renders satang as a baht amount with two decimals.
func FormatAmount(amountSatang int64) string {
	return fmt.Sprintf("%d.%02d", amountSatang/100, amountSatang%100)
}

// QRCodePNG renders the payload as a PNG image.
func QRCodePNG(payload string) ([]byte, error) {
	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return code.PNG(qrModulePixels)
}

// CRC16CCITTFalse is CRC-16 with polynomial 0x1021, initial value 0xFFFF,
// no reflection and no final xor.
func CRC16CCITTFalse(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, value := range data {
		crc ^= uint16(value) << 8
		for range 8 {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

func tlv(tag string, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}
