package promptpay

import (
	"bytes"
	"errors"
	"testing"
)

func TestCRC16CCITTFalseCheckValue(t *testing.T) {
	if got := CRC16CCITTFalse([]byte("123456789")); got != 0x29B1 {
		t.Fatalf("CRC16CCITTFalse() = %#04x, want 0x29b1", got)
	}
}

func TestPayloadForMobileAndAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{
			name:   "baht with satang",
			amount: 125050,
			want:   "00020101021229370016A00000067701011101130066812345678530376454071250.505802TH6304ABEB",
		},
		{
			name:   "small amount",
			amount: 5,
			want:   "00020101021229370016A00000067701011101130066812345678530376454040.055802TH6304F1A0",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, err := Payload("0812345678", testCase.amount)
			if err != nil {
				t.Fatalf("Payload() unexpected error: %v", err)
			}
			if got != testCase.want {
				t.Fatalf("Payload() = %q, want %q", got, testCase.want)
			}
		})
	}
}

func TestPayloadRejectsInvalidInput(t *testing.T) {
	for _, mobile := range []string{"", "081234567", "08123456789", "08123x5678"} {
		if _, err := Payload(mobile, 100); !errors.Is(err, ErrInvalidMobile) {
			t.Fatalf("Payload(%q) error = %v, want ErrInvalidMobile", mobile, err)
		}
	}
	if _, err := Payload("0812345678", -1); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("Payload() error = %v, want ErrInvalidAmount", err)
	}
}

func TestQRCodePNGWritesImage(t *testing.T) {
	payload, err := Payload("0812345678", 9900)
	if err != nil {
		t.Fatalf("Payload() unexpected error: %v", err)
	}
	image, err := QRCodePNG(payload)
	if err != nil {
		t.Fatalf("QRCodePNG() unexpected error: %v", err)
	}
	if !bytes.HasPrefix(image, []byte("\x89PNG")) {
		t.Fatalf("QRCodePNG() did not return a PNG image")
	}
}
