package api

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const (
	sealedCookiePrefix = "fc1."
	authCookiePurpose  = "auth"
)

var (
	errInvalidSecureCookieValue = errors.New("invalid secure cookie value")
	secureCookieSalt            = []byte("fitplan.secure-cookie")
)

// secureCookieCodec seals cookie values with XChaCha20-Poly1305 under a key
// derived per purpose, so a value sealed for one cookie never opens as another.
type secureCookieCodec struct {
	secret []byte
}

func newSecureCookieCodec(secretKey []byte) (*secureCookieCodec, error) {
	if len(secretKey) == 0 {
		return nil, errors.New("secure cookie secret key is required")
	}
	return &secureCookieCodec{secret: append([]byte(nil), secretKey...)}, nil
}

func (codec *secureCookieCodec) aeadFor(purpose string) (cipher.AEAD, error) {
	purpose = strings.TrimSpace(purpose)
	if purpose == "" {
		return nil, errors.New("secure cookie purpose is required")
	}

	key := make([]byte, chacha20poly1305.KeySize)
	reader := hkdf.New(sha256.New, codec.secret, secureCookieSalt, []byte(purpose))
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("derive secure cookie key: %w", err)
	}
	return chacha20poly1305.NewX(key)
}

func (codec *secureCookieCodec) seal(purpose string, plaintext []byte) (string, error) {
	aead, err := codec.aeadFor(purpose)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate secure cookie nonce: %w", err)
	}
	sealed := aead.Seal(nonce, nonce, plaintext, nil)
	return sealedCookiePrefix + base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (codec *secureCookieCodec) open(purpose string, rawValue string) ([]byte, error) {
	aead, err := codec.aeadFor(purpose)
	if err != nil {
		return nil, err
	}

	encoded, ok := strings.CutPrefix(strings.TrimSpace(rawValue), sealedCookiePrefix)
	if !ok || encoded == "" {
		return nil, errInvalidSecureCookieValue
	}
	sealed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil || len(sealed) <= aead.NonceSize() {
		return nil, errInvalidSecureCookieValue
	}

	plaintext, err := aead.Open(nil, sealed[:aead.NonceSize()], sealed[aead.NonceSize():], nil)
	if err != nil {
		return nil, errInvalidSecureCookieValue
	}
	return plaintext, nil
}
