// Package security holds credential helpers shared by the CLI and the API.
package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	passwordLetters = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	passwordDigits  = "23456789"

	minTemporaryPasswordLength = 8
)

var errTemporaryPasswordLength = errors.New("temporary password must be at least 8 characters")

// TemporaryPassword returns a random password without look-alike characters.
// It always holds at least one letter and one digit.
func TemporaryPassword(length int) (string, error) {
	if length < minTemporaryPasswordLength {
		return "", errTemporaryPasswordLength
	}

	password := make([]byte, length)
	pools := make([]string, length)
	pools[0], pools[1] = passwordLetters, passwordDigits
	for index := 2; index < length; index++ {
		pools[index] = passwordLetters + passwordDigits
	}

	for index, pool := range pools {
		char, err := pick(pool)
		if err != nil {
			return "", err
		}
		password[index] = char
	}

	// Fisher-Yates so the guaranteed characters do not sit at fixed positions.
	for index := length - 1; index > 0; index-- {
		swap, err := uniform(index + 1)
		if err != nil {
			return "", err
		}
		password[index], password[swap] = password[swap], password[index]
	}
	return string(password), nil
}

func pick(alphabet string) (byte, error) {
	position, err := uniform(len(alphabet))
	if err != nil {
		return 0, err
	}
	return alphabet[position], nil
}

func uniform(limit int) (int, error) {
	value, err := rand.Int(rand.Reader, big.NewInt(int64(limit)))
	if err != nil {
		return 0, err
	}
	return int(value.Int64()), nil
}
