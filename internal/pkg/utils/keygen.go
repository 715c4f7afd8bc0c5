package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const base62Chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateKey
// A prefix can be passed in to generate a random string.
func GenerateKey(prefix string) (string, error) {
	return randomString(prefix, 48)
}

// ShortID returns a 10-character base62 suffix for record ids. Record ids
// are not secrets; the crypto reader failing would mean the host has no
// entropy source at all, so a panic is acceptable here.
func ShortID() string {
	s, err := randomString("", 10)
	if err != nil {
		panic(err)
	}
	return s
}

func randomString(prefix string, n int) (string, error) {
	var sb strings.Builder
	sb.WriteString(prefix)

	for range n {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(base62Chars))))
		if err != nil {
			return "", err
		}
		sb.WriteByte(base62Chars[num.Int64()])
	}

	return sb.String(), nil
}
