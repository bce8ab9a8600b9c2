package random

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func String(n int) string {
	b := make([]byte, n)
	letterLen := big.NewInt(int64(len(letterBytes)))
	for i := range b {
		idx, err := rand.Int(rand.Reader, letterLen)
		if err != nil {
			panic(err)
		}
		b[i] = letterBytes[idx.Int64()]
	}
	return string(b)
}

// Boundary returns a multipart boundary, valid per RFC 2046.
func Boundary() string {
	return "gofile-" + String(30)
}

// Code returns a short random id in the style of a download code.
func Code() string {
	return uuid.NewString()[:6]
}
