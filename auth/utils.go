package auth

import (
	"crypto/rand"
	"encoding/base64"
)

func randToken(size int) string {
	b := make([]byte, size)
	rand.Read(b)
	return base64.StdEncoding.EncodeToString(b)
}
