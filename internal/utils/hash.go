package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString returns the hex-encoded HMAC-SHA256 digest of data under
// hashKey. The verification service stores code digests instead of raw
// codes and compares them with this function. A fresh HMAC instance is
// created per call; the digests are short-lived so pooling is not worth it.
//
//	signature := utils.HashString("123456", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
