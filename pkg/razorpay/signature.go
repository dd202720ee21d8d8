package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComputeSignature returns the lowercase hex HMAC-SHA256 digest the gateway
// produces over "<orderID>|<paymentID>".
func ComputeSignature(keySecret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(fmt.Sprintf("%s|%s", orderID, paymentID)))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether the presented signature matches the digest
// computed from the order and payment identifiers. The comparison is
// constant-time.
func VerifySignature(keySecret, orderID, paymentID, signature string) bool {
	expected := ComputeSignature(keySecret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
