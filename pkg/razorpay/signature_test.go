package razorpay

import (
	"encoding/hex"
	"testing"
)

func TestComputeSignatureDeterministic(t *testing.T) {
	first := ComputeSignature("key-secret", "order_abc", "pay_xyz")
	second := ComputeSignature("key-secret", "order_abc", "pay_xyz")

	if first != second {
		t.Fatalf("same inputs produced different signatures: %s vs %s", first, second)
	}
	if len(first) != hex.EncodedLen(32) {
		t.Fatalf("expected 64 hex chars, got %d", len(first))
	}
	if _, err := hex.DecodeString(first); err != nil {
		t.Fatalf("signature is not valid hex: %v", err)
	}
}

func TestVerifySignatureAccepts(t *testing.T) {
	sig := ComputeSignature("key-secret", "order_abc", "pay_xyz")
	if !VerifySignature("key-secret", "order_abc", "pay_xyz", sig) {
		t.Fatal("valid signature rejected")
	}
}

func TestVerifySignatureRejectsTampering(t *testing.T) {
	sig := ComputeSignature("key-secret", "order_abc", "pay_xyz")

	// Flip one character of the signature.
	tampered := []byte(sig)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}
	if VerifySignature("key-secret", "order_abc", "pay_xyz", string(tampered)) {
		t.Fatal("tampered signature accepted")
	}

	if VerifySignature("key-secret", "order_other", "pay_xyz", sig) {
		t.Fatal("signature accepted for a different order id")
	}
	if VerifySignature("key-secret", "order_abc", "pay_other", sig) {
		t.Fatal("signature accepted for a different payment id")
	}
	if VerifySignature("other-secret", "order_abc", "pay_xyz", sig) {
		t.Fatal("signature accepted under a different key secret")
	}
}
