package utils

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
)

// RandomInt32 generates a secure random 32-bit integer
func RandomInt32() int32 {
	var num int32
	err := binary.Read(rand.Reader, binary.BigEndian, &num)
	if err != nil {
		panic("generate random int32 failed")
	}

	return num
}

// RandomDigits generates a string of n secure random decimal digits
func RandomDigits(n int) string {
	digits := make([]byte, n)
	for i := range digits {
		v, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			panic("generate random digit failed")
		}
		digits[i] = byte('0' + v.Int64())
	}
	return string(digits)
}

// GeneratePaymentReference builds a synthetic payment reference number,
// a fixed prefix plus nine random digits (e.g. "MPE123456789"). It is
// cosmetic; no uniqueness is enforced beyond collision improbability.
func GeneratePaymentReference() string {
	return "MPE" + RandomDigits(9)
}

// GenerateTenantPassword builds a one-time password for a new tenant login
func GenerateTenantPassword() string {
	return fmt.Sprintf("Tenant@%s", RandomDigits(6))
}
