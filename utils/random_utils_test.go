package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomDigits(t *testing.T) {
	digits := RandomDigits(9)
	assert.Len(t, digits, 9)
	for _, r := range digits {
		assert.True(t, r >= '0' && r <= '9')
	}
}

func TestGeneratePaymentReference(t *testing.T) {
	reference := GeneratePaymentReference()
	assert.True(t, strings.HasPrefix(reference, "MPE"))
	assert.Len(t, reference, len("MPE")+9)
}

func TestGenerateTenantPassword(t *testing.T) {
	password := GenerateTenantPassword()
	assert.True(t, strings.HasPrefix(password, "Tenant@"))
	assert.Len(t, password, len("Tenant@")+6)
}
