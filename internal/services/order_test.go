package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "ORD-2025-0001", FormatOrderNumber(2025, 1))
	assert.Equal(t, "ORD-2025-0042", FormatOrderNumber(2025, 42))
	assert.Equal(t, "ORD-2026-12345", FormatOrderNumber(2026, 12345), "sequence wider than the pad keeps all digits")
}

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "INV-2025-0001", FormatInvoiceNumber(2025, 1))
	assert.Equal(t, "INV-2025-0937", FormatInvoiceNumber(2025, 937))
}
