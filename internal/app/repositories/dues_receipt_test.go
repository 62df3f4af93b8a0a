package repositories

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatReceiptNumber(t *testing.T) {
	assert.Equal(t, "BME/2026/0001", FormatReceiptNumber(2026, 1))
	assert.Equal(t, "BME/2026/0042", FormatReceiptNumber(2026, 42))
	assert.Equal(t, "BME/2026/9999", FormatReceiptNumber(2026, 9999))
	// sequences past four digits keep growing rather than wrapping
	assert.Equal(t, "BME/2026/10000", FormatReceiptNumber(2026, 10000))
}

func TestNewWatermarkCode(t *testing.T) {
	code := NewWatermarkCode()
	assert.True(t, strings.HasPrefix(code, "BME-"))
	assert.Len(t, code, len("BME-")+12)
	assert.Equal(t, strings.ToUpper(code), code)
	assert.NotEqual(t, code, NewWatermarkCode())
}

func TestNewPaymentReference(t *testing.T) {
	ref := NewPaymentReference()
	assert.True(t, strings.HasPrefix(ref, "PAY-"))
	assert.Len(t, ref, len("PAY-")+10)
	assert.Equal(t, strings.ToUpper(ref), ref)
	assert.NotEqual(t, ref, NewPaymentReference())
}
