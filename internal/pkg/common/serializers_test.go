package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "₹0", FormatINR(0))
	assert.Equal(t, "₹999", FormatINR(999))
	assert.Equal(t, "₹1,000", FormatINR(1000))
	assert.Equal(t, "₹41,667", FormatINR(41666.67))
	assert.Equal(t, "₹4,000,000", FormatINR(4000000))
	assert.Equal(t, "₹-1,234", FormatINR(-1234))
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "0", GroupThousands(0))
	assert.Equal(t, "100", GroupThousands(100))
	assert.Equal(t, "1,234,567", GroupThousands(1234567))
	assert.Equal(t, "-12,345", GroupThousands(-12345))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "16.67%", FormatPercent(0.1667, 2))
	assert.Equal(t, "82.0%", FormatPercent(0.82, 1))
	assert.Equal(t, "100.00%", FormatPercent(1, 2))
}

func TestFormatTenure(t *testing.T) {
	assert.Equal(t, "6 months (0 yrs 6 mo)", FormatTenure(6))
	assert.Equal(t, "60 months (5 yrs 0 mo)", FormatTenure(60))
	assert.Equal(t, "66 months (5 yrs 6 mo)", FormatTenure(66))
}

func TestSerializeErrorResponse(t *testing.T) {
	resp := SerializeErrorResponse("Invalid request payload", []string{"bad field"})

	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Invalid request payload", resp.Message)
	assert.Equal(t, []string{"bad field"}, resp.Errors)
}
