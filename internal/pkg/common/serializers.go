package common

import (
	"fmt"
	"math"
	"strings"

	"globe/dodrio_loan_eligibility/internal/pkg/models"
)

// FormatINR renders an amount as a rupee display string with thousands
// grouping and no decimals, e.g. ₹4,000,000. Negative amounts keep the sign
// ahead of the symbol's value: ₹-1,234.
func FormatINR(amount float64) string {
	return "₹" + GroupThousands(int64(math.Round(amount)))
}

// GroupThousands inserts comma separators into an integer's decimal form.
func GroupThousands(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + strings.Join(groups, ",")
}

// FormatPercent renders a 0–1 ratio as a percentage string with the given
// number of decimals, e.g. FormatPercent(0.1667, 2) == "16.67%".
func FormatPercent(ratio float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, ratio*100)
}

// FormatTenure renders a month count as "N months (Y yrs M mo)".
func FormatTenure(months int) string {
	return fmt.Sprintf("%d months (%d yrs %d mo)", months, months/12, months%12)
}

// SerializeErrorResponse builds the standard error envelope.
func SerializeErrorResponse(message string, errors []string) models.ErrorResponse {
	return models.ErrorResponse{
		Status:  "error",
		Message: message,
		Errors:  errors,
	}
}

// SerializeSuccessResponse builds the standard payload-free success envelope.
func SerializeSuccessResponse(message string) models.MessageResponse {
	return models.MessageResponse{
		Status:  "success",
		Message: message,
	}
}
