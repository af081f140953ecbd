package predictor

import (
	"fmt"

	"globe/dodrio_loan_eligibility/internal/pkg/consts"
	"globe/dodrio_loan_eligibility/internal/pkg/models"
)

// Validate runs the six validation stages over a raw applicant record and
// returns one message per violation; an empty slice means the record is
// valid. Stages 1 and 2 short-circuit: without the base fields, or with
// non-numeric values in them, the later checks would only produce cascading
// nonsense.
func Validate(a models.Applicant) []string {
	var errors []string

	// 1. Required base fields
	for _, field := range consts.BaseRequiredFields {
		if _, ok := a[field]; !ok {
			errors = append(errors, fmt.Sprintf("Missing required field: '%s'", field))
		}
	}
	if len(errors) > 0 {
		return errors
	}

	// 2. Type checks for numeric fields
	for _, field := range consts.NumericFields {
		if value, ok := a[field]; ok && !isNumber(value) {
			errors = append(errors, fmt.Sprintf("'%s' must be a number, got %T", field, value))
		}
	}
	if len(errors) > 0 {
		return errors
	}

	// 3. Categorical validation
	for _, domain := range consts.CategoricalDomains {
		value, ok := a[domain.Field]
		if !ok {
			continue
		}
		if !isMember(domain.Options, value) {
			errors = append(errors, fmt.Sprintf("'%s' must be one of %v, got %v", domain.Field, domain.Options, value))
		}
	}

	// 4. Loan-type-specific required fields
	if loanType, ok := a["loan_type"].(string); ok {
		for _, field := range consts.LoanTypeRequiredFields[loanType] {
			if _, present := a[field]; !present {
				errors = append(errors, fmt.Sprintf("'%s' is required for %s", field, loanType))
			}
		}
	}

	// 5. Numeric range validation
	for _, r := range consts.NumericRanges {
		value, ok := a[r.Field]
		if !ok || !isNumber(value) {
			continue
		}
		n := asFloat(value)
		if n < r.Min || n > r.Max {
			errors = append(errors, fmt.Sprintf("'%s' must be between %v and %v, got %v", r.Field, r.Min, r.Max, n))
		}
	}

	// 6. Business logic cross-field checks
	if isNumber(a["monthly_income"]) && isNumber(a["coapplicant_income"]) {
		if asFloat(a["monthly_income"])+asFloat(a["coapplicant_income"]) <= 0 {
			errors = append(errors, "Total income (monthly_income + coapplicant_income) must be positive")
		}
	}

	return errors
}

func isNumber(value interface{}) bool {
	switch value.(type) {
	case float64, float32, int, int32, int64:
		return true
	}
	return false
}

func asFloat(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func isMember(options []string, value interface{}) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}
