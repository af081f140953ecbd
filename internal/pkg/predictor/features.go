package predictor

import (
	"math"

	"globe/dodrio_loan_eligibility/internal/pkg/consts"
	"globe/dodrio_loan_eligibility/internal/pkg/models"
)

// FeatureRow is the flat derived-feature mapping handed to the models. Built
// fresh per request, never persisted.
type FeatureRow map[string]float64

// BuildFeatures derives the model feature row from a validated applicant
// record. Pure: same input, same row. Missing optional fields default to 0
// or the Unknown category.
func BuildFeatures(a models.Applicant, encoders LabelEncoderSet) FeatureRow {
	totalIncome := asFloat(a["monthly_income"]) + asFloat(a["coapplicant_income"])
	safeIncome := math.Max(totalIncome, 1)
	tenure := math.Max(asFloat(a["loan_tenure_months"]), 1)
	amount := asFloat(a["loan_amount_requested"])
	existingEmis := asFloat(a["existing_emis"])
	creditScore := asFloat(a["credit_score"])
	age := asFloat(a["age"])
	dependents := asFloat(a["dependents"])
	experience := asFloat(a["years_of_experience"])
	existingLoans := asFloat(a["existing_loans_count"])

	monthlyEmiProjected := amount / tenure
	dti := (existingEmis + monthlyEmiProjected) / safeIncome

	propertyValue := asFloat(a["property_value"])
	ltvRatio := 0.0
	if propertyValue > 0 {
		ltvRatio = round4(amount / propertyValue)
	}

	courseType := stringOr(a["course_type"], consts.UnknownCategory)
	institutionTier := stringOr(a["institution_tier"], consts.UnknownCategory)

	row := FeatureRow{
		// Raw applicant features
		"age":                   age,
		"dependents":            dependents,
		"years_of_experience":   experience,
		"monthly_income":        asFloat(a["monthly_income"]),
		"coapplicant_income":    asFloat(a["coapplicant_income"]),
		"credit_score":          creditScore,
		"existing_emis":         existingEmis,
		"existing_loans_count":  existingLoans,
		"loan_amount_requested": amount,
		"loan_tenure_months":    tenure,
		// Derived features
		"debt_to_income_ratio":   round4(dti),
		"ltv_ratio":              ltvRatio,
		"vehicle_age_years":      asFloat(a["vehicle_age_years"]),
		"total_income":           totalIncome,
		"emi_to_income_ratio":    round4(monthlyEmiProjected / safeIncome),
		"loan_to_income_ratio":   round4(amount / safeIncome),
		"income_stability_score": round4(experience * asFloat(a["monthly_income"]) / 1e6),
		"credit_score_band":      float64(CreditScoreBand(creditScore)),
		"has_coapplicant":        boolFeature(asFloat(a["coapplicant_income"]) > 0),
		"income_per_dependent":   round2(totalIncome / (dependents + 1)),
		"monthly_emi_projected":  round2(monthlyEmiProjected),
		"free_monthly_income":    round2(totalIncome - existingEmis - monthlyEmiProjected),
		"is_high_risk":           boolFeature(dti > 0.6 && creditScore < 650 && existingLoans >= 2),
		"age_experience_ratio":   round4(experience / math.Max(age-20, 1)),
		"institution_tier_num":   consts.InstitutionTierScores[institutionTier],
	}

	// Encoded categoricals
	for _, enc := range consts.EncodedColumns {
		value := stringOr(a[enc.Field], consts.UnknownCategory)
		if enc.Field == "course_type" {
			value = courseType
		}
		if enc.Field == "institution_tier" {
			value = institutionTier
		}
		row[enc.Column] = encoders.Encode(enc.Field, value)
	}

	return row
}

// CreditScoreBand buckets a credit score into bands 1 (worst) through 7
// (best) using right-inclusive bin edges.
func CreditScoreBand(score float64) int {
	bins := consts.CreditScoreBins
	for i := 1; i < len(bins); i++ {
		if score > bins[i-1] && score <= bins[i] {
			return i
		}
	}
	return 0
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func stringOr(value interface{}, fallback string) string {
	if s, ok := value.(string); ok && s != "" {
		return s
	}
	return fallback
}

func round4(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

func round2(v float64) float64 {
	return math.Round(v*1e2) / 1e2
}
