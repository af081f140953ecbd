package predictor

import (
	"fmt"

	"globe/dodrio_loan_eligibility/internal/pkg/common"
	"globe/dodrio_loan_eligibility/internal/pkg/models"
)

type gradeThreshold struct {
	MinProbability float64
	Label          string
}

// gradeThresholds are evaluated high to low, first match wins.
var gradeThresholds = []gradeThreshold{
	{0.90, "A+ (Excellent)"},
	{0.80, "A (Very Good)"},
	{0.70, "B (Good)"},
	{0.60, "C (Average)"},
	{0.50, "D (Below Average)"},
}

const gradeHighRisk = "E (High Risk)"

type bandThreshold struct {
	MinScore float64
	Label    string
}

var creditBandThresholds = []bandThreshold{
	{800, "Exceptional"},
	{750, "Very Good"},
	{700, "Good"},
	{650, "Fair"},
	{600, "Poor"},
}

const creditBandVeryPoor = "Very Poor"

// LoanGrade maps an approval probability to its letter grade.
func LoanGrade(probability float64) string {
	for _, t := range gradeThresholds {
		if probability >= t.MinProbability {
			return t.Label
		}
	}
	return gradeHighRisk
}

// CreditScoreLabel maps a raw credit score to the display band used in the
// breakdown.
func CreditScoreLabel(score float64) string {
	for _, t := range creditBandThresholds {
		if score >= t.MinScore {
			return t.Label
		}
	}
	return creditBandVeryPoor
}

// RejectionReasons evaluates the independent rule groups in fixed order:
// credit score, debt-to-income, free monthly income, existing loan count,
// loan-to-income. Each group contributes at most one message, tightest
// threshold first. The list is never empty for a rejected application.
func RejectionReasons(row FeatureRow, a models.Applicant) []string {
	var reasons []string

	creditScore := asFloat(a["credit_score"])
	dti := row["debt_to_income_ratio"]
	freeIncome := row["free_monthly_income"]
	existingLoans := int(asFloat(a["existing_loans_count"]))
	loanToIncome := row["loan_to_income_ratio"]

	if creditScore < 600 {
		reasons = append(reasons, fmt.Sprintf("Credit score too low (%.0f < 600 minimum required)", creditScore))
	} else if creditScore < 650 {
		reasons = append(reasons, fmt.Sprintf("Credit score below preferred threshold (%.0f; prefer 650+)", creditScore))
	}

	if dti > 0.65 {
		reasons = append(reasons, fmt.Sprintf("Debt-to-income ratio too high (%.2f > 0.65 maximum)", dti))
	} else if dti > 0.50 {
		reasons = append(reasons, fmt.Sprintf("Debt-to-income ratio elevated (%.2f; prefer ≤ 0.50)", dti))
	}

	if freeIncome <= 0 {
		reasons = append(reasons, fmt.Sprintf("Insufficient free monthly income after EMIs (%s)", common.FormatINR(freeIncome)))
	} else if freeIncome < 5_000 {
		reasons = append(reasons, fmt.Sprintf("Very low free monthly income remaining (%s)", common.FormatINR(freeIncome)))
	}

	if existingLoans >= 4 {
		reasons = append(reasons, fmt.Sprintf("Too many existing loans (%d active loans)", existingLoans))
	} else if existingLoans >= 3 {
		reasons = append(reasons, fmt.Sprintf("High existing loan burden (%d active loans)", existingLoans))
	}

	if loanToIncome > 40 {
		reasons = append(reasons, fmt.Sprintf("Loan amount too high relative to income (ratio: %.1fx)", loanToIncome))
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "Multiple borderline risk factors combined led to rejection")
	}

	return reasons
}

// BuildBreakdown assembles the four-section human-readable breakdown.
func BuildBreakdown(row FeatureRow, a models.Applicant, probability float64, sanctioned int64) *models.Breakdown {
	tenure := int(asFloat(a["loan_tenure_months"]))

	sanctionedDisplay := "N/A"
	emiIfApproved := "N/A"
	if sanctioned > 0 {
		sanctionedDisplay = common.FormatINR(float64(sanctioned))
		emiIfApproved = common.FormatINR(float64(sanctioned) / float64(tenure))
	}

	return &models.Breakdown{
		FinancialHealth: models.FinancialHealth{
			TotalMonthlyIncome:  common.FormatINR(row["total_income"]),
			ExistingMonthlyEmis: common.FormatINR(asFloat(a["existing_emis"])),
			ProjectedNewEmi:     common.FormatINR(row["monthly_emi_projected"]),
			FreeMonthlyIncome:   common.FormatINR(row["free_monthly_income"]),
			DebtToIncomeRatio:   common.FormatPercent(row["debt_to_income_ratio"], 2),
			EmiToIncomeRatio:    common.FormatPercent(row["emi_to_income_ratio"], 2),
		},
		CreditProfile: models.CreditProfile{
			CreditScore:     int(asFloat(a["credit_score"])),
			CreditScoreBand: CreditScoreLabel(asFloat(a["credit_score"])),
			ExistingLoans:   int(asFloat(a["existing_loans_count"])),
			IsHighRiskFlag:  row["is_high_risk"] == 1,
		},
		LoanMetrics: models.LoanMetrics{
			AmountRequested:      common.FormatINR(asFloat(a["loan_amount_requested"])),
			Tenure:               common.FormatTenure(tenure),
			LoanToIncomeRatio:    fmt.Sprintf("%.1fx", row["loan_to_income_ratio"]),
			SanctionedAmount:     sanctionedDisplay,
			MonthlyEmiIfApproved: emiIfApproved,
		},
		ApprovalConfidence: common.FormatPercent(probability, 1),
	}
}
