package predictor

import (
	"testing"

	"globe/dodrio_loan_eligibility/internal/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestLoanGradeThresholds(t *testing.T) {
	cases := map[float64]string{
		0.95: "A+ (Excellent)",
		0.90: "A+ (Excellent)",
		0.85: "A (Very Good)",
		0.80: "A (Very Good)",
		0.70: "B (Good)",
		0.65: "C (Average)",
		0.60: "C (Average)",
		0.50: "D (Below Average)",
		0.49: "E (High Risk)",
		0.00: "E (High Risk)",
	}
	for probability, grade := range cases {
		assert.Equal(t, grade, LoanGrade(probability), "probability %v", probability)
	}
}

func TestCreditScoreLabel(t *testing.T) {
	cases := map[float64]string{
		820: "Exceptional",
		800: "Exceptional",
		760: "Very Good",
		720: "Good",
		660: "Fair",
		610: "Poor",
		550: "Very Poor",
	}
	for score, label := range cases {
		assert.Equal(t, label, CreditScoreLabel(score), "score %v", score)
	}
}

func TestRejectionReasonsHardThresholds(t *testing.T) {
	row := FeatureRow{
		"debt_to_income_ratio": 0.70,
		"free_monthly_income":  6000,
		"loan_to_income_ratio": 45,
	}
	a := models.Applicant{
		"credit_score":         float64(550),
		"existing_loans_count": float64(4),
	}

	reasons := RejectionReasons(row, a)

	assert.Equal(t, []string{
		"Credit score too low (550 < 600 minimum required)",
		"Debt-to-income ratio too high (0.70 > 0.65 maximum)",
		"Too many existing loans (4 active loans)",
		"Loan amount too high relative to income (ratio: 45.0x)",
	}, reasons)
}

func TestRejectionReasonsSoftThresholds(t *testing.T) {
	row := FeatureRow{
		"debt_to_income_ratio": 0.55,
		"free_monthly_income":  3000,
		"loan_to_income_ratio": 10,
	}
	a := models.Applicant{
		"credit_score":         float64(620),
		"existing_loans_count": float64(3),
	}

	reasons := RejectionReasons(row, a)

	assert.Equal(t, []string{
		"Credit score below preferred threshold (620; prefer 650+)",
		"Debt-to-income ratio elevated (0.55; prefer ≤ 0.50)",
		"Very low free monthly income remaining (₹3,000)",
		"High existing loan burden (3 active loans)",
	}, reasons)
}

func TestRejectionReasonsNegativeFreeIncome(t *testing.T) {
	row := FeatureRow{
		"debt_to_income_ratio": 0.40,
		"free_monthly_income":  -2500,
		"loan_to_income_ratio": 5,
	}
	a := models.Applicant{
		"credit_score":         float64(700),
		"existing_loans_count": float64(0),
	}

	reasons := RejectionReasons(row, a)

	assert.Equal(t, []string{"Insufficient free monthly income after EMIs (₹-2,500)"}, reasons)
}

func TestRejectionReasonsFallbackIsNeverEmpty(t *testing.T) {
	row := FeatureRow{
		"debt_to_income_ratio": 0.30,
		"free_monthly_income":  20000,
		"loan_to_income_ratio": 4,
	}
	a := models.Applicant{
		"credit_score":         float64(760),
		"existing_loans_count": float64(0),
	}

	reasons := RejectionReasons(row, a)

	assert.Equal(t, []string{"Multiple borderline risk factors combined led to rejection"}, reasons)
}

func TestBuildBreakdownApproved(t *testing.T) {
	a := validApplicant("personalLoan")
	row := BuildFeatures(a, testEncoders())

	breakdown := BuildBreakdown(row, a, 0.82, 400000)

	assert.Equal(t, "₹60,000", breakdown.FinancialHealth.TotalMonthlyIncome)
	assert.Equal(t, "₹10,000", breakdown.FinancialHealth.ExistingMonthlyEmis)
	assert.Equal(t, "₹8,333", breakdown.FinancialHealth.ProjectedNewEmi)
	assert.Equal(t, "₹41,667", breakdown.FinancialHealth.FreeMonthlyIncome)
	assert.Equal(t, "30.56%", breakdown.FinancialHealth.DebtToIncomeRatio)
	assert.Equal(t, "13.89%", breakdown.FinancialHealth.EmiToIncomeRatio)

	assert.Equal(t, 720, breakdown.CreditProfile.CreditScore)
	assert.Equal(t, "Good", breakdown.CreditProfile.CreditScoreBand)
	assert.Equal(t, 1, breakdown.CreditProfile.ExistingLoans)
	assert.False(t, breakdown.CreditProfile.IsHighRiskFlag)

	assert.Equal(t, "₹500,000", breakdown.LoanMetrics.AmountRequested)
	assert.Equal(t, "60 months (5 yrs 0 mo)", breakdown.LoanMetrics.Tenure)
	assert.Equal(t, "8.3x", breakdown.LoanMetrics.LoanToIncomeRatio)
	assert.Equal(t, "₹400,000", breakdown.LoanMetrics.SanctionedAmount)
	assert.Equal(t, "₹6,667", breakdown.LoanMetrics.MonthlyEmiIfApproved)

	assert.Equal(t, "82.0%", breakdown.ApprovalConfidence)
}

func TestBuildBreakdownRejected(t *testing.T) {
	a := validApplicant("personalLoan")
	row := BuildFeatures(a, testEncoders())

	breakdown := BuildBreakdown(row, a, 0.31, 0)

	assert.Equal(t, "N/A", breakdown.LoanMetrics.SanctionedAmount)
	assert.Equal(t, "N/A", breakdown.LoanMetrics.MonthlyEmiIfApproved)
	assert.Equal(t, "31.0%", breakdown.ApprovalConfidence)
}
