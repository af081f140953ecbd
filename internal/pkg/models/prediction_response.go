package models

// FinancialHealth, CreditProfile and LoanMetrics carry pre-formatted display
// strings; the front end renders them verbatim.
type FinancialHealth struct {
	TotalMonthlyIncome  string `json:"total_monthly_income"`
	ExistingMonthlyEmis string `json:"existing_monthly_emis"`
	ProjectedNewEmi     string `json:"projected_new_emi"`
	FreeMonthlyIncome   string `json:"free_monthly_income"`
	DebtToIncomeRatio   string `json:"debt_to_income_ratio"`
	EmiToIncomeRatio    string `json:"emi_to_income_ratio"`
}

type CreditProfile struct {
	CreditScore     int    `json:"credit_score"`
	CreditScoreBand string `json:"credit_score_band"`
	ExistingLoans   int    `json:"existing_loans"`
	IsHighRiskFlag  bool   `json:"is_high_risk_flag"`
}

type LoanMetrics struct {
	AmountRequested      string `json:"amount_requested"`
	Tenure               string `json:"tenure"`
	LoanToIncomeRatio    string `json:"loan_to_income_ratio"`
	SanctionedAmount     string `json:"sanctioned_amount"`
	MonthlyEmiIfApproved string `json:"monthly_emi_if_approved"`
}

type Breakdown struct {
	FinancialHealth    FinancialHealth `json:"financial_health"`
	CreditProfile      CreditProfile   `json:"credit_profile"`
	LoanMetrics        LoanMetrics     `json:"loan_metrics"`
	ApprovalConfidence string          `json:"approval_confidence"`
}

// PredictionResult is the facade's single result object. Status is "success"
// for a completed prediction; "error" carries only the validation Errors.
type PredictionResult struct {
	Status              string     `json:"status"`
	Errors              []string   `json:"errors,omitempty"`
	LoanType            string     `json:"loan_type,omitempty"`
	ApplicantName       string     `json:"applicant_name,omitempty"`
	Approved            bool       `json:"approved"`
	ApprovalProbability float64    `json:"approval_probability"`
	LoanGrade           string     `json:"loan_grade,omitempty"`
	LoanAmountRequested float64    `json:"loan_amount_requested"`
	SanctionedAmount    int64      `json:"sanctioned_amount"`
	SanctionRatio       float64    `json:"sanction_ratio"`
	MonthlyEmi          float64    `json:"monthly_emi"`
	RejectionReasons    []string   `json:"rejection_reasons"`
	Breakdown           *Breakdown `json:"breakdown,omitempty"`
	ProcessingTimeMs    float64    `json:"processing_time_ms"`
}

// ErrorResponse is the envelope for 4xx/5xx responses.
type ErrorResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// MessageResponse is the envelope for 2xx responses that carry no payload.
type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
