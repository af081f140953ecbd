package consts

// BaseRequiredFields must all be present before any further validation runs.
var BaseRequiredFields = []string{
	"loan_type",
	"age",
	"gender",
	"marital_status",
	"dependents",
	"education",
	"employment_type",
	"years_of_experience",
	"monthly_income",
	"coapplicant_income",
	"credit_score",
	"existing_emis",
	"existing_loans_count",
	"property_area",
	"loan_amount_requested",
	"loan_tenure_months",
}

// NumericFields are the base fields that must hold a number.
var NumericFields = []string{
	"age",
	"monthly_income",
	"coapplicant_income",
	"credit_score",
	"existing_emis",
	"existing_loans_count",
	"loan_amount_requested",
	"loan_tenure_months",
	"dependents",
	"years_of_experience",
}

type CategoricalDomain struct {
	Field   string
	Options []string
}

// CategoricalDomains lists every finite value set, in validation order.
var CategoricalDomains = []CategoricalDomain{
	{Field: "loan_type", Options: []string{"homeLoan", "carLoan", "educationLoan", "personalLoan", "bikeLoan"}},
	{Field: "gender", Options: []string{"Male", "Female"}},
	{Field: "marital_status", Options: []string{"Single", "Married", "Divorced"}},
	{Field: "education", Options: []string{"Graduate", "Post-Graduate", "Undergraduate", "Diploma"}},
	{Field: "employment_type", Options: []string{"Salaried", "Self-Employed", "Business", "Government", "Freelancer"}},
	{Field: "property_area", Options: []string{"Urban", "Semi-Urban", "Rural"}},
	{Field: "course_type", Options: []string{"Engineering", "Medical", "MBA", "Law", "Arts", "Science"}},
	{Field: "institution_tier", Options: []string{"Tier-1", "Tier-2", "Tier-3"}},
}

// LoanTypeRequiredFields: each loan type's additional required fields.
// Personal loans require none.
var LoanTypeRequiredFields = map[string][]string{
	"homeLoan":      {"property_value"},
	"carLoan":       {"vehicle_price", "vehicle_age_years"},
	"bikeLoan":      {"vehicle_price", "vehicle_age_years"},
	"educationLoan": {"course_type", "institution_tier"},
	"personalLoan":  {},
}

type NumericRange struct {
	Field string
	Min   float64
	Max   float64
}

// NumericRanges are closed intervals, checked in this order so violation
// messages come back deterministically.
var NumericRanges = []NumericRange{
	{Field: "age", Min: 18, Max: 70},
	{Field: "credit_score", Min: 300, Max: 900},
	{Field: "monthly_income", Min: 1_000, Max: 10_000_000},
	{Field: "coapplicant_income", Min: 0, Max: 10_000_000},
	{Field: "loan_amount_requested", Min: 1_000, Max: 100_000_000},
	{Field: "loan_tenure_months", Min: 1, Max: 480},
	{Field: "dependents", Min: 0, Max: 10},
	{Field: "existing_loans_count", Min: 0, Max: 20},
	{Field: "existing_emis", Min: 0, Max: 10_000_000},
	{Field: "years_of_experience", Min: 0, Max: 50},
}

// InstitutionTierScores maps education-loan institution tiers to an ordinal.
var InstitutionTierScores = map[string]float64{
	"Tier-1":  3,
	"Tier-2":  2,
	"Tier-3":  1,
	"Unknown": 0,
}

// CreditScoreBins are pd.cut style right-inclusive bin edges; a score in
// (bins[i-1], bins[i]] lands in band i, band 1 worst, band 7 best.
var CreditScoreBins = []float64{0, 550, 600, 650, 700, 750, 800, 901}

// UnknownCategory substitutes unseen or absent categorical values before
// label encoding.
const UnknownCategory = "Unknown"

// EncodedColumns lists the categorical columns fed through label encoders,
// paired with the applicant field each reads from.
var EncodedColumns = []struct {
	Column string
	Field  string
}{
	{Column: "loan_type_enc", Field: "loan_type"},
	{Column: "gender_enc", Field: "gender"},
	{Column: "marital_status_enc", Field: "marital_status"},
	{Column: "education_enc", Field: "education"},
	{Column: "employment_type_enc", Field: "employment_type"},
	{Column: "property_area_enc", Field: "property_area"},
	{Column: "course_type_enc", Field: "course_type"},
	{Column: "institution_tier_enc", Field: "institution_tier"},
}
