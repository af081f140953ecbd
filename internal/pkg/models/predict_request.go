package models

import (
	"fmt"
	"regexp"
	"strings"
)

// Applicant is the flat record consumed by the prediction pipeline. Values
// are raw (numbers as float64, categoricals as strings) so the pipeline's
// own validator can re-check everything the HTTP schema already enforced.
type Applicant map[string]interface{}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// PredictRequest is the POST body of the prediction endpoint. Binding tags
// mirror the ranges and enums the front end contract promises; cross-field
// rules live in Validate.
type PredictRequest struct {
	LoanType          string `json:"loan_type" binding:"required,oneof=homeLoan carLoan bikeLoan educationLoan personalLoan"`
	Name              string `json:"name" binding:"omitempty,max=100"`
	Age               int    `json:"age" binding:"required,gte=18,lte=70"`
	Gender            string `json:"gender" binding:"required,oneof=Male Female"`
	MaritalStatus     string `json:"marital_status" binding:"required,oneof=Single Married Divorced"`
	Dependents        *int   `json:"dependents" binding:"omitempty,gte=0,lte=10"`
	Education         string `json:"education" binding:"required,oneof=Graduate Post-Graduate Undergraduate Diploma"`
	EmploymentType    string `json:"employment_type" binding:"required,oneof=Salaried Self-Employed Business Government Freelancer"`
	YearsOfExperience *int   `json:"years_of_experience" binding:"required,gte=0,lte=50"`
	PropertyArea      string `json:"property_area" binding:"required,oneof=Urban Semi-Urban Rural"`

	MonthlyIncome      float64 `json:"monthly_income" binding:"required,gte=1"`
	CoapplicantIncome  float64 `json:"coapplicant_income" binding:"gte=0"`
	CreditScore        int     `json:"credit_score" binding:"required,gte=300,lte=900"`
	ExistingEmis       float64 `json:"existing_emis" binding:"gte=0"`
	ExistingLoansCount int     `json:"existing_loans_count" binding:"gte=0,lte=20"`

	LoanAmountRequested float64 `json:"loan_amount_requested" binding:"required,gte=10000"`
	LoanTenureMonths    int     `json:"loan_tenure_months" binding:"required,gte=6,lte=480"`

	PropertyValue   *float64 `json:"property_value" binding:"omitempty,gte=1"`
	VehiclePrice    *float64 `json:"vehicle_price" binding:"omitempty,gte=1"`
	VehicleAgeYears *int     `json:"vehicle_age_years" binding:"omitempty,gte=0,lte=30"`
	CourseType      string   `json:"course_type" binding:"omitempty,oneof=Engineering Medical MBA Law Arts Science"`
	InstitutionTier string   `json:"institution_tier" binding:"omitempty,oneof=Tier-1 Tier-2 Tier-3"`
}

var loanTypeConditionalFields = map[string][]string{
	"homeLoan":      {"property_value"},
	"carLoan":       {"vehicle_price", "vehicle_age_years"},
	"bikeLoan":      {"vehicle_price", "vehicle_age_years"},
	"educationLoan": {"course_type", "institution_tier"},
	"personalLoan":  {},
}

// Validate enforces the cross-field rules that binding tags cannot express.
func (r *PredictRequest) Validate() error {
	var missing []string
	for _, field := range loanTypeConditionalFields[r.LoanType] {
		if !r.hasConditionalField(field) {
			missing = append(missing, fmt.Sprintf("'%s'", field))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("the following fields are required for '%s': %s", r.LoanType, strings.Join(missing, ", "))
	}

	if r.MonthlyIncome+r.CoapplicantIncome <= 0 {
		return fmt.Errorf("total income (monthly_income + coapplicant_income) must be greater than 0")
	}

	instalment := r.LoanAmountRequested / float64(r.LoanTenureMonths)
	if instalment < 100 {
		return fmt.Errorf("loan amount %.0f over %d months results in an unrealistically low monthly instalment (%.0f); review the loan amount or tenure", r.LoanAmountRequested, r.LoanTenureMonths, instalment)
	}

	return nil
}

func (r *PredictRequest) hasConditionalField(field string) bool {
	switch field {
	case "property_value":
		return r.PropertyValue != nil
	case "vehicle_price":
		return r.VehiclePrice != nil
	case "vehicle_age_years":
		return r.VehicleAgeYears != nil
	case "course_type":
		return r.CourseType != ""
	case "institution_tier":
		return r.InstitutionTier != ""
	}
	return false
}

// ToApplicant flattens the validated request into the record the pipeline
// expects. Conditional fields are included only when provided so the
// pipeline's own presence checks stay meaningful.
func (r *PredictRequest) ToApplicant() Applicant {
	dependents := 0
	if r.Dependents != nil {
		dependents = *r.Dependents
	}
	experience := 0
	if r.YearsOfExperience != nil {
		experience = *r.YearsOfExperience
	}

	a := Applicant{
		"loan_type":             r.LoanType,
		"age":                   float64(r.Age),
		"gender":                r.Gender,
		"marital_status":        r.MaritalStatus,
		"dependents":            float64(dependents),
		"education":             r.Education,
		"employment_type":       r.EmploymentType,
		"years_of_experience":   float64(experience),
		"monthly_income":        r.MonthlyIncome,
		"coapplicant_income":    r.CoapplicantIncome,
		"credit_score":          float64(r.CreditScore),
		"existing_emis":         r.ExistingEmis,
		"existing_loans_count":  float64(r.ExistingLoansCount),
		"property_area":         r.PropertyArea,
		"loan_amount_requested": r.LoanAmountRequested,
		"loan_tenure_months":    float64(r.LoanTenureMonths),
	}

	if name := SanitizeName(r.Name); name != "" {
		a["name"] = name
	}
	if r.PropertyValue != nil {
		a["property_value"] = *r.PropertyValue
	}
	if r.VehiclePrice != nil {
		a["vehicle_price"] = *r.VehiclePrice
	}
	if r.VehicleAgeYears != nil {
		a["vehicle_age_years"] = float64(*r.VehicleAgeYears)
	}
	if r.CourseType != "" {
		a["course_type"] = r.CourseType
	}
	if r.InstitutionTier != "" {
		a["institution_tier"] = r.InstitutionTier
	}

	return a
}

// SanitizeName strips HTML tags and collapses whitespace. Display-only field,
// but it round-trips back to the browser.
func SanitizeName(name string) string {
	clean := htmlTagPattern.ReplaceAllString(name, "")
	return strings.Join(strings.Fields(clean), " ")
}
