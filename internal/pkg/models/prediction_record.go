package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PredictionRecord is the audit-trail document persisted per prediction.
type PredictionRecord struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	RequestID           string             `bson:"requestId" json:"request_id"`
	LoanType            string             `bson:"loanType" json:"loan_type"`
	ApplicantName       string             `bson:"applicantName" json:"applicant_name"`
	Approved            bool               `bson:"approved" json:"approved"`
	ApprovalProbability float64            `bson:"approvalProbability" json:"approval_probability"`
	LoanGrade           string             `bson:"loanGrade" json:"loan_grade"`
	LoanAmountRequested float64            `bson:"loanAmountRequested" json:"loan_amount_requested"`
	SanctionedAmount    int64              `bson:"sanctionedAmount" json:"sanctioned_amount"`
	SanctionRatio       float64            `bson:"sanctionRatio" json:"sanction_ratio"`
	MonthlyEmi          float64            `bson:"monthlyEmi" json:"monthly_emi"`
	RejectionReasons    []string           `bson:"rejectionReasons" json:"rejection_reasons"`
	ProcessingTimeMs    float64            `bson:"processingTimeMs" json:"processing_time_ms"`
	EventPublished      bool               `bson:"eventPublished" json:"event_published"`
	CreatedAt           time.Time          `bson:"createdAt" json:"created_at"`
}

// PredictionSummary aggregates the decisions taken inside a time window.
type PredictionSummary struct {
	Since      time.Time        `json:"since"`
	Total      int64            `json:"total"`
	Approved   int64            `json:"approved"`
	Rejected   int64            `json:"rejected"`
	ByLoanType map[string]int64 `json:"by_loan_type"`
}

// DecisionEvent is the Kafka message produced for every completed prediction.
type DecisionEvent struct {
	RequestID           string    `json:"request_id"`
	LoanType            string    `json:"loan_type"`
	Approved            bool      `json:"approved"`
	ApprovalProbability float64   `json:"approval_probability"`
	LoanGrade           string    `json:"loan_grade"`
	SanctionedAmount    int64     `json:"sanctioned_amount"`
	CreatedAt           time.Time `json:"created_at"`
}

// DecisionNotification is the Pub/Sub payload for the applicant-facing
// notification channel.
type DecisionNotification struct {
	RequestID     string `json:"request_id"`
	ApplicantName string `json:"applicant_name"`
	LoanType      string `json:"loan_type"`
	Approved      bool   `json:"approved"`
	LoanGrade     string `json:"loan_grade"`
	Summary       string `json:"summary"`
}
