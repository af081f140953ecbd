package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"globe/dodrio_loan_eligibility/configs"
	"globe/dodrio_loan_eligibility/internal/pkg/logger"
	"globe/dodrio_loan_eligibility/internal/pkg/models"
	"globe/dodrio_loan_eligibility/internal/pkg/pubsub"
	"globe/dodrio_loan_eligibility/internal/pkg/utils/worker"
)

// RecordStore persists prediction records and tracks event delivery.
type RecordStore interface {
	Insert(ctx context.Context, record models.PredictionRecord) error
	MarkEventPublished(ctx context.Context, requestID string) error
}

// DecisionPublisher emits decision events onto the broker.
type DecisionPublisher interface {
	PublishDecision(ctx context.Context, event models.DecisionEvent) error
}

// Executor schedules the async audit work. Satisfied by the worker pool; tests
// substitute a synchronous one.
type Executor interface {
	Submit(task worker.Task)
}

// AuditService fans each completed prediction out to the audit trail, the
// decision topic and the notification channel. All sinks are optional; a nil
// sink is skipped so a degraded deployment still serves predictions.
type AuditService struct {
	executor  Executor
	records   RecordStore
	publisher DecisionPublisher
	notifier  pubsub.PubSubPublisherInterface
}

func NewAuditService(executor Executor, records RecordStore, publisher DecisionPublisher, notifier pubsub.PubSubPublisherInterface) *AuditService {
	return &AuditService{
		executor:  executor,
		records:   records,
		publisher: publisher,
		notifier:  notifier,
	}
}

// Record schedules the audit fan-out for one prediction. It returns
// immediately; sink failures are logged, never surfaced to the caller.
func (s *AuditService) Record(ctx context.Context, requestID string, result *models.PredictionResult) {
	if s == nil || s.executor == nil || result == nil || result.Status != "success" {
		return
	}

	record := buildRecord(requestID, result)

	// The request context dies with the response; the fan-out gets its own.
	details, _ := ctx.Value(models.LogDetailsKey).(models.RequestDetails)
	taskCtx := context.WithValue(context.Background(), models.LogDetailsKey, details)

	s.executor.Submit(func() {
		s.persist(taskCtx, record)
		s.publishEvent(taskCtx, record)
		s.notify(taskCtx, record)
	})
}

func (s *AuditService) persist(ctx context.Context, record models.PredictionRecord) {
	if s.records == nil {
		return
	}
	if err := s.records.Insert(ctx, record); err != nil {
		logger.Error(ctx, "Failed to persist prediction record %s: %v", record.RequestID, err)
		return
	}
	logger.Debug(ctx, "Prediction record %s persisted", record.RequestID)
}

func (s *AuditService) publishEvent(ctx context.Context, record models.PredictionRecord) {
	if s.publisher == nil {
		return
	}
	event := models.DecisionEvent{
		RequestID:           record.RequestID,
		LoanType:            record.LoanType,
		Approved:            record.Approved,
		ApprovalProbability: record.ApprovalProbability,
		LoanGrade:           record.LoanGrade,
		SanctionedAmount:    record.SanctionedAmount,
		CreatedAt:           record.CreatedAt,
	}
	if err := s.publisher.PublishDecision(ctx, event); err != nil {
		logger.Error(ctx, "Failed to publish decision event %s: %v", record.RequestID, err)
		return
	}
	if s.records == nil {
		return
	}
	if err := s.records.MarkEventPublished(ctx, record.RequestID); err != nil {
		logger.Error(ctx, "Failed to flag decision event %s as published: %v", record.RequestID, err)
	}
}

func (s *AuditService) notify(ctx context.Context, record models.PredictionRecord) {
	if s.notifier == nil || !configs.PUBSUB_ENABLED {
		return
	}

	notification := models.DecisionNotification{
		RequestID:     record.RequestID,
		ApplicantName: record.ApplicantName,
		LoanType:      record.LoanType,
		Approved:      record.Approved,
		LoanGrade:     record.LoanGrade,
		Summary:       notificationSummary(record),
	}
	payload, err := json.Marshal(notification)
	if err != nil {
		logger.Error(ctx, "Failed to serialize decision notification %s: %v", record.RequestID, err)
		return
	}

	attributes := map[string]string{
		"request_id": record.RequestID,
		"loan_type":  record.LoanType,
	}
	if _, err := s.notifier.Publish(ctx, configs.PUBSUB_TOPIC, payload, attributes); err != nil {
		logger.Error(ctx, "Failed to publish decision notification %s: %v", record.RequestID, err)
	}
}

func buildRecord(requestID string, result *models.PredictionResult) models.PredictionRecord {
	return models.PredictionRecord{
		RequestID:           requestID,
		LoanType:            result.LoanType,
		ApplicantName:       result.ApplicantName,
		Approved:            result.Approved,
		ApprovalProbability: result.ApprovalProbability,
		LoanGrade:           result.LoanGrade,
		LoanAmountRequested: result.LoanAmountRequested,
		SanctionedAmount:    result.SanctionedAmount,
		SanctionRatio:       result.SanctionRatio,
		MonthlyEmi:          result.MonthlyEmi,
		RejectionReasons:    result.RejectionReasons,
		ProcessingTimeMs:    result.ProcessingTimeMs,
		CreatedAt:           time.Now().UTC(),
	}
}

func notificationSummary(record models.PredictionRecord) string {
	if record.Approved {
		return fmt.Sprintf("Your %s application was approved with grade %s", record.LoanType, record.LoanGrade)
	}
	return fmt.Sprintf("Your %s application was not approved", record.LoanType)
}
