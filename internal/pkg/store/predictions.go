package store

import (
	"context"
	"fmt"
	"time"

	"globe/dodrio_loan_eligibility/internal/pkg/consts"
	"globe/dodrio_loan_eligibility/internal/pkg/db"
	"globe/dodrio_loan_eligibility/internal/pkg/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PredictionsRepository persists and retrieves the per-request audit trail.
type PredictionsRepository struct {
	repo *MongoRepository[models.PredictionRecord]
}

func NewPredictionsRepository() *PredictionsRepository {
	if db.MDB == nil {
		return &PredictionsRepository{}
	}
	collection := db.MDB.Database.Collection(consts.PredictionsCollection)
	return &PredictionsRepository{repo: NewMongoRepository[models.PredictionRecord](collection)}
}

// Insert stores one prediction record. CreatedAt is stamped here if the
// caller left it zero.
func (r *PredictionsRepository) Insert(ctx context.Context, record models.PredictionRecord) error {
	if r.repo == nil {
		return fmt.Errorf("predictions repository is not connected")
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	_, err := r.repo.Create(record)
	return err
}

// FindByRequestID returns the stored record for a request id, or
// ErrorPredictionNotFound when no document matches.
func (r *PredictionsRepository) FindByRequestID(ctx context.Context, requestID string) (models.PredictionRecord, error) {
	var record models.PredictionRecord
	if r.repo == nil {
		return record, fmt.Errorf("predictions repository is not connected")
	}
	record, err := r.repo.Read(bson.M{"requestId": requestID})
	if err == mongo.ErrNoDocuments {
		return record, fmt.Errorf("%w: %s", consts.ErrorPredictionNotFound, requestID)
	}
	return record, err
}

// MarkEventPublished flags a record whose decision event made it onto the
// broker, so replays can tell delivered decisions from dropped ones.
func (r *PredictionsRepository) MarkEventPublished(ctx context.Context, requestID string) error {
	if r.repo == nil {
		return fmt.Errorf("predictions repository is not connected")
	}
	return r.repo.Update(bson.M{"requestId": requestID}, bson.M{"eventPublished": true})
}

// DeleteByRequestID removes one audit record, for data-erasure requests.
// Returns ErrorPredictionNotFound when no document matches.
func (r *PredictionsRepository) DeleteByRequestID(ctx context.Context, requestID string) error {
	if r.repo == nil {
		return fmt.Errorf("predictions repository is not connected")
	}
	deleted, err := r.repo.Delete(bson.M{"requestId": requestID})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: %s", consts.ErrorPredictionNotFound, requestID)
	}
	return nil
}

// CountSince counts records created at or after the cutoff, optionally only
// the approved ones.
func (r *PredictionsRepository) CountSince(ctx context.Context, since time.Time, approvedOnly bool) (int64, error) {
	if r.repo == nil {
		return 0, fmt.Errorf("predictions repository is not connected")
	}
	filter := bson.M{"createdAt": bson.M{"$gte": since}}
	if approvedOnly {
		filter["approved"] = true
	}
	return r.repo.CountDocuments(filter)
}

// FindSince returns the records created at or after the cutoff.
func (r *PredictionsRepository) FindSince(ctx context.Context, since time.Time) ([]models.PredictionRecord, error) {
	if r.repo == nil {
		return nil, fmt.Errorf("predictions repository is not connected")
	}
	return r.repo.FindAll(bson.M{"createdAt": bson.M{"$gte": since}})
}
