package reports

import (
	"context"
	"time"

	"counselink-service/internal/app/contracts"
	"counselink-service/internal/app/models"
	"counselink-service/internal/pkg/constvars"
	"counselink-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportMongoRepository struct {
	Collection *mongo.Collection
}

func NewReportMongoRepository(db *mongo.Client, dbName string) contracts.ReportRepository {
	return &ReportMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionReports),
	}
}

// UpsertByAppointmentID keeps the 1:1 report-per-appointment shape: the
// filter is the appointment id, so concurrent submits converge on a
// single document instead of racing inserts.
func (r *ReportMongoRepository) UpsertByAppointmentID(ctx context.Context, report *models.Report) (*models.Report, error) {
	now := time.Now()
	filter := bson.M{"appointmentId": report.AppointmentID, "deletedAt": nil}
	update := bson.M{
		"$set": bson.M{
			"accountId":       report.AccountID,
			"consultantId":    report.ConsultantID,
			"nameOfPatient":   report.NameOfPatient,
			"age":             report.Age,
			"gender":          report.Gender,
			"condition":       report.Condition,
			"notes":           report.Notes,
			"recommendations": report.Recommendations,
			"status":          report.Status,
			"updatedAt":       now,
		},
		"$setOnInsert": bson.M{
			"_id":           primitive.NewObjectID().Hex(),
			"appointmentId": report.AppointmentID,
			"createdAt":     now,
		},
	}

	var saved models.Report
	err := r.Collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&saved)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &saved, nil
}

func (r *ReportMongoRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Report, error) {
	var report models.Report
	err := r.Collection.FindOne(ctx, bson.M{"appointmentId": appointmentID, "deletedAt": nil}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &report, nil
}
