package appointments

import (
	"context"
	"time"

	"counselink-service/internal/app/contracts"
	"counselink-service/internal/app/models"
	"counselink-service/internal/pkg/constvars"
	"counselink-service/internal/pkg/dto/requests"
	"counselink-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	now := time.Now()
	appointment.ID = primitive.NewObjectID().Hex()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	_, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return appointment.ID, nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	if _, err := primitive.ObjectIDFromHex(appointmentID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, bson.M{"_id": appointmentID, "deletedAt": nil}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindByCustomerID(ctx context.Context, customerID string, filter *requests.AppointmentFilter, page, pageSize int) ([]models.Appointment, int, error) {
	return r.findByActor(ctx, "customerId", customerID, filter, page, pageSize)
}

func (r *AppointmentMongoRepository) FindByConsultantID(ctx context.Context, consultantID string, filter *requests.AppointmentFilter, page, pageSize int) ([]models.Appointment, int, error) {
	return r.findByActor(ctx, "consultantId", consultantID, filter, page, pageSize)
}

func (r *AppointmentMongoRepository) findByActor(ctx context.Context, field, actorID string, filter *requests.AppointmentFilter, page, pageSize int) ([]models.Appointment, int, error) {
	query := bson.M{field: actorID, "deletedAt": nil}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "dateBooking", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, int(total), nil
}

// TransitionStatus performs the optimistic-concurrency write: the filter
// pins both the expected status and version, and the version increments
// with the status change, so a duplicate submit matches nothing.
func (r *AppointmentMongoRepository) TransitionStatus(ctx context.Context, appointmentID string, expected models.AppointmentStatus, expectedVersion int64, next models.AppointmentStatus) (*models.Appointment, error) {
	if _, err := primitive.ObjectIDFromHex(appointmentID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id":       appointmentID,
		"status":    expected,
		"version":   expectedVersion,
		"deletedAt": nil,
	}
	update := bson.M{
		"$set": bson.M{
			"status":    next,
			"updatedAt": time.Now(),
		},
		"$inc": bson.M{"version": 1},
	}

	var appointment models.Appointment
	err := r.Collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) SetMeetLink(ctx context.Context, appointmentID, meetLink string) error {
	if _, err := primitive.ObjectIDFromHex(appointmentID); err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{
		"$set": bson.M{
			"meetLink":  meetLink,
			"updatedAt": time.Now(),
		},
	}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": appointmentID, "deletedAt": nil}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) SetRescheduledTo(ctx context.Context, appointmentID, newAppointmentID string) error {
	update := bson.M{
		"$set": bson.M{
			"rescheduledTo": newAppointmentID,
			"updatedAt":     time.Now(),
		},
	}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": appointmentID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) DeleteByID(ctx context.Context, appointmentID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": appointmentID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
