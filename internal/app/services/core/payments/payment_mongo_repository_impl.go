package payments

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
)

type PaymentMongoRepository struct {
	Collection *mongo.Collection
}

func NewPaymentMongoRepository(db *mongo.Client, dbName string) contracts.PaymentRepository {
	return &PaymentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPayments),
	}
}

func (r *PaymentMongoRepository) CreatePayment(ctx context.Context, payment *models.Payment) (string, error) {
	now := time.Now()
	payment.ID = primitive.NewObjectID().Hex()
	payment.CreatedAt = now
	payment.UpdatedAt = now

	_, err := r.Collection.InsertOne(ctx, payment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return payment.ID, nil
}

func (r *PaymentMongoRepository) FindByID(ctx context.Context, paymentID string) (*models.Payment, error) {
	if _, err := primitive.ObjectIDFromHex(paymentID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return r.findOne(ctx, bson.M{"_id": paymentID, "deletedAt": nil})
}

func (r *PaymentMongoRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Payment, error) {
	return r.findOne(ctx, bson.M{"appointmentId": appointmentID, "deletedAt": nil})
}

func (r *PaymentMongoRepository) FindByPaymentLinkID(ctx context.Context, paymentLinkID string) (*models.Payment, error) {
	return r.findOne(ctx, bson.M{"paymentLinkId": paymentLinkID, "deletedAt": nil})
}

func (r *PaymentMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Payment, error) {
	var payment models.Payment
	err := r.Collection.FindOne(ctx, filter).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &payment, nil
}

func (r *PaymentMongoRepository) UpdateStatus(ctx context.Context, paymentID string, status models.PaymentStatus) error {
	if _, err := primitive.ObjectIDFromHex(paymentID); err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now(),
		},
	}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": paymentID, "deletedAt": nil}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
