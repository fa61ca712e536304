package slots

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

type SlotMongoRepository struct {
	Collection *mongo.Collection
}

func NewSlotMongoRepository(db *mongo.Client, dbName string) contracts.SlotRepository {
	return &SlotMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSlots),
	}
}

func (r *SlotMongoRepository) CreateSlots(ctx context.Context, slots []models.Slot) ([]models.Slot, error) {
	now := time.Now()
	documents := make([]interface{}, 0, len(slots))
	for i := range slots {
		slots[i].ID = primitive.NewObjectID().Hex()
		slots[i].CreatedAt = now
		slots[i].UpdatedAt = now
		documents = append(documents, slots[i])
	}

	_, err := r.Collection.InsertMany(ctx, documents)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return slots, nil
}

func (r *SlotMongoRepository) FindByID(ctx context.Context, slotID string) (*models.Slot, error) {
	if _, err := primitive.ObjectIDFromHex(slotID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var slot models.Slot
	err := r.Collection.FindOne(ctx, bson.M{"_id": slotID, "deletedAt": nil}).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}

func (r *SlotMongoRepository) FindWithFilter(ctx context.Context, filter *requests.SlotFilter, page, pageSize int) ([]models.Slot, int, error) {
	query := bson.M{"deletedAt": nil}
	if filter.ConsultantID != "" {
		query["consultantId"] = filter.ConsultantID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.From != nil || filter.To != nil {
		window := bson.M{}
		if filter.From != nil {
			window["$gte"] = *filter.From
		}
		if filter.To != nil {
			window["$lte"] = *filter.To
		}
		query["startTime"] = window
	}

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "startTime", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, int(total), nil
}

func (r *SlotMongoRepository) FindOverlapping(ctx context.Context, consultantID string, start, end time.Time) ([]models.Slot, error) {
	query := bson.M{
		"consultantId": consultantID,
		"deletedAt":    nil,
		"status":       bson.M{"$ne": models.SlotCancelled},
		"startTime":    bson.M{"$lt": end},
		"endTime":      bson.M{"$gt": start},
	}

	cursor, err := r.Collection.Find(ctx, query)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}

// TransitionStatus is the double-booking guard: the update filter carries
// the expected status, so when two requests race only one write matches.
func (r *SlotMongoRepository) TransitionStatus(ctx context.Context, slotID string, expected, next models.SlotStatus) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(slotID); err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id":       slotID,
		"status":    expected,
		"deletedAt": nil,
	}
	update := bson.M{
		"$set": bson.M{
			"status":    next,
			"updatedAt": time.Now(),
		},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}

func (r *SlotMongoRepository) SoftDeleteByID(ctx context.Context, slotID string) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(slotID); err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	now := time.Now()
	filter := bson.M{
		"_id":       slotID,
		"status":    models.SlotAvailable,
		"deletedAt": nil,
	}
	update := bson.M{
		"$set": bson.M{
			"status":    models.SlotCancelled,
			"deletedAt": now,
			"updatedAt": now,
		},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}
