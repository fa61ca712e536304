package servicecatalog

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

type ServiceMongoRepository struct {
	Collection *mongo.Collection
}

func NewServiceMongoRepository(db *mongo.Client, dbName string) contracts.ServiceRepository {
	return &ServiceMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionServices),
	}
}

func (r *ServiceMongoRepository) CreateService(ctx context.Context, service *models.Service) (string, error) {
	now := time.Now()
	service.ID = primitive.NewObjectID().Hex()
	service.CreatedAt = now
	service.UpdatedAt = now

	_, err := r.Collection.InsertOne(ctx, service)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return service.ID, nil
}

func (r *ServiceMongoRepository) FindByID(ctx context.Context, serviceID string) (*models.Service, error) {
	if _, err := primitive.ObjectIDFromHex(serviceID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var service models.Service
	err := r.Collection.FindOne(ctx, bson.M{"_id": serviceID, "deletedAt": nil}).Decode(&service)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &service, nil
}

func (r *ServiceMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Service, int, error) {
	query := bson.M{"deletedAt": nil}

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return services, int(total), nil
}
