package accounts

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

type AccountMongoRepository struct {
	Collection *mongo.Collection
}

func NewAccountMongoRepository(db *mongo.Client, dbName string) contracts.AccountRepository {
	return &AccountMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAccounts),
	}
}

func (r *AccountMongoRepository) CreateAccount(ctx context.Context, account *models.Account) (string, error) {
	now := time.Now()
	account.ID = primitive.NewObjectID().Hex()
	account.CreatedAt = now
	account.UpdatedAt = now

	_, err := r.Collection.InsertOne(ctx, account)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return account.ID, nil
}

func (r *AccountMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.findOne(ctx, bson.M{"email": email, "deletedAt": nil})
}

func (r *AccountMongoRepository) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	return r.findOne(ctx, bson.M{"username": username, "deletedAt": nil})
}

func (r *AccountMongoRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*models.Account, error) {
	filter := bson.M{
		"deletedAt": nil,
		"$or": []bson.M{
			{"email": email},
			{"username": username},
		},
	}
	return r.findOne(ctx, filter)
}

func (r *AccountMongoRepository) FindByID(ctx context.Context, accountID string) (*models.Account, error) {
	if _, err := primitive.ObjectIDFromHex(accountID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return r.findOne(ctx, bson.M{"_id": accountID, "deletedAt": nil})
}

func (r *AccountMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Account, error) {
	var account models.Account
	err := r.Collection.FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &account, nil
}

func (r *AccountMongoRepository) UpdateAccount(ctx context.Context, account *models.Account) error {
	if _, err := primitive.ObjectIDFromHex(account.ID); err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	account.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"email":     account.Email,
			"username":  account.Username,
			"password":  account.Password,
			"fullname":  account.Fullname,
			"role":      account.Role,
			"specialty": account.Specialty,
			"bio":       account.Bio,
			"updatedAt": account.UpdatedAt,
		},
	}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": account.ID, "deletedAt": nil}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AccountMongoRepository) DeleteByID(ctx context.Context, accountID string) error {
	if _, err := primitive.ObjectIDFromHex(accountID); err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"deletedAt": now,
			"updatedAt": now,
		},
	}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": accountID, "deletedAt": nil}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
