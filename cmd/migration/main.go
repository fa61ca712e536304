package main

import (
	"context"
	"log"
	"time"

	"counselink-service/internal/app/config"
	"counselink-service/internal/app/drivers/database"
	"counselink-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Creates the indexes the repositories rely on. Safe to run repeatedly;
// mongo treats an existing identical index as a no-op.
func main() {
	driverConfig := config.NewDriverConfig()
	client := database.NewMongoDB(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(driverConfig.MongoDB.DbName)

	indexes := map[string][]mongo.IndexModel{
		constvars.MongoCollectionAccounts: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		constvars.MongoCollectionSlots: {
			{Keys: bson.D{{Key: "consultantId", Value: 1}, {Key: "startTime", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		constvars.MongoCollectionAppointments: {
			{Keys: bson.D{{Key: "slotId", Value: 1}}},
			{Keys: bson.D{{Key: "customerId", Value: 1}, {Key: "dateBooking", Value: -1}}},
			{Keys: bson.D{{Key: "consultantId", Value: 1}, {Key: "dateBooking", Value: -1}}},
		},
		constvars.MongoCollectionPayments: {
			{Keys: bson.D{{Key: "appointmentId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "paymentLinkId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		constvars.MongoCollectionReports: {
			{Keys: bson.D{{Key: "appointmentId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for collection, models := range indexes {
		names, err := db.Collection(collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			log.Fatalf("Error creating indexes on %s: %v", collection, err)
		}
		log.Printf("Created indexes on %s: %v", collection, names)
	}

	if err := client.Disconnect(ctx); err != nil {
		log.Fatalf("Error disconnecting: %v", err)
	}
	log.Println("Migration finished")
}
