package therapists

import (
	"context"
	"time"

	"confidant-service/internal/app/contracts"
	"confidant-service/internal/app/models"
	"confidant-service/internal/pkg/constvars"
	"confidant-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TherapistMongoRepository struct {
	Collection        *mongo.Collection
	SessionCollection *mongo.Collection
}

func NewTherapistMongoRepository(db *mongo.Client, dbName string) contracts.TherapistRepository {
	return &TherapistMongoRepository{
		Collection:        db.Database(dbName).Collection(constvars.MongoCollectionTherapists),
		SessionCollection: db.Database(dbName).Collection(constvars.MongoCollectionTherapySessions),
	}
}

func (r *TherapistMongoRepository) FindByID(ctx context.Context, therapistID string) (*models.Therapist, error) {
	objectID, err := primitive.ObjectIDFromHex(therapistID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var therapist models.Therapist
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&therapist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &therapist, nil
}

// ListWithActiveSessionCounts joins each therapist with the sessions that are
// still consuming capacity: paid, unexpired and with hours left. Documents
// come back in natural collection order, which the matcher relies on for
// stable tie-breaking.
func (r *TherapistMongoRepository) ListWithActiveSessionCounts(ctx context.Context) ([]models.TherapistWithActiveSessions, error) {
	now := time.Now()
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: constvars.MongoCollectionTherapySessions},
			{Key: "let", Value: bson.D{{Key: "therapistId", Value: "$_id"}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{
					{Key: "$expr", Value: bson.D{{Key: "$eq", Value: bson.A{"$therapist", bson.D{{Key: "$toString", Value: "$$therapistId"}}}}}},
					{Key: "paymentStatus", Value: constvars.PaymentStatusPaid},
					{Key: "hoursRemaining", Value: bson.D{{Key: "$gt", Value: 0}}},
					{Key: "expiryDate", Value: bson.D{{Key: "$gt", Value: now}}},
				}}},
				bson.D{{Key: "$project", Value: bson.D{{Key: "_id", Value: 1}}}},
			}},
			{Key: "as", Value: "activeSessions"},
		}}},
		bson.D{{Key: "$addFields", Value: bson.D{
			{Key: "activeSessionCount", Value: bson.D{{Key: "$size", Value: "$activeSessions"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{{Key: "activeSessions", Value: 0}}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var therapists []models.TherapistWithActiveSessions
	if err := cursor.All(ctx, &therapists); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return therapists, nil
}
