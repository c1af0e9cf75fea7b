package plans

import (
	"context"

	"confidant-service/internal/app/contracts"
	"confidant-service/internal/app/models"
	"confidant-service/internal/pkg/constvars"
	"confidant-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PlanMongoRepository struct {
	Collection *mongo.Collection
}

func NewPlanMongoRepository(db *mongo.Client, dbName string) contracts.SubscriptionPlanRepository {
	return &PlanMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSubscriptionPlans),
	}
}

func (r *PlanMongoRepository) FindByID(ctx context.Context, planID string) (*models.SubscriptionPlan, error) {
	objectID, err := primitive.ObjectIDFromHex(planID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var plan models.SubscriptionPlan
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&plan)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &plan, nil
}
