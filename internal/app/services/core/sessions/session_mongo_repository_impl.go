package sessions

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SessionMongoRepository struct {
	Collection *mongo.Collection
}

func NewSessionMongoRepository(db *mongo.Client, dbName string) contracts.TherapySessionRepository {
	return &SessionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTherapySessions),
	}
}

func (r *SessionMongoRepository) Insert(ctx context.Context, session *models.TherapySession) (string, error) {
	session.CreatedAt = time.Now()
	session.UpdatedAt = session.CreatedAt

	result, err := r.Collection.InsertOne(ctx, session)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *SessionMongoRepository) FindByID(ctx context.Context, sessionID string) (*models.TherapySession, error) {
	objectID, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var session models.TherapySession
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &session, nil
}

// FindBookable folds ownership, payment state, remaining hours and expiry
// into the query itself so callers cannot tell which guard failed.
func (r *SessionMongoRepository) FindBookable(ctx context.Context, sessionID, patientID string) (*models.TherapySession, error) {
	objectID, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id":            objectID,
		"patient":        patientID,
		"paymentStatus":  constvars.PaymentStatusPaid,
		"hoursRemaining": bson.M{"$gt": 0},
		"expiryDate":     bson.M{"$gt": time.Now()},
	}

	var session models.TherapySession
	err = r.Collection.FindOne(ctx, filter).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &session, nil
}

func (r *SessionMongoRepository) FindByPatient(ctx context.Context, patientID string) ([]models.TherapySession, error) {
	findOptions := options.Find().
		SetSort(bson.D{
			{Key: "expiryDate", Value: -1},
			{Key: "createdAt", Value: -1},
		}).
		SetProjection(bson.M{"notes": 0})

	cursor, err := r.Collection.Find(ctx, bson.M{"patient": patientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var sessions []models.TherapySession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return sessions, nil
}

func (r *SessionMongoRepository) FindByPaymentRef(ctx context.Context, paymentRef string) (*models.TherapySession, error) {
	var session models.TherapySession
	err := r.Collection.FindOne(ctx, bson.M{"paymentRef": paymentRef}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &session, nil
}

func (r *SessionMongoRepository) MarkPaid(ctx context.Context, sessionID, paymentRef string, expiryDate time.Time) error {
	objectID, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id":           objectID,
		"paymentStatus": constvars.PaymentStatusPending,
	}
	update := bson.M{"$set": bson.M{
		"paymentStatus": constvars.PaymentStatusPaid,
		"paymentRef":    paymentRef,
		"expiryDate":    expiryDate,
		"updatedAt":     time.Now(),
	}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrPaymentSessionNotPending(mongo.ErrNoDocuments)
	}
	return nil
}

// ConsumeHours is a compare-and-set decrement: the guard keeps concurrent
// consumers from driving hoursRemaining negative.
func (r *SessionMongoRepository) ConsumeHours(ctx context.Context, sessionID string, amount int) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id":            objectID,
		"hoursRemaining": bson.M{"$gte": amount},
	}
	update := bson.M{
		"$inc": bson.M{"hoursRemaining": -amount},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

func (r *SessionMongoRepository) HasOverlappingAppointment(ctx context.Context, therapistID string, start, end time.Time) (bool, error) {
	filter := bson.M{
		"therapist": therapistID,
		"appointments": bson.M{"$elemMatch": bson.M{
			"start_time": bson.M{"$lt": end},
			"end_time":   bson.M{"$gt": start},
		}},
	}

	count, err := r.Collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return count > 0, nil
}

// CommitAppointment pushes the appointment and decrements hoursRemaining in
// one document update so either both happen or neither does.
func (r *SessionMongoRepository) CommitAppointment(ctx context.Context, sessionID string, appointment models.Appointment, billedHours int) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(sessionID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id":            objectID,
		"paymentStatus":  constvars.PaymentStatusPaid,
		"hoursRemaining": bson.M{"$gte": billedHours},
		"expiryDate":     bson.M{"$gt": time.Now()},
	}
	update := bson.M{
		"$push": bson.M{"appointments": appointment},
		"$inc":  bson.M{"hoursRemaining": -billedHours},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}
