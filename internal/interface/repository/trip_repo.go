package repository

import (
	"context"
	"errors"
	"fmt"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoTripRepository implements the TripRepository interface
type MongoTripRepository struct {
	collection *mongo.Collection
}

// tripDocument is the stored shape of a trip. createdAt may be a BSON date or a
// legacy ISO string; when absent the id timestamp is used.
type tripDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	TripDetail  string             `bson:"tripDetail"`
	CreatedAt   interface{}        `bson:"createdAt,omitempty"`
	ImageURLs   []string           `bson:"imageUrls"`
	UserID      string             `bson:"userId"`
	PaymentLink string             `bson:"payment_link,omitempty"`
}

func (d *tripDocument) toEntity() *entity.TripRecord {
	return &entity.TripRecord{
		ID:          d.ID.Hex(),
		TripDetail:  d.TripDetail,
		CreatedAt:   firstTime(storedTime(d.CreatedAt), objectIDTime(d.ID)),
		ImageURLs:   d.ImageURLs,
		UserID:      d.UserID,
		PaymentLink: d.PaymentLink,
	}
}

// NewMongoTripRepository creates a new MongoDB trip repository
func NewMongoTripRepository(db *mongo.Database, collectionName string) repository.TripRepository {
	collection := db.Collection(collectionName)

	// Index on createdAt for newest-first listing
	createdAtIndex := mongo.IndexModel{
		Keys: bson.M{"createdAt": -1},
	}

	// Index on userId for per-user trip counts
	userIDIndex := mongo.IndexModel{
		Keys: bson.M{"userId": 1},
	}

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		createdAtIndex,
		userIDIndex,
	})

	return &MongoTripRepository{
		collection: collection,
	}
}

// Create inserts a trip and sets record.ID to the id assigned by the database
func (r *MongoTripRepository) Create(ctx context.Context, record *entity.TripRecord) error {
	doc := tripDocument{
		TripDetail:  record.TripDetail,
		CreatedAt:   record.CreatedAt.UTC(),
		ImageURLs:   record.ImageURLs,
		UserID:      record.UserID,
		PaymentLink: record.PaymentLink,
	}
	if doc.ImageURLs == nil {
		doc.ImageURLs = []string{}
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	record.ID = id.Hex()
	return nil
}

// FindByID finds a trip by its hex id
func (r *MongoTripRepository) FindByID(ctx context.Context, id string) (*entity.TripRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	var doc tripDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

// List returns a page of trips newest first with the total count
func (r *MongoTripRepository) List(ctx context.Context, limit, offset int) ([]*entity.TripRecord, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count trips: %w", err)
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, pageOptions("createdAt", limit, offset))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var docs []tripDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	records := make([]*entity.TripRecord, len(docs))
	for i := range docs {
		records[i] = docs[i].toEntity()
	}
	return records, total, nil
}

// CountByUserID counts the trips created by a user
func (r *MongoTripRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"userId": userID})
}
