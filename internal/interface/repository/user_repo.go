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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepository implements the UserRepository interface
type MongoUserRepository struct {
	collection *mongo.Collection
}

// userDocument is the stored shape of a user. Older documents carry the role under
// role or userType and the join date under dateJoined; they are canonicalized on read.
type userDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	AccountID  string             `bson:"accountId"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email"`
	ImageURL   string             `bson:"imageUrl"`
	JoinedAt   interface{}        `bson:"joinedAt,omitempty"`
	DateJoined interface{}        `bson:"dateJoined,omitempty"`
	Status     string             `bson:"status,omitempty"`
	Role       string             `bson:"role,omitempty"`
	UserType   string             `bson:"userType,omitempty"`
}

func (d *userDocument) toEntity() *entity.User {
	return &entity.User{
		ID:        d.ID.Hex(),
		AccountID: d.AccountID,
		Name:      d.Name,
		Email:     d.Email,
		ImageURL:  d.ImageURL,
		JoinedAt:  firstTime(storedTime(d.JoinedAt), storedTime(d.DateJoined), objectIDTime(d.ID)),
		Status:    entity.CanonicalStatus(d.Status, d.Role, d.UserType),
	}
}

// NewMongoUserRepository creates a new MongoDB user repository
func NewMongoUserRepository(db *mongo.Database, collectionName string) repository.UserRepository {
	collection := db.Collection(collectionName)

	// Index on accountId for session lookups
	accountIDIndex := mongo.IndexModel{
		Keys:    bson.M{"accountId": 1},
		Options: options.Index().SetUnique(true),
	}

	// Index on joinedAt for newest-first listing
	joinedAtIndex := mongo.IndexModel{
		Keys: bson.M{"joinedAt": -1},
	}

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		accountIDIndex,
		joinedAtIndex,
	})

	return &MongoUserRepository{
		collection: collection,
	}
}

// Create inserts a user and sets user.ID to the assigned id
func (r *MongoUserRepository) Create(ctx context.Context, user *entity.User) error {
	doc := userDocument{
		AccountID: user.AccountID,
		Name:      user.Name,
		Email:     user.Email,
		ImageURL:  user.ImageURL,
		JoinedAt:  user.JoinedAt.UTC(),
		Status:    string(user.Status),
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	user.ID = id.Hex()
	return nil
}

// FindByAccountID finds the user linked to an identity-provider account
func (r *MongoUserRepository) FindByAccountID(ctx context.Context, accountID string) (*entity.User, error) {
	var doc userDocument
	if err := r.collection.FindOne(ctx, bson.M{"accountId": accountID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

// List returns a page of users, most recently joined first, with the total count
func (r *MongoUserRepository) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, pageOptions("joinedAt", limit, offset))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	users := make([]*entity.User, len(docs))
	for i := range docs {
		users[i] = docs[i].toEntity()
	}
	return users, total, nil
}
