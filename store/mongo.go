package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/picklesmvr/mvr-v1/models"
)

// Connect opens a client against the given MongoDB URI and verifies the
// connection with a ping. The caller owns the client and must Disconnect
// it at shutdown.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, nil
}

// NewMongoStores wires the four collection-backed stores on one database.
func NewMongoStores(db *mongo.Database) Stores {
	return Stores{
		Users:    &mongoUserStore{collection: db.Collection("users")},
		Sessions: &mongoSessionStore{collection: db.Collection("sessions")},
		Carts:    &mongoCartStore{collection: db.Collection("carts")},
		Orders:   &mongoOrderStore{collection: db.Collection("orders")},
	}
}

// EnsureIndexes creates the unique keys the data model relies on, a TTL
// index that lets MongoDB sweep expired sessions lazily, and the covering
// index for the per-user order listing.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	type indexSet struct {
		collection string
		indexes    []mongo.IndexModel
	}

	sets := []indexSet{
		{"users", []mongo.IndexModel{
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		}},
		{"sessions", []mongo.IndexModel{
			{Keys: bson.D{{Key: "session_token", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "expires_at", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(0)},
		}},
		{"carts", []mongo.IndexModel{
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		}},
		{"orders", []mongo.IndexModel{
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		}},
	}

	for _, set := range sets {
		if _, err := db.Collection(set.collection).Indexes().CreateMany(ctx, set.indexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", set.collection, err)
		}
	}
	return nil
}

// -------- users --------

type mongoUserStore struct {
	collection *mongo.Collection
}

func (s *mongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *mongoUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"id": id})
}

func (s *mongoUserStore) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (s *mongoUserStore) Create(ctx context.Context, user *models.User) error {
	if _, err := s.collection.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// -------- sessions --------

type mongoSessionStore struct {
	collection *mongo.Collection
}

func (s *mongoSessionStore) Create(ctx context.Context, session *models.Session) error {
	if _, err := s.collection.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (s *mongoSessionStore) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	err := s.collection.FindOne(ctx, bson.M{"session_token": token}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

// -------- carts --------

type mongoCartStore struct {
	collection *mongo.Collection
}

func (s *mongoCartStore) FindByUser(ctx context.Context, userID string) (*models.Cart, error) {
	var cart models.Cart
	err := s.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	return &cart, nil
}

func (s *mongoCartStore) Replace(ctx context.Context, cart *models.Cart) error {
	filter := bson.M{"user_id": cart.UserID}
	opts := options.Replace().SetUpsert(true)

	if _, err := s.collection.ReplaceOne(ctx, filter, cart, opts); err != nil {
		return fmt.Errorf("failed to replace cart: %w", err)
	}
	return nil
}

func (s *mongoCartStore) Delete(ctx context.Context, userID string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// -------- orders --------

type mongoOrderStore struct {
	collection *mongo.Collection
}

func (s *mongoOrderStore) Create(ctx context.Context, order *models.Order) error {
	if _, err := s.collection.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (s *mongoOrderStore) FindByUser(ctx context.Context, userID string, limit int64) ([]models.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}
