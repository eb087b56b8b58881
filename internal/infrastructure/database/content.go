package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mediashelf/internal/domain/model"
	repository "mediashelf/internal/domain/repository/database"
)

// ContentStore is the shared CRUD implementation behind the music, books
// and blogs collections. The collection name is the only per-kind state.
type ContentStore struct {
	db         *Database
	collection string
}

func NewContentStore(db *Database, collection string) *ContentStore {
	return &ContentStore{
		db:         db,
		collection: collection,
	}
}

func (s *ContentStore) coll() *mongo.Collection {
	return s.db.Client.Database(s.db.DBName).Collection(s.collection)
}

func (s *ContentStore) Insert(ctx context.Context, doc model.Content) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	result, err := s.coll().InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errUnexpectedID
	}

	return id.Hex(), nil
}

func (s *ContentStore) All(ctx context.Context, results any) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	cursor, err := s.coll().Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, results)
}

func (s *ContentStore) Update(ctx context.Context, id string, changes bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	result, err := s.coll().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": changes})
	if err != nil {
		return err
	}
	if result.ModifiedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (s *ContentStore) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	result, err := s.coll().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
