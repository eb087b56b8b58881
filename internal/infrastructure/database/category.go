package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mediashelf/internal/domain/model"
)

type CategoryStore struct {
	db *Database
}

func NewCategoryStore(db *Database) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) coll() *mongo.Collection {
	return s.db.Client.Database(s.db.DBName).Collection(CategoryCollection)
}

func (s *CategoryStore) Insert(ctx context.Context, category *model.Category) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	result, err := s.coll().InsertOne(ctx, category)
	if err != nil {
		return "", err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errUnexpectedID
	}

	return id.Hex(), nil
}

func (s *CategoryStore) BySection(ctx context.Context, section string) ([]model.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	cursor, err := s.coll().Find(ctx, bson.M{"section": section})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []model.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

func (s *CategoryStore) Delete(ctx context.Context, id string) (int64, error) {
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
