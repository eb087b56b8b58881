package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mediashelf/internal/domain/model"
)

type MediaStore struct {
	db *Database
}

func NewMediaStore(db *Database) *MediaStore {
	return &MediaStore{db: db}
}

func (s *MediaStore) coll() *mongo.Collection {
	return s.db.Client.Database(s.db.DBName).Collection(MediaCollection)
}

func (s *MediaStore) Insert(ctx context.Context, media *model.Media) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	result, err := s.coll().InsertOne(ctx, media)
	if err != nil {
		return "", err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errUnexpectedID
	}

	return id.Hex(), nil
}

func (s *MediaStore) ByUploader(ctx context.Context, email string) ([]model.Media, error) {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	cursor, err := s.coll().Find(ctx, bson.M{"uploadedBy": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	media := []model.Media{}
	if err := cursor.All(ctx, &media); err != nil {
		return nil, err
	}

	return media, nil
}
