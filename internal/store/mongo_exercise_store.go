package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"gymtrack/internal/domain"
)

type MongoExerciseStore struct {
	coll *mongo.Collection
}

func (s *MongoExerciseStore) Add(ctx context.Context, ex domain.Exercise) error {
	if _, err := s.coll.InsertOne(ctx, ex); err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}
	return nil
}

func (s *MongoExerciseStore) List(ctx context.Context) ([]domain.Exercise, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	exercises := []domain.Exercise{}
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, fmt.Errorf("decode exercises: %w", err)
	}
	return exercises, nil
}
