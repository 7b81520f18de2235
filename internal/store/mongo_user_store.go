package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gymtrack/internal/domain"
	"gymtrack/internal/dto"
)

type MongoUserStore struct {
	coll *mongo.Collection
}

func (s *MongoUserStore) Create(ctx context.Context, user *domain.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.GymSessions == nil {
		user.GymSessions = []domain.GymSession{}
	}
	if _, err := s.coll.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *MongoUserStore) GetByName(ctx context.Context, name string) (*domain.User, error) {
	var user domain.User
	err := s.coll.FindOne(ctx, bson.D{{Key: "name", Value: name}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (s *MongoUserStore) List(ctx context.Context) ([]domain.User, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := []domain.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (s *MongoUserStore) AppendSession(ctx context.Context, name string, session domain.GymSession) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.D{{Key: "name", Value: name}},
		bson.D{{Key: "$push", Value: bson.D{{Key: "gym_sessions", Value: session}}}},
	)
	if err != nil {
		return fmt.Errorf("append session: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *MongoUserStore) UpdatePassword(ctx context.Context, name string, hash, salt []byte) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.D{{Key: "name", Value: name}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "pw_hash", Value: hash},
			{Key: "salt", Value: salt},
		}}},
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// LastSets runs the one nontrivial query in the system: flatten the user's
// sessions and exercises, keep the requested exercise, flatten to sets,
// newest session first, cap at n, project to the reduced shape.
func (s *MongoUserStore) LastSets(ctx context.Context, name, exercise string, n int) ([]dto.SetProjection, error) {
	// The pipeline yields an empty result for an unknown user and for a user
	// with no matching sets alike; only the former is a NotFound.
	err := s.coll.FindOne(ctx,
		bson.D{{Key: "name", Value: name}},
		options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}}),
	).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "name", Value: name}}}},
		{{Key: "$unwind", Value: "$gym_sessions"}},
		{{Key: "$unwind", Value: "$gym_sessions.exercises"}},
		{{Key: "$match", Value: bson.D{{Key: "gym_sessions.exercises.exercise.name", Value: exercise}}}},
		{{Key: "$unwind", Value: "$gym_sessions.exercises.sets"}},
		{{Key: "$sort", Value: bson.D{{Key: "gym_sessions.date", Value: -1}}}},
		{{Key: "$limit", Value: int64(n)}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "weight", Value: "$gym_sessions.exercises.sets.weight"},
			{Key: "reps", Value: bson.D{{Key: "$toLong", Value: "$gym_sessions.exercises.sets.reps"}}},
			{Key: "struggle_score", Value: "$gym_sessions.exercises.sets.struggle_score"},
		}}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate sets: %w", err)
	}
	sets := []dto.SetProjection{}
	if err := cursor.All(ctx, &sets); err != nil {
		return nil, fmt.Errorf("decode sets: %w", err)
	}
	return sets, nil
}
