package store

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gymtrack/internal/domain"
	"gymtrack/internal/dto"
)

// Memory is the in-process backend. Tests run against it, and `-store memory`
// serves it for local development. Semantics mirror the Mongo backend,
// including the ordering and error contracts of LastSets.
type Memory struct {
	Users     *MemoryUserStore
	Exercises *MemoryExerciseStore
}

func NewMemory() *Memory {
	return &Memory{
		Users:     &MemoryUserStore{users: make(map[string]*domain.User)},
		Exercises: &MemoryExerciseStore{},
	}
}

type MemoryUserStore struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func (s *MemoryUserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Name]; ok {
		return domain.ErrUserExists
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.GymSessions == nil {
		user.GymSessions = []domain.GymSession{}
	}
	s.users[user.Name] = copyUser(user)
	return nil
}

func (s *MemoryUserStore) GetByName(ctx context.Context, name string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[name]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return copyUser(user), nil
}

func (s *MemoryUserStore) List(ctx context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *copyUser(u))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })
	return users, nil
}

func (s *MemoryUserStore) AppendSession(ctx context.Context, name string, session domain.GymSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[name]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.GymSessions = append(user.GymSessions, copySession(session))
	return nil
}

func (s *MemoryUserStore) UpdatePassword(ctx context.Context, name string, hash, salt []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[name]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.PasswordHash = append([]byte(nil), hash...)
	user.Salt = append([]byte(nil), salt...)
	return nil
}

func (s *MemoryUserStore) LastSets(ctx context.Context, name, exercise string, n int) ([]dto.SetProjection, error) {
	user, err := s.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	type dated struct {
		date domain.Date
		set  domain.Set
	}
	var flat []dated
	for _, gs := range user.GymSessions {
		for _, log := range gs.Exercises {
			if log.Exercise.Name != exercise {
				continue
			}
			for _, set := range log.Sets {
				flat = append(flat, dated{date: gs.Date, set: set})
			}
		}
	}

	// Stable keeps insertion order for sets sharing a session date.
	sort.SliceStable(flat, func(i, j int) bool { return flat[i].date > flat[j].date })
	if len(flat) > n {
		flat = flat[:n]
	}

	sets := make([]dto.SetProjection, 0, len(flat))
	for _, d := range flat {
		sets = append(sets, dto.SetProjection{
			Weight:        d.set.Weight,
			Reps:          d.set.Reps,
			StruggleScore: d.set.StruggleScore,
		})
	}
	return sets, nil
}

func copyUser(u *domain.User) *domain.User {
	out := &domain.User{
		ID:           u.ID,
		Name:         u.Name,
		PasswordHash: append([]byte(nil), u.PasswordHash...),
		Salt:         append([]byte(nil), u.Salt...),
		GymSessions:  make([]domain.GymSession, 0, len(u.GymSessions)),
	}
	for _, gs := range u.GymSessions {
		out.GymSessions = append(out.GymSessions, copySession(gs))
	}
	return out
}

func copySession(gs domain.GymSession) domain.GymSession {
	out := domain.GymSession{
		Date:      gs.Date,
		Notes:     gs.Notes,
		Exercises: make([]domain.ExerciseLog, 0, len(gs.Exercises)),
	}
	for _, log := range gs.Exercises {
		cp := domain.ExerciseLog{
			Exercise: domain.Exercise{
				Name:         log.Exercise.Name,
				MuscleGroups: append([]domain.MuscleGroup(nil), log.Exercise.MuscleGroups...),
				Category:     log.Exercise.Category,
			},
			Sets: append([]domain.Set(nil), log.Sets...),
		}
		out.Exercises = append(out.Exercises, cp)
	}
	return out
}

type MemoryExerciseStore struct {
	mu        sync.Mutex
	exercises []domain.Exercise
}

func (s *MemoryExerciseStore) Add(ctx context.Context, ex domain.Exercise) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ex.MuscleGroups = append([]domain.MuscleGroup(nil), ex.MuscleGroups...)
	s.exercises = append(s.exercises, ex)
	return nil
}

func (s *MemoryExerciseStore) List(ctx context.Context) ([]domain.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Exercise, 0, len(s.exercises))
	for _, ex := range s.exercises {
		ex.MuscleGroups = append([]domain.MuscleGroup(nil), ex.MuscleGroups...)
		out = append(out, ex)
	}
	return out, nil
}
