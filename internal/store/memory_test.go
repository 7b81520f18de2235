package store_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymtrack/internal/domain"
	"gymtrack/internal/dto"
	"gymtrack/internal/store"
)

func newUser(t *testing.T, s store.UserStore, name string) {
	t.Helper()
	err := s.Create(context.Background(), &domain.User{
		Name:         name,
		PasswordHash: []byte("hash"),
		Salt:         []byte("0123456789abcdef"),
	})
	require.NoError(t, err)
}

func benchSession(date domain.Date, sets ...domain.Set) domain.GymSession {
	return domain.GymSession{
		Date: date,
		Exercises: []domain.ExerciseLog{{
			Exercise: domain.Exercise{
				Name:         "Bench Press",
				MuscleGroups: []domain.MuscleGroup{domain.MuscleChest},
				Category:     domain.CategoryPush,
			},
			Sets: sets,
		}},
	}
}

func TestCreateEnforcesUniqueName(t *testing.T) {
	mem := store.NewMemory()
	newUser(t, mem.Users, "alice")

	err := mem.Users.Create(context.Background(), &domain.User{Name: "alice"})
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestGetByNameNotFound(t *testing.T) {
	mem := store.NewMemory()

	_, err := mem.Users.GetByName(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAppendSessionNotFound(t *testing.T) {
	mem := store.NewMemory()

	err := mem.Users.AppendSession(context.Background(), "nobody", benchSession("2024-01-01"))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLastSetsOrdering(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	newUser(t, mem.Users, "alice")

	// Inserted out of date order on purpose; ordering must come from the
	// session date, not insertion order.
	require.NoError(t, mem.Users.AppendSession(ctx, "alice", benchSession("2024-02-01", domain.Set{Weight: 60, Reps: 8})))
	require.NoError(t, mem.Users.AppendSession(ctx, "alice", benchSession("2024-01-01", domain.Set{Weight: 50, Reps: 10})))
	require.NoError(t, mem.Users.AppendSession(ctx, "alice", benchSession("2024-03-01", domain.Set{Weight: 70, Reps: 5})))

	sets, err := mem.Users.LastSets(ctx, "alice", "Bench Press", 3)
	require.NoError(t, err)
	require.Len(t, sets, 3)
	assert.Equal(t, 70.0, sets[0].Weight)
	assert.Equal(t, 60.0, sets[1].Weight)
	assert.Equal(t, 50.0, sets[2].Weight)
}

func TestLastSetsTruncation(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	newUser(t, mem.Users, "alice")

	require.NoError(t, mem.Users.AppendSession(ctx, "alice", benchSession("2024-01-01",
		domain.Set{Weight: 50, Reps: 10}, domain.Set{Weight: 50, Reps: 9})))
	require.NoError(t, mem.Users.AppendSession(ctx, "alice", benchSession("2024-02-01",
		domain.Set{Weight: 55, Reps: 8}, domain.Set{Weight: 55, Reps: 7}, domain.Set{Weight: 55, Reps: 6})))

	sets, err := mem.Users.LastSets(ctx, "alice", "Bench Press", 3)
	require.NoError(t, err)
	// The three most recent by session date, keeping within-session order.
	require.Len(t, sets, 3)
	assert.Equal(t, int64(8), sets[0].Reps)
	assert.Equal(t, int64(7), sets[1].Reps)
	assert.Equal(t, int64(6), sets[2].Reps)
}

func TestLastSetsFewerThanRequested(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	newUser(t, mem.Users, "alice")

	require.NoError(t, mem.Users.AppendSession(ctx, "alice", benchSession("2024-01-01", domain.Set{Weight: 50, Reps: 10})))

	sets, err := mem.Users.LastSets(ctx, "alice", "Bench Press", 3)
	require.NoError(t, err)
	assert.Len(t, sets, 1)
}

func TestLastSetsNoMatchIsEmptyNotError(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	newUser(t, mem.Users, "alice")

	require.NoError(t, mem.Users.AppendSession(ctx, "alice", benchSession("2024-01-01", domain.Set{Weight: 50, Reps: 10})))

	sets, err := mem.Users.LastSets(ctx, "alice", "Deadlift", 3)
	require.NoError(t, err)
	assert.Empty(t, sets)
	assert.NotNil(t, sets)
}

func TestLastSetsUnknownUser(t *testing.T) {
	mem := store.NewMemory()

	_, err := mem.Users.LastSets(context.Background(), "nobody", "Bench Press", 3)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLastSetsRoundTrip(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	newUser(t, mem.Users, "alice")

	in := domain.Set{Weight: 102.5, Reps: 3, StruggleScore: domain.StruggleVeryHard}
	require.NoError(t, mem.Users.AppendSession(ctx, "alice", benchSession("2024-01-01", in)))

	sets, err := mem.Users.LastSets(ctx, "alice", "Bench Press", 3)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, dto.SetProjection{Weight: 102.5, Reps: 3, StruggleScore: domain.StruggleVeryHard}, sets[0])
}

func TestConcurrentAppendsBothLand(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	newUser(t, mem.Users, "alice")

	const writers = 10
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := mem.Users.AppendSession(ctx, "alice", benchSession("2024-01-01", domain.Set{Weight: 50, Reps: 10}))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	user, err := mem.Users.GetByName(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, user.GymSessions, writers)
}

func TestGetByNameReturnsCopy(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	newUser(t, mem.Users, "alice")
	require.NoError(t, mem.Users.AppendSession(ctx, "alice", benchSession("2024-01-01", domain.Set{Weight: 50, Reps: 10})))

	first, err := mem.Users.GetByName(ctx, "alice")
	require.NoError(t, err)
	first.GymSessions[0].Exercises[0].Sets[0].Weight = 999

	second, err := mem.Users.GetByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 50.0, second.GymSessions[0].Exercises[0].Sets[0].Weight)
}

func TestExerciseCatalog(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	ex := domain.Exercise{
		Name:         "Squat",
		MuscleGroups: []domain.MuscleGroup{domain.MuscleLegs, domain.MuscleCore},
		Category:     domain.CategoryLower,
	}
	require.NoError(t, mem.Exercises.Add(ctx, ex))

	got, err := mem.Exercises.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, ex, got[0])
}
