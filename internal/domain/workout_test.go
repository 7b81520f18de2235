package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, Date("2024-03-01"), d)
	assert.True(t, d.Valid())
	assert.Equal(t, 2024, d.Time().Year())

	for _, bad := range []string{"", "yesterday", "2024-13-01", "01-03-2024", "2024-3-1"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
		assert.False(t, Date(bad).Valid(), bad)
	}
}

func TestDateOrderingIsLexicographic(t *testing.T) {
	// The last-N query sorts the string form directly.
	assert.True(t, Date("2024-01-31") < Date("2024-02-01"))
	assert.True(t, Date("2023-12-31") < Date("2024-01-01"))
}

func TestExerciseValidate(t *testing.T) {
	ok := Exercise{Name: "Squat", MuscleGroups: []MuscleGroup{MuscleLegs}, Category: CategoryLower}
	assert.NoError(t, ok.Validate())

	assert.Error(t, Exercise{MuscleGroups: []MuscleGroup{MuscleLegs}, Category: CategoryLower}.Validate())
	assert.Error(t, Exercise{Name: "Squat", Category: CategoryLower}.Validate())
	assert.Error(t, Exercise{Name: "Squat", MuscleGroups: []MuscleGroup{"quads"}, Category: CategoryLower}.Validate())
	assert.Error(t, Exercise{Name: "Squat", MuscleGroups: []MuscleGroup{MuscleLegs}, Category: "misc"}.Validate())
}

func TestSetValidate(t *testing.T) {
	assert.NoError(t, Set{Weight: 60, Reps: 5}.Validate())
	assert.NoError(t, Set{Weight: 60, Reps: 5, StruggleScore: StruggleHard}.Validate())
	assert.Error(t, Set{Reps: -1}.Validate())
	assert.Error(t, Set{Reps: 5, StruggleScore: "impossible"}.Validate())
}

func TestGymSessionValidate(t *testing.T) {
	session := GymSession{
		Date:  "2024-01-01",
		Notes: "felt strong",
		Exercises: []ExerciseLog{{
			Exercise: Exercise{Name: "Bench Press", MuscleGroups: []MuscleGroup{MuscleChest}, Category: CategoryPush},
			Sets:     []Set{{Weight: 60, Reps: 5}},
		}},
	}
	assert.NoError(t, session.Validate())

	session.Date = "not a date"
	assert.Error(t, session.Validate())

	session.Date = "2024-01-01"
	session.Exercises[0].Sets[0].Reps = -1
	assert.Error(t, session.Validate())
}
