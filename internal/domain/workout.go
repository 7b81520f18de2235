package domain

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time component, serialized as YYYY-MM-DD
// in both JSON and BSON. Lexicographic order equals chronological order,
// which the date-descending sort in the last-N query relies on.
type Date string

func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date(s), nil
}

func (d Date) Valid() bool {
	_, err := time.Parse(dateLayout, string(d))
	return err == nil
}

func (d Date) Time() time.Time {
	t, _ := time.Parse(dateLayout, string(d))
	return t
}

// GymSession is one visit to the gym. It has no identity of its own; it only
// ever exists embedded in a User and is append-only once written.
type GymSession struct {
	Date      Date          `bson:"date" json:"date"`
	Notes     string        `bson:"notes,omitempty" json:"notes,omitempty"`
	Exercises []ExerciseLog `bson:"exercises" json:"exercises"`
}

// ExerciseLog records the sets performed for one exercise within a session.
type ExerciseLog struct {
	Exercise Exercise `bson:"exercise" json:"exercise"`
	Sets     []Set    `bson:"sets" json:"sets"`
}

// Exercise describes a movement. The same descriptor is embedded in logs and
// stored standalone in the catalog collection.
type Exercise struct {
	Name         string        `bson:"name" json:"name"`
	MuscleGroups []MuscleGroup `bson:"muscle_group" json:"muscle_group"`
	Category     Category      `bson:"category" json:"category"`
}

// Set is immutable once written; weight is unit-less and caller-defined.
type Set struct {
	Weight        float64       `bson:"weight" json:"weight"`
	Reps          int64         `bson:"reps" json:"reps"`
	StruggleScore StruggleScore `bson:"struggle_score,omitempty" json:"struggle_score,omitempty"`
}

type Category string

const (
	CategoryUpper  Category = "upper"
	CategoryLower  Category = "lower"
	CategoryPush   Category = "push"
	CategoryPull   Category = "pull"
	CategoryCardio Category = "cardio"
	CategoryOther  Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryUpper, CategoryLower, CategoryPush, CategoryPull, CategoryCardio, CategoryOther:
		return true
	}
	return false
}

type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "chest"
	MuscleBack      MuscleGroup = "back"
	MuscleLegs      MuscleGroup = "legs"
	MuscleShoulders MuscleGroup = "shoulders"
	MuscleArms      MuscleGroup = "arms"
	MuscleCore      MuscleGroup = "core"
	MuscleFullBody  MuscleGroup = "full_body"
	MuscleCardio    MuscleGroup = "cardio"
)

func (m MuscleGroup) Valid() bool {
	switch m {
	case MuscleChest, MuscleBack, MuscleLegs, MuscleShoulders, MuscleArms, MuscleCore, MuscleFullBody, MuscleCardio:
		return true
	}
	return false
}

// StruggleScore is a subjective difficulty rating. The zero value means
// "not recorded" and is omitted from both codecs.
type StruggleScore string

const (
	StruggleNone     StruggleScore = ""
	StruggleEasy     StruggleScore = "easy"
	StruggleModerate StruggleScore = "moderate"
	StruggleHard     StruggleScore = "hard"
	StruggleVeryHard StruggleScore = "very_hard"
)

func (s StruggleScore) Valid() bool {
	switch s {
	case StruggleNone, StruggleEasy, StruggleModerate, StruggleHard, StruggleVeryHard:
		return true
	}
	return false
}

func (e Exercise) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("exercise name is required")
	}
	if len(e.MuscleGroups) == 0 {
		return fmt.Errorf("exercise %q needs at least one muscle group", e.Name)
	}
	for _, m := range e.MuscleGroups {
		if !m.Valid() {
			return fmt.Errorf("unknown muscle group %q", m)
		}
	}
	if !e.Category.Valid() {
		return fmt.Errorf("unknown category %q", e.Category)
	}
	return nil
}

func (s Set) Validate() error {
	if s.Reps < 0 {
		return fmt.Errorf("reps must be non-negative")
	}
	if !s.StruggleScore.Valid() {
		return fmt.Errorf("unknown struggle score %q", s.StruggleScore)
	}
	return nil
}

func (l ExerciseLog) Validate() error {
	if err := l.Exercise.Validate(); err != nil {
		return err
	}
	for _, set := range l.Sets {
		if err := set.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (g GymSession) Validate() error {
	if !g.Date.Valid() {
		return fmt.Errorf("invalid session date %q", g.Date)
	}
	for _, l := range g.Exercises {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}
