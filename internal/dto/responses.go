package dto

import "gymtrack/internal/domain"

// SetProjection is the reduced view of a Set returned by the last-N query.
// Internal ids and exercise metadata are dropped; the bson tags match the
// $project stage of the aggregation pipeline.
type SetProjection struct {
	Weight        float64              `bson:"weight" json:"weight"`
	Reps          int64                `bson:"reps" json:"reps"`
	StruggleScore domain.StruggleScore `bson:"struggle_score,omitempty" json:"struggle_score,omitempty"`
}

type CreateUserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LoginResponse struct {
	Name string `json:"name"`
}
