package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the persisted identity document. Workout history is embedded
// directly, so the document is the unit of atomicity for appends.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	PasswordHash []byte             `bson:"pw_hash" json:"-"`
	Salt         []byte             `bson:"salt" json:"-"`
	GymSessions  []GymSession       `bson:"gym_sessions" json:"gym_sessions"`
}

// Identity is the authenticated representation of a User, stripped of
// plaintext secrets. Fingerprint is the password hash snapshot sessions
// are bound to; rotating the password changes it and kills the sessions.
type Identity struct {
	ID          string
	Name        string
	Fingerprint []byte
}

func (u *User) Identity() *Identity {
	return &Identity{
		ID:          u.ID.Hex(),
		Name:        u.Name,
		Fingerprint: append([]byte(nil), u.PasswordHash...),
	}
}

// Credentials exist only for the duration of one authentication attempt.
// Never persisted, never logged.
type Credentials struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}
