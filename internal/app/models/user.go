package models

type User struct {
	ID        string `bson:"_id,omitempty"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	Phone     string `bson:"phone"`
	Password  string `bson:"password"`
	Role      string `bson:"role"`
	TimeModel `bson:",inline"`
}

// CallerIdentity is the {id, role} pair derived from a verified bearer token.
// It is attached to the request context by the auth middleware and trusted by
// every usecase downstream.
type CallerIdentity struct {
	UserID string
	Role   string
}
