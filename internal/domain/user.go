package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a tracked account. Usernames are not required to be
// unique; the store-generated id is the only identity.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username string             `bson:"username" json:"username"`
}
