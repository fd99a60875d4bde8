package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single logged activity owned by a user.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Description string             `bson:"description" json:"description"`
	Duration    int                `bson:"duration" json:"duration"`
	Date        time.Time          `bson:"date" json:"date"`
}

// DateString renders the exercise date in the API's day format.
func (e Exercise) DateString() string {
	return e.Date.Format(DayFormat)
}
