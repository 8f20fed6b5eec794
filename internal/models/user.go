package models

import "time"

// User is a registered application user, keyed by the identity provider uid.
type User struct {
	FirebaseUID string    `bson:"firebase_uid" json:"firebase_uid"`
	Email       string    `bson:"email" json:"email"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
