package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account. PasswordHash and the raw blog reference list
// never appear in API responses; listings carry the populated Blogs instead.
type User struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username     string               `bson:"username" json:"username"`
	Name         string               `bson:"name,omitempty" json:"name,omitempty"`
	PasswordHash string               `bson:"passwordHash" json:"-"`
	BlogIDs      []primitive.ObjectID `bson:"blogs" json:"-"`
	Blogs        []BlogRef            `bson:"-" json:"blogs"`
}

// UserRef is the owner projection attached to a listed blog.
type UserRef struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Username string             `bson:"username" json:"username"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
}

func (u User) Ref() UserRef {
	return UserRef{ID: u.ID, Username: u.Username, Name: u.Name}
}
