package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a bookmarked blog post. UserID holds the stored owner reference;
// User carries the populated owner projection in listings and is never
// persisted itself.
type Blog struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title  string             `bson:"title" json:"title"`
	Author string             `bson:"author,omitempty" json:"author,omitempty"`
	URL    string             `bson:"url" json:"url"`
	Likes  int                `bson:"likes" json:"likes"`
	UserID primitive.ObjectID `bson:"user,omitempty" json:"-"`
	User   *UserRef           `bson:"-" json:"user,omitempty"`
}

// BlogRef is the projection of a blog attached to a listed user.
type BlogRef struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	Title  string             `bson:"title" json:"title"`
	Author string             `bson:"author,omitempty" json:"author,omitempty"`
	URL    string             `bson:"url" json:"url"`
	Likes  int                `bson:"likes" json:"likes"`
}

func (b Blog) Ref() BlogRef {
	return BlogRef{ID: b.ID, Title: b.Title, Author: b.Author, URL: b.URL, Likes: b.Likes}
}
