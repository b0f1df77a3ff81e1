package mongodb

import (
	"go.mongodb.org/mongo-driver/mongo"

	repo "bloglist/internal/repository"
)

type Repositories struct {
	Users repo.Users
	Blogs repo.Blogs
}

func NewRepositories(db *mongo.Database) Repositories {
	return Repositories{
		Users: &usersRepo{col: db.Collection("users"), blogs: db.Collection("blogs")},
		Blogs: &blogsRepo{col: db.Collection("blogs"), users: db.Collection("users")},
	}
}
