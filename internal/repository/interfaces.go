package repository

import (
	"context"

	"bloglist/internal/models"
)

type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
	// AppendBlog adds a blog reference to the user's blogs list.
	AppendBlog(ctx context.Context, userID, blogID string) error
	// ListWithBlogs returns all users with their blog references populated
	// to full BlogRef projections.
	ListWithBlogs(ctx context.Context) ([]models.User, error)
}

type Blogs interface {
	Create(ctx context.Context, b models.Blog) (models.Blog, error)
	GetByID(ctx context.Context, id string) (models.Blog, error)
	// ListWithOwners returns all blogs with the owner reference populated
	// to a UserRef projection.
	ListWithOwners(ctx context.Context) ([]models.Blog, error)
	// UpdateLikes sets the likes field only and returns the updated blog.
	UpdateLikes(ctx context.Context, id string, likes int) (models.Blog, error)
	Delete(ctx context.Context, id string) error
}
