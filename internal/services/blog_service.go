package services

import (
	"context"

	"bloglist/internal/metrics"
	"bloglist/internal/models"
	repo "bloglist/internal/repository"
)

type BlogService struct {
	blogs repo.Blogs
	users repo.Users
}

func NewBlogService(blogs repo.Blogs, users repo.Users) *BlogService {
	return &BlogService{blogs: blogs, users: users}
}

type CreateBlogInput struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}

func (s *BlogService) List(ctx context.Context) ([]models.Blog, error) {
	blogs, err := s.blogs.ListWithOwners(ctx)
	if err != nil {
		return nil, err
	}
	if blogs == nil {
		// an empty listing serializes as [], never null
		blogs = []models.Blog{}
	}
	return blogs, nil
}

// Create stores the blog under the given owner. The owner comes from the
// verified token, never from the payload. Insert and the owner's reference
// append are two separate writes; a crash in between leaves the blog out of
// the owner's list but otherwise intact.
func (s *BlogService) Create(ctx context.Context, owner models.User, in CreateBlogInput) (models.Blog, error) {
	if in.Title == "" || in.URL == "" {
		return models.Blog{}, ErrMissingTitleOrURL
	}
	likes := 0
	if in.Likes != nil && *in.Likes > 0 {
		likes = *in.Likes
	}

	b, err := s.blogs.Create(ctx, models.Blog{
		Title:  in.Title,
		Author: in.Author,
		URL:    in.URL,
		Likes:  likes,
		UserID: owner.ID,
	})
	if err != nil {
		return models.Blog{}, err
	}
	if err := s.users.AppendBlog(ctx, owner.ID.Hex(), b.ID.Hex()); err != nil {
		return models.Blog{}, err
	}
	metrics.BlogsCreated.Inc()
	return b, nil
}

// UpdateLikes changes the like count only. There is no ownership or token
// check on this path; that matches the delete path's stricter policy badly
// but is the shipped behavior.
func (s *BlogService) UpdateLikes(ctx context.Context, id string, likes int) (models.Blog, error) {
	return s.blogs.UpdateLikes(ctx, id, likes)
}

func (s *BlogService) Delete(ctx context.Context, actor models.User, id string) error {
	b, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.UserID != actor.ID {
		return ErrNotOwner
	}
	if err := s.blogs.Delete(ctx, id); err != nil {
		return err
	}
	metrics.BlogsDeleted.Inc()
	return nil
}
