package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bloglist/internal/models"
	repo "bloglist/internal/repository"
)

type blogsRepo struct {
	col   *mongo.Collection
	users *mongo.Collection
}

func (r *blogsRepo) Create(ctx context.Context, b models.Blog) (models.Blog, error) {
	res, err := r.col.InsertOne(ctx, b)
	if err != nil {
		return models.Blog{}, fmt.Errorf("insert blog: %w", err)
	}
	b.ID = res.InsertedID.(primitive.ObjectID)
	return b, nil
}

func (r *blogsRepo) GetByID(ctx context.Context, id string) (models.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Blog{}, repo.ErrMalformedID
	}
	var b models.Blog
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Blog{}, repo.ErrNotFound
		}
		return models.Blog{}, err
	}
	return b, nil
}

// ListWithOwners is the population join: blogs first, then one $in query for
// the distinct owners, projected to UserRef.
func (r *blogsRepo) ListWithOwners(ctx context.Context) ([]models.Blog, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	blogs := []models.Blog{}
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, err
	}

	seen := map[primitive.ObjectID]struct{}{}
	var ids []primitive.ObjectID
	for _, b := range blogs {
		if b.UserID.IsZero() {
			continue
		}
		if _, ok := seen[b.UserID]; !ok {
			seen[b.UserID] = struct{}{}
			ids = append(ids, b.UserID)
		}
	}
	owners := map[primitive.ObjectID]models.UserRef{}
	if len(ids) > 0 {
		ucur, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return nil, err
		}
		defer ucur.Close(ctx)
		var users []models.User
		if err := ucur.All(ctx, &users); err != nil {
			return nil, err
		}
		for _, u := range users {
			owners[u.ID] = u.Ref()
		}
	}

	for i := range blogs {
		if ref, ok := owners[blogs[i].UserID]; ok {
			refCopy := ref
			blogs[i].User = &refCopy
		}
	}
	return blogs, nil
}

func (r *blogsRepo) UpdateLikes(ctx context.Context, id string, likes int) (models.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Blog{}, repo.ErrMalformedID
	}
	var b models.Blog
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"likes": likes}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Blog{}, repo.ErrNotFound
		}
		return models.Blog{}, err
	}
	return b, nil
}

func (r *blogsRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repo.ErrMalformedID
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}
