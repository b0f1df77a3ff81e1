package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bloglist/internal/models"
	repo "bloglist/internal/repository"
)

type usersRepo struct {
	col   *mongo.Collection
	blogs *mongo.Collection
}

func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	if u.BlogIDs == nil {
		u.BlogIDs = []primitive.ObjectID{}
	}
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, repo.ErrDuplicateUsername
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, repo.ErrMalformedID
	}
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, repo.ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, repo.ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

func (r *usersRepo) AppendBlog(ctx context.Context, userID, blogID string) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return repo.ErrMalformedID
	}
	bid, err := primitive.ObjectIDFromHex(blogID)
	if err != nil {
		return repo.ErrMalformedID
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": uid}, bson.M{"$push": bson.M{"blogs": bid}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// ListWithBlogs is the population join: one query for the users, one $in
// query for every referenced blog, stitched in memory.
func (r *usersRepo) ListWithBlogs(ctx context.Context) ([]models.User, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}

	var ids []primitive.ObjectID
	for _, u := range users {
		ids = append(ids, u.BlogIDs...)
	}
	refs := map[primitive.ObjectID]models.BlogRef{}
	if len(ids) > 0 {
		bcur, err := r.blogs.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return nil, err
		}
		defer bcur.Close(ctx)
		var blogs []models.Blog
		if err := bcur.All(ctx, &blogs); err != nil {
			return nil, err
		}
		for _, b := range blogs {
			refs[b.ID] = b.Ref()
		}
	}

	for i := range users {
		users[i].Blogs = []models.BlogRef{}
		for _, bid := range users[i].BlogIDs {
			if ref, ok := refs[bid]; ok {
				users[i].Blogs = append(users[i].Blogs, ref)
			}
		}
	}
	return users, nil
}
