package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bloglist/internal/models"
)

func blog(title, author string, likes int) models.Blog {
	return models.Blog{Title: title, Author: author, URL: "http://example.com", Likes: likes}
}

var sample = []models.Blog{
	blog("Go Concurrency Patterns", "Rob Pike", 7),
	blog("Errors are values", "Rob Pike", 12),
	blog("Clean Architecture", "Robert C. Martin", 10),
	blog("TDD harms architecture", "Robert C. Martin", 0),
	blog("Type wars", "Robert C. Martin", 2),
	blog("First class functions", "Michael Chan", 12),
}

func TestTotalLikes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, TotalLikes(nil))
	assert.Equal(t, 0, TotalLikes([]models.Blog{}))
	assert.Equal(t, 7, TotalLikes(sample[:1]))
	assert.Equal(t, 43, TotalLikes(sample))
}

func TestFavoriteBlog(t *testing.T) {
	t.Parallel()

	assert.Nil(t, FavoriteBlog(nil))

	got := FavoriteBlog(sample)
	if assert.NotNil(t, got) {
		// two blogs have 12 likes; the earlier one wins
		assert.Equal(t, &BlogSummary{Title: "Errors are values", Author: "Rob Pike", Likes: 12}, got)
	}
}

func TestFavoriteBlogSingle(t *testing.T) {
	t.Parallel()

	got := FavoriteBlog(sample[:1])
	assert.Equal(t, &BlogSummary{Title: "Go Concurrency Patterns", Author: "Rob Pike", Likes: 7}, got)
}

func TestMostBlogs(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MostBlogs(nil))
	assert.Equal(t, &AuthorBlogs{Author: "Robert C. Martin", Blogs: 3}, MostBlogs(sample))
}

func TestMostBlogsTie(t *testing.T) {
	t.Parallel()

	tied := []models.Blog{
		blog("a", "First Author", 1),
		blog("b", "Second Author", 1),
		blog("c", "First Author", 1),
		blog("d", "Second Author", 1),
	}
	assert.Equal(t, &AuthorBlogs{Author: "First Author", Blogs: 2}, MostBlogs(tied))
}

func TestMostLikes(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MostLikes(nil))
	assert.Equal(t, &AuthorLikes{Author: "Rob Pike", Likes: 19}, MostLikes(sample))
}

func TestMostLikesTie(t *testing.T) {
	t.Parallel()

	tied := []models.Blog{
		blog("a", "First Author", 3),
		blog("b", "Second Author", 5),
		blog("c", "First Author", 2),
	}
	// both authors sum to 5; the first-encountered author wins
	assert.Equal(t, &AuthorLikes{Author: "First Author", Likes: 5}, MostLikes(tied))
}
