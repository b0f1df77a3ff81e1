// Package stats computes aggregates over an in-memory list of blogs. It has
// no persistence and no knowledge of the store.
package stats

import "bloglist/internal/models"

// BlogSummary is FavoriteBlog's result, without identity or owner fields.
type BlogSummary struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

func TotalLikes(blogs []models.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the most-liked blog, first occurrence winning ties.
// Nil for an empty list.
func FavoriteBlog(blogs []models.Blog) *BlogSummary {
	if len(blogs) == 0 {
		return nil
	}
	best := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > best.Likes {
			best = b
		}
	}
	return &BlogSummary{Title: best.Title, Author: best.Author, Likes: best.Likes}
}

// MostBlogs returns the author with the most entries. Ties go to the author
// encountered first in input order. Nil for an empty list.
func MostBlogs(blogs []models.Blog) *AuthorBlogs {
	if len(blogs) == 0 {
		return nil
	}
	counts := map[string]int{}
	var order []string
	for _, b := range blogs {
		if _, seen := counts[b.Author]; !seen {
			order = append(order, b.Author)
		}
		counts[b.Author]++
	}
	best := AuthorBlogs{Author: order[0], Blogs: counts[order[0]]}
	for _, a := range order[1:] {
		if counts[a] > best.Blogs {
			best = AuthorBlogs{Author: a, Blogs: counts[a]}
		}
	}
	return &best
}

// MostLikes returns the author with the greatest summed likes, with the same
// stable tie-break as MostBlogs. Nil for an empty list.
func MostLikes(blogs []models.Blog) *AuthorLikes {
	if len(blogs) == 0 {
		return nil
	}
	likes := map[string]int{}
	var order []string
	for _, b := range blogs {
		if _, seen := likes[b.Author]; !seen {
			order = append(order, b.Author)
		}
		likes[b.Author] += b.Likes
	}
	best := AuthorLikes{Author: order[0], Likes: likes[order[0]]}
	for _, a := range order[1:] {
		if likes[a] > best.Likes {
			best = AuthorLikes{Author: a, Likes: likes[a]}
		}
	}
	return &best
}
