package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bloglist/internal/auth"
	"bloglist/internal/models"
	repo "bloglist/internal/repository"
)

type fakeUsers struct {
	byID map[string]models.User
}

func (f *fakeUsers) Create(ctx context.Context, u models.User) (models.User, error) {
	return u, nil
}
func (f *fakeUsers) GetByID(ctx context.Context, id string) (models.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.User{}, repo.ErrMalformedID
	}
	u, ok := f.byID[id]
	if !ok {
		return models.User{}, repo.ErrNotFound
	}
	return u, nil
}
func (f *fakeUsers) GetByUsername(ctx context.Context, username string) (models.User, error) {
	return models.User{}, repo.ErrNotFound
}
func (f *fakeUsers) AppendBlog(ctx context.Context, userID, blogID string) error { return nil }
func (f *fakeUsers) ListWithBlogs(ctx context.Context) ([]models.User, error)    { return nil, nil }

func extractedToken(t *testing.T, header string) (string, bool) {
	t.Helper()
	var token string
	var ok bool
	h := TokenExtractor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok = TokenFrom(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)
	return token, ok
}

func TestTokenExtractor(t *testing.T) {
	t.Parallel()

	tok, ok := extractedToken(t, "Bearer abc.def.ghi")
	require.True(t, ok)
	require.Equal(t, "abc.def.ghi", tok)

	// prefix match is case-insensitive
	tok, ok = extractedToken(t, "bEaReR xyz")
	require.True(t, ok)
	require.Equal(t, "xyz", tok)

	_, ok = extractedToken(t, "")
	require.False(t, ok)

	_, ok = extractedToken(t, "Basic dXNlcjpwYXNz")
	require.False(t, ok)
}

func requireUserStatus(t *testing.T, m *AuthMiddleware, authHeader string) (int, models.User, bool) {
	t.Helper()
	var u models.User
	var ok bool
	h := TokenExtractor(m.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok = UserFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})))
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code, u, ok
}

func TestRequireUser(t *testing.T) {
	t.Parallel()

	uid := primitive.NewObjectID()
	user := models.User{ID: uid, Username: "testuser", Name: "Test"}
	users := &fakeUsers{byID: map[string]models.User{uid.Hex(): user}}
	tm := auth.NewTokenManager("secret", time.Hour)
	m := NewAuthMiddleware(tm, users)

	token, err := tm.Issue(user.Username, uid.Hex())
	require.NoError(t, err)

	code, got, ok := requireUserStatus(t, m, "Bearer "+token)
	require.Equal(t, http.StatusOK, code)
	require.True(t, ok)
	require.Equal(t, user.Username, got.Username)
	require.Equal(t, uid, got.ID)
}

func TestRequireUserMissingToken(t *testing.T) {
	t.Parallel()

	tm := auth.NewTokenManager("secret", time.Hour)
	m := NewAuthMiddleware(tm, &fakeUsers{byID: map[string]models.User{}})

	code, _, _ := requireUserStatus(t, m, "")
	require.Equal(t, http.StatusUnauthorized, code)
}

func TestRequireUserExpiredToken(t *testing.T) {
	t.Parallel()

	uid := primitive.NewObjectID()
	expired := auth.NewTokenManager("secret", -time.Second)
	token, err := expired.Issue("testuser", uid.Hex())
	require.NoError(t, err)

	m := NewAuthMiddleware(auth.NewTokenManager("secret", time.Hour), &fakeUsers{byID: map[string]models.User{}})
	code, _, _ := requireUserStatus(t, m, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, code)
}

func TestRequireUserUnknownUser(t *testing.T) {
	t.Parallel()

	tm := auth.NewTokenManager("secret", time.Hour)
	token, err := tm.Issue("ghost", primitive.NewObjectID().Hex())
	require.NoError(t, err)

	m := NewAuthMiddleware(tm, &fakeUsers{byID: map[string]models.User{}})
	code, _, _ := requireUserStatus(t, m, "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, code)
}
