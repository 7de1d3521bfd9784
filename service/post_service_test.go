package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/devconnect/devconnect/models"
	"github.com/devconnect/devconnect/store"
)

type fakePostStore struct {
	posts   map[string]*models.Post
	saveErr error
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: map[string]*models.Post{}}
}

func clonePost(p *models.Post) *models.Post {
	cp := *p
	cp.Likes = append([]models.Like(nil), p.Likes...)
	cp.Comments = append([]models.Comment(nil), p.Comments...)
	return &cp
}

func (f *fakePostStore) FindByID(_ context.Context, id string) (*models.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return clonePost(p), nil
}

func (f *fakePostStore) FindAll(_ context.Context) ([]models.Post, error) {
	out := make([]models.Post, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, *clonePost(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakePostStore) Save(_ context.Context, post *models.Post) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.posts[post.ID] = clonePost(post)
	return nil
}

func (f *fakePostStore) Delete(_ context.Context, post *models.Post) error {
	delete(f.posts, post.ID)
	return nil
}

type fakeUserStore struct {
	users map[string]*models.User
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func newTestService() (PostService, *fakePostStore, *fakeUserStore) {
	posts := newFakePostStore()
	users := &fakeUserStore{users: map[string]*models.User{
		"user-a": {ID: "user-a", Name: "Alice", AvatarURL: "https://avatars.test/a.png"},
		"user-b": {ID: "user-b", Name: "Bob", AvatarURL: "https://avatars.test/b.png"},
	}}
	return NewPostService(posts, users), posts, users
}

func TestCreatePostSnapshotsAuthor(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "user-a", "hello")
	assert.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "hello", post.Text)
	assert.Equal(t, "user-a", post.UserID)
	assert.Equal(t, "Alice", post.AuthorName)
	assert.Equal(t, "https://avatars.test/a.png", post.AuthorAvatar)
	assert.Empty(t, post.Likes)
	assert.Empty(t, post.Comments)

	// Round trip through the store.
	got, err := svc.GetPost(ctx, post.ID)
	assert.NoError(t, err)
	assert.Equal(t, post.Text, got.Text)
	assert.Equal(t, post.AuthorName, got.AuthorName)
}

func TestCreatePostValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, "user-a", "   ")
	assert.ErrorIs(t, err, ErrTextRequired)

	_, err = svc.CreatePost(ctx, "ghost", "hello")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListPostsNewestFirst(t *testing.T) {
	svc, posts, _ := newTestService()
	ctx := context.Background()

	base := time.Now()
	for i, text := range []string{"first", "second", "third"} {
		posts.posts[text] = &models.Post{
			ID:        text,
			UserID:    "user-a",
			Text:      text,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}

	list, err := svc.ListPosts(ctx)
	assert.NoError(t, err)
	assert.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Text)
	assert.Equal(t, "second", list[1].Text)
	assert.Equal(t, "first", list[2].Text)
}

func TestGetPostNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetPost(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePostOwnership(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "user-a", "mine")
	assert.NoError(t, err)

	err = svc.DeletePost(ctx, post.ID, "user-b")
	assert.ErrorIs(t, err, ErrNotPostOwner)

	err = svc.DeletePost(ctx, post.ID, "user-a")
	assert.NoError(t, err)

	_, err = svc.GetPost(ctx, post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	err = svc.DeletePost(ctx, post.ID, "user-a")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestLikePostIsNotIdempotent(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "user-a", "hello")
	assert.NoError(t, err)

	likes, err := svc.LikePost(ctx, post.ID, "user-b")
	assert.NoError(t, err)
	assert.Len(t, likes, 1)
	assert.Equal(t, "user-b", likes[0].UserID)

	_, err = svc.LikePost(ctx, post.ID, "user-b")
	assert.ErrorIs(t, err, ErrAlreadyLiked)
}

func TestLikesArePrependedNewestFirst(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "user-a", "hello")
	assert.NoError(t, err)

	_, err = svc.LikePost(ctx, post.ID, "user-a")
	assert.NoError(t, err)
	likes, err := svc.LikePost(ctx, post.ID, "user-b")
	assert.NoError(t, err)

	assert.Equal(t, "user-b", likes[0].UserID)
	assert.Equal(t, "user-a", likes[1].UserID)
}

func TestUnlikePost(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "user-a", "hello")
	assert.NoError(t, err)

	_, err = svc.UnlikePost(ctx, post.ID, "user-b")
	assert.ErrorIs(t, err, ErrNotLiked)

	_, err = svc.LikePost(ctx, post.ID, "user-a")
	assert.NoError(t, err)
	_, err = svc.LikePost(ctx, post.ID, "user-b")
	assert.NoError(t, err)

	likes, err := svc.UnlikePost(ctx, post.ID, "user-a")
	assert.NoError(t, err)
	assert.Len(t, likes, 1)
	assert.Equal(t, "user-b", likes[0].UserID)
}

func TestAddCommentSnapshotsAuthor(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "user-a", "hello")
	assert.NoError(t, err)

	_, err = svc.AddComment(ctx, post.ID, "user-b", "")
	assert.ErrorIs(t, err, ErrTextRequired)

	comments, err := svc.AddComment(ctx, post.ID, "user-b", "hi")
	assert.NoError(t, err)
	assert.Len(t, comments, 1)
	assert.Equal(t, "hi", comments[0].Text)
	assert.Equal(t, "user-b", comments[0].UserID)
	assert.Equal(t, "Bob", comments[0].AuthorName)
	assert.Equal(t, "https://avatars.test/b.png", comments[0].AuthorAvatar)

	_, err = svc.AddComment(ctx, "no-such-post", "user-b", "hi")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestRemoveCommentRestoresPreviousSequence(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "user-a", "hello")
	assert.NoError(t, err)

	before, err := svc.AddComment(ctx, post.ID, "user-a", "first!")
	assert.NoError(t, err)

	comments, err := svc.AddComment(ctx, post.ID, "user-b", "hi")
	assert.NoError(t, err)
	assert.Len(t, comments, 2)
	newComment := comments[0]

	after, err := svc.RemoveComment(ctx, post.ID, newComment.ID, "user-b")
	assert.NoError(t, err)
	assert.Equal(t, len(before), len(after))
	assert.Equal(t, before[0].ID, after[0].ID)
}

func TestRemoveCommentOnlyByCommentAuthor(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	// user-a owns the post, user-b wrote the comment.
	post, err := svc.CreatePost(ctx, "user-a", "hello")
	assert.NoError(t, err)
	comments, err := svc.AddComment(ctx, post.ID, "user-b", "hi")
	assert.NoError(t, err)

	_, err = svc.RemoveComment(ctx, post.ID, comments[0].ID, "user-a")
	assert.ErrorIs(t, err, ErrNotCommentOwner)

	remaining, err := svc.RemoveComment(ctx, post.ID, comments[0].ID, "user-b")
	assert.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestRemoveCommentNotFound(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	post, err := svc.CreatePost(ctx, "user-a", "hello")
	assert.NoError(t, err)

	_, err = svc.RemoveComment(ctx, post.ID, "no-such-comment", "user-a")
	assert.ErrorIs(t, err, ErrCommentNotFound)
}
