package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/devconnect/middleware"
	"github.com/devconnect/devconnect/service"
	"github.com/devconnect/devconnect/utils"
)

// PostController exposes the posts API: CRUD for posts plus the nested
// like/unlike/comment mutations.
type PostController struct {
	svc service.PostService
}

// NewPostController creates a new PostController instance.
func NewPostController(svc service.PostService) *PostController {
	return &PostController{svc: svc}
}

// CreatePost allows authenticated users to create new posts.
func (p *PostController) CreatePost(ctx *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40020, "text is required")
		return
	}

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	post, err := p.svc.CreatePost(ctx.Request.Context(), userID, utils.Sanitize(req.Text))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	utils.InvalidateByPrefix("cache:posts:list")

	utils.Success(ctx, gin.H{"post": post})
}

// ListPosts returns all posts, most recent first.
func (p *PostController) ListPosts(ctx *gin.Context) {
	const cacheKey = "cache:posts:list"
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(200, "application/json", b)
		return
	}

	posts, err := p.svc.ListPosts(ctx.Request.Context())
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	payload := gin.H{"posts": posts}
	utils.CacheSetJSON(cacheKey, utils.JSONResponse{Code: 0, Message: "success", Data: payload}, time.Hour)
	utils.Success(ctx, payload)
}

// GetPost returns a single post with its likes and comments.
func (p *PostController) GetPost(ctx *gin.Context) {
	postID := ctx.Param("id")

	if b, ok := utils.CacheGetBytes("cache:post:detail:" + postID); ok {
		ctx.Data(200, "application/json", b)
		return
	}

	post, err := p.svc.GetPost(ctx.Request.Context(), postID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	payload := gin.H{"post": post}
	utils.CacheSetJSON("cache:post:detail:"+postID, utils.JSONResponse{Code: 0, Message: "success", Data: payload}, time.Hour)
	utils.Success(ctx, payload)
}

// DeletePost allows the author to delete their post.
func (p *PostController) DeletePost(ctx *gin.Context) {
	postID := ctx.Param("id")

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	if err := p.svc.DeletePost(ctx.Request.Context(), postID, userID); err != nil {
		respondServiceError(ctx, err)
		return
	}

	utils.InvalidateByPrefix("cache:posts:list")
	utils.InvalidateByPrefix("cache:post:detail:" + postID)

	utils.Success(ctx, gin.H{"message": "post removed"})
}

// LikePost records a like for the calling user.
func (p *PostController) LikePost(ctx *gin.Context) {
	postID := ctx.Param("id")

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	likes, err := p.svc.LikePost(ctx.Request.Context(), postID, userID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	utils.InvalidateByPrefix("cache:posts:list")
	utils.InvalidateByPrefix("cache:post:detail:" + postID)

	utils.Success(ctx, gin.H{"likes": likes})
}

// UnlikePost removes the calling user's like.
func (p *PostController) UnlikePost(ctx *gin.Context) {
	postID := ctx.Param("id")

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	likes, err := p.svc.UnlikePost(ctx.Request.Context(), postID, userID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	utils.InvalidateByPrefix("cache:posts:list")
	utils.InvalidateByPrefix("cache:post:detail:" + postID)

	utils.Success(ctx, gin.H{"likes": likes})
}

// CreateComment allows authenticated users to comment on posts.
func (p *PostController) CreateComment(ctx *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40022, "text is required")
		return
	}

	postID := ctx.Param("id")

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	comments, err := p.svc.AddComment(ctx.Request.Context(), postID, userID, utils.Sanitize(req.Text))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	utils.InvalidateByPrefix("cache:posts:list")
	utils.InvalidateByPrefix("cache:post:detail:" + postID)

	utils.Success(ctx, gin.H{"comments": comments})
}

// DeleteComment allows the comment's author to remove it.
func (p *PostController) DeleteComment(ctx *gin.Context) {
	postID := ctx.Param("id")
	commentID := ctx.Param("commentId")

	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, 40110, "unauthorized")
		return
	}

	comments, err := p.svc.RemoveComment(ctx.Request.Context(), postID, commentID, userID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	utils.InvalidateByPrefix("cache:posts:list")
	utils.InvalidateByPrefix("cache:post:detail:" + postID)

	utils.Success(ctx, gin.H{"comments": comments})
}

// respondServiceError translates service sentinel errors into HTTP
// responses. Unexpected errors are logged and surfaced as a generic 500.
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTextRequired):
		utils.Error(ctx, http.StatusBadRequest, 40021, service.ErrTextRequired.Error())
	case errors.Is(err, service.ErrAlreadyLiked):
		utils.Error(ctx, http.StatusBadRequest, 40030, service.ErrAlreadyLiked.Error())
	case errors.Is(err, service.ErrNotLiked):
		utils.Error(ctx, http.StatusBadRequest, 40031, service.ErrNotLiked.Error())
	case errors.Is(err, service.ErrNotPostOwner):
		utils.Error(ctx, http.StatusForbidden, 40301, service.ErrNotPostOwner.Error())
	case errors.Is(err, service.ErrNotCommentOwner):
		utils.Error(ctx, http.StatusForbidden, 40302, service.ErrNotCommentOwner.Error())
	case errors.Is(err, service.ErrPostNotFound):
		utils.Error(ctx, http.StatusNotFound, 40401, service.ErrPostNotFound.Error())
	case errors.Is(err, service.ErrCommentNotFound):
		utils.Error(ctx, http.StatusNotFound, 40402, service.ErrCommentNotFound.Error())
	case errors.Is(err, service.ErrUserNotFound):
		utils.Error(ctx, http.StatusNotFound, 40403, service.ErrUserNotFound.Error())
	default:
		if utils.Sugar != nil {
			utils.Sugar.Errorf("posts api failure: %v", err)
		}
		utils.Error(ctx, http.StatusInternalServerError, 50020, "internal server error")
	}
}

func getUserID(ctx *gin.Context) (string, bool) {
	value, exists := ctx.Get(middleware.ContextUserIDKey)
	if !exists {
		return "", false
	}
	id, ok := value.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
