package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/social-feed/domain"
	"github.com/Guyuepp/social-feed/internal/query"
	"github.com/Guyuepp/social-feed/internal/rest/request"
	"github.com/Guyuepp/social-feed/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// PostHandler  represent the httphandler for post
type PostHandler struct {
	Service domain.PostService
	Queries *query.Queries
}

const (
	DefaultPageNum = 10
	PageMinNum     = 5
	PageMaxNum     = 30
)

func NewPostHandler(svc domain.PostService, q *query.Queries) *PostHandler {
	return &PostHandler{
		Service: svc,
		Queries: q,
	}
}

// FetchPosts will fetch a page of posts based on limit and skip
func (p *PostHandler) FetchPosts(c *gin.Context) {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < PageMinNum || limit > PageMaxNum {
		limit = DefaultPageNum
	}
	skip, err := strconv.Atoi(c.Query("skip"))
	if err != nil || skip < 0 {
		skip = 0
	}

	res := p.Queries.Posts(c.Request.Context(), domain.ListOptions{Limit: limit, Skip: skip})
	if res.IsError() {
		c.JSON(getStatusCode(res.Err), ResponseError{Message: res.Err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewPostList(res.Data, limit, skip))
}

func (p *PostHandler) SearchPosts(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, ResponseError{Message: "Search query is required"})
		return
	}

	res := p.Queries.SearchPosts(c.Request.Context(), q)
	if res.IsError() {
		c.JSON(getStatusCode(res.Err), ResponseError{Message: res.Err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewPostList(res.Data, len(res.Data), 0))
}

// GetByID will get the post by given id, together with its comments
func (p *PostHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	res := p.Queries.PostByID(c.Request.Context(), id, id != "")
	if res.IsError() {
		c.JSON(getStatusCode(res.Err), ResponseError{Message: res.Err.Error()})
		return
	}
	c.JSON(http.StatusOK, res.Data)
}

// Store will create the post by given request body
func (p *PostHandler) Store(c *gin.Context) {
	var req request.Post
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	ctx := c.Request.Context()
	post, err := p.Service.CreatePost(ctx, req.Title, req.Body, actingAuthor(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	p.Queries.InvalidatePost(ctx, post.ID.String())
	c.JSON(http.StatusCreated, post)
}

func (p *PostHandler) Update(c *gin.Context) {
	var req request.Post
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	uid, ok := actingUser(c)
	if !ok {
		return
	}

	id := c.Param("id")
	ctx := c.Request.Context()
	post, err := p.Service.UpdatePost(ctx, id, req.ToUpdate(), uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	p.Queries.InvalidatePost(ctx, id)
	c.JSON(http.StatusOK, post)
}

// Delete will delete the post by given param
func (p *PostHandler) Delete(c *gin.Context) {
	uid, ok := actingUser(c)
	if !ok {
		return
	}

	id := c.Param("id")
	ctx := c.Request.Context()
	if err := p.Service.DeletePost(ctx, id, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	p.Queries.InvalidatePost(ctx, id)
	p.Queries.InvalidateComments(ctx, id)
	c.Status(http.StatusNoContent)
}

// Like adds a like to the post
func (p *PostHandler) Like(c *gin.Context) {
	p.toggleLike(c, p.Service.LikePost)
}

// Unlike removes a like from the post
func (p *PostHandler) Unlike(c *gin.Context) {
	p.toggleLike(c, p.Service.UnlikePost)
}

func (p *PostHandler) toggleLike(c *gin.Context, fn func(ctx context.Context, id, userID string) (*domain.PostDTO, error)) {
	uid, ok := actingUser(c)
	if !ok {
		return
	}

	id := c.Param("id")
	ctx := c.Request.Context()
	post, err := fn(ctx, id, uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	p.Queries.InvalidatePost(ctx, id)
	c.JSON(http.StatusOK, post)
}

// actingUser reads the id stored by the authentication middleware
func actingUser(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	uid, _ := userID.(string)
	if !exists || uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	return uid, true
}

// actingAuthor returns the user resolved by the authentication middleware, nil if there is none
func actingAuthor(c *gin.Context) *domain.UserReference {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	user, ok := v.(*domain.User)
	if !ok || user == nil {
		return nil
	}
	ref := user.Reference()
	return &ref
}

// getStatusCode will get the code of the error from the BaseError kind
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrFetchFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
