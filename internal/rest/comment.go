package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/social-feed/domain"
	"github.com/Guyuepp/social-feed/internal/query"
	"github.com/Guyuepp/social-feed/internal/rest/request"
	"github.com/Guyuepp/social-feed/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentService
	Queries *query.Queries
}

func NewCommentHandler(svc domain.CommentService, q *query.Queries) *commentHandler {
	return &commentHandler{
		Service: svc,
		Queries: q,
	}
}

func (h *commentHandler) FetchCommentsByPost(c *gin.Context) {
	res := h.Queries.CommentsByPostID(c.Request.Context(), c.Param("id"))
	if res.IsError() {
		c.JSON(getStatusCode(res.Err), ResponseError{Message: res.Err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewCommentList(res.Data))
}

func (h *commentHandler) GetByID(c *gin.Context) {
	comment, err := h.Service.GetCommentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *commentHandler) CreateComment(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	// Get post ID from URL parameter
	postID := c.Param("id")
	ctx := c.Request.Context()
	comment, err := h.Service.CreateComment(ctx, postID, req.Body, actingAuthor(c))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	h.Queries.InvalidateComments(ctx, postID)
	h.Queries.InvalidatePost(ctx, postID)
	c.JSON(http.StatusCreated, comment)
}

func (h *commentHandler) UpdateComment(c *gin.Context) {
	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	uid, ok := actingUser(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	comment, err := h.Service.UpdateComment(ctx, c.Param("id"), req.Body, uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	h.Queries.InvalidateComments(ctx, comment.PostID.String())
	c.JSON(http.StatusOK, comment)
}

func (h *commentHandler) DeleteComment(c *gin.Context) {
	uid, ok := actingUser(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.Service.DeleteComment(ctx, c.Param("id"), uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	h.Queries.InvalidateAllComments(ctx)
	c.JSON(http.StatusOK, response.Message{Message: "Comment deleted successfully"})
}

func (h *commentHandler) Like(c *gin.Context) {
	h.toggleLike(c, h.Service.LikeComment)
}

func (h *commentHandler) Unlike(c *gin.Context) {
	h.toggleLike(c, h.Service.UnlikeComment)
}

func (h *commentHandler) toggleLike(c *gin.Context, fn func(ctx context.Context, id, userID string) (*domain.CommentDTO, error)) {
	uid, ok := actingUser(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	comment, err := fn(ctx, c.Param("id"), uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	h.Queries.InvalidateComments(ctx, comment.PostID.String())
	c.JSON(http.StatusOK, comment)
}
