package request

// Comment is the body of POST /posts/:id/comments and PUT /comments/:id.
// Length rules live in the domain, binding only rejects a missing body.
type Comment struct {
	Body string `json:"body" binding:"required"`
}
