package models

// Comment is a reader comment attached to exactly one article.
// Comments are append-only from the client.
type Comment struct {
	UserName string `json:"userName"`
	Body     string `json:"comment_body"`
	DateTime string `json:"dateTime"`
}

// CommentRequest is the body of a comment submission.
type CommentRequest struct {
	Content string `json:"content"`
}
