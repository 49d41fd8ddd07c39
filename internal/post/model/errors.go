package model

import "errors"

var (
	// ErrPostNotFound indicates the requested match post does not exist.
	ErrPostNotFound = errors.New("match post not found")
	// ErrNotAuthor indicates the actor did not author the post.
	ErrNotAuthor = errors.New("only the post author may perform this action")
	// ErrPostInactive indicates the post has been deactivated or converted.
	ErrPostInactive = errors.New("match post is no longer active")
	// ErrInvalidPostData indicates a malformed post payload.
	ErrInvalidPostData = errors.New("invalid match post data")
)
