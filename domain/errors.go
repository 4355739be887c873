package domain

import "errors"

var (
	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrEmptyComment indicates the user submitted an empty comment.
	ErrEmptyComment = errors.New("comment cannot be empty")

	// ErrCommentTooLong indicates the comment exceeds the character limit.
	ErrCommentTooLong = errors.New("comment exceeds character limit")

	// ErrEmptyBlog indicates a blog submission with no title or content.
	ErrEmptyBlog = errors.New("blog title and content cannot be empty")

	// ErrTimeout indicates a request hit its deadline before completing.
	ErrTimeout = errors.New("request timed out")
)

// MaxCommentLength is the client-side limit on comment bodies. The server
// enforces its own limit; this one only saves a round trip.
const MaxCommentLength = 2000
