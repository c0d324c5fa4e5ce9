package graph

import "errors"

var (
	ErrInvalidUsername   = errors.New("invalid username")
	ErrAlreadyRegistered = errors.New("user already registered")
	ErrUserNotFound      = errors.New("user not found")

	ErrEmptyText   = errors.New("post text is empty")
	ErrTextTooLong = errors.New("post text is too long")

	ErrAlreadyPublished = errors.New("post already published")
	ErrPostNotFound     = errors.New("post not found")

	ErrLikeNotFound = errors.New("like not found")
	ErrAutoLike     = errors.New("users can not like their own posts")
)
