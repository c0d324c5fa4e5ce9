package moderation

import "errors"

var (
	ErrAutoReport      = errors.New("users can not report their own posts")
	ErrAlreadyReported = errors.New("user already reported this post")
	ErrWordNotFound    = errors.New("forbidden word not found")
)
