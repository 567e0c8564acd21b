package apperrors

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrTopicNotFound  = errors.New("topic not found")
	ErrDuplicateTopic = errors.New("duplicate topic")
	ErrNoContent      = errors.New("content pack has no topics")
)
