package store

import "errors"

var (
	ErrMessageNotFound = errors.New("message not found in local cache")
	ErrGroupNotFound   = errors.New("group not found in local cache")
)
