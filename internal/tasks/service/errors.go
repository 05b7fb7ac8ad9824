package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidID         = errors.New("invalid id")
	ErrInvalidTaskID     = fmt.Errorf("%w: task", ErrInvalidID)
	ErrInvalidUserID     = fmt.Errorf("%w: user", ErrInvalidID)
	ErrInvalidAssigneeID = fmt.Errorf("%w: assigned user", ErrInvalidID)

	ErrTaskNotFound     = errors.New("task not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrAssigneeNotFound = errors.New("assigned user not found")

	ErrMissingTaskFields = errors.New("missing required task fields")
	ErrInvalidStatus     = errors.New("invalid task status")
	ErrNoUpdateFields    = errors.New("no valid fields to update")
	ErrInvalidPatch      = errors.New("invalid update")

	ErrDuplicateUser        = errors.New("user already exists")
	ErrDuplicateUserProfile = fmt.Errorf("%w: profile update", ErrDuplicateUser)
	ErrInvalidCredentials   = errors.New("invalid credentials")

	ErrTokenMissing   = errors.New("token missing")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)
