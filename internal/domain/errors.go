package domain

import "errors"

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("already signed up for this activity")
	ErrNotSignedUp      = errors.New("not signed up for this activity")
	ErrEmailRequired    = errors.New("email is required")
	ErrActivityFull     = errors.New("activity is full")
)
