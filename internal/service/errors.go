package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	// ErrInvalidCredentials covers both unknown email and wrong password;
	// login failures are deliberately undifferentiated.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)

// ===== Form Errors =====
var (
	ErrFormNotFound = errors.New("form not found")
	ErrNotFormOwner = errors.New("form belongs to another member")
	ErrRowNotFound  = errors.New("row not found")
)

// ===== Picture Errors =====
var (
	ErrPictureNotFound = errors.New("no picture uploaded")
	ErrPictureTooLarge = errors.New("picture exceeds the maximum size")
	ErrPictureBadType  = errors.New("picture must be a JPEG or PNG image")
)
