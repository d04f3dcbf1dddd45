package errors

import "fmt"

var (
	ErrChannelNotFound      = fmt.Errorf("channel not found")
	ErrChannelAlreadyExists = fmt.Errorf("channel already exists")
	ErrUserNotFound         = fmt.Errorf("user not found")
	ErrUserAlreadyExists    = fmt.Errorf("user already exists")
	ErrForbidden            = fmt.Errorf("caller lacks the required role")
	ErrInvalidState         = fmt.Errorf("operation not applicable to current membership state")
	ErrInvalidCredentials   = fmt.Errorf("invalid credentials")
	ErrInvalidPassword      = fmt.Errorf("password does not meet complexity rules")
	ErrTokenGeneration      = fmt.Errorf("token generation failed")
	ErrWorkerPanic          = fmt.Errorf("worker panic")
)
