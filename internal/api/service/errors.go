package service

import "errors"

// ErrInvalidCredentials covers both unknown email and wrong password.
// The two are deliberately indistinguishable so login never leaks whether
// an account exists.
var ErrInvalidCredentials = errors.New("service: invalid credentials")

// ValidationError is a user-facing input rejection. Handlers map it to a
// 400 response carrying the message verbatim.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }
