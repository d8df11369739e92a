package core

var (
	ErrInvalidModule   = errorString("invalid endpoint module")
	ErrDuplicateModule = errorString("endpoint module already registered")
	ErrUnknownEndpoint = errorString("endpoint not registered")
	ErrBadRegistration = errorString("endpoint registration rejected")
)

type errorString string

func (e errorString) Error() string { return string(e) }
