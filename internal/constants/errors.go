package constants

import "errors"

// Configuration errors.
var (
	ErrUnknownEnvironment = errors.New("unknown environment")
)

// CLI errors.
var (
	ErrInvalidFilterSpec = errors.New("filter must be in field:op:value form")
	ErrInvalidSortSpec   = errors.New("sort must be in field:asc or field:desc form")
	ErrPasswordFromStdin = errors.New("reading password from terminal failed")
)
