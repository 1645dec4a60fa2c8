package site

import "errors"

var (
	// ErrIO marks failures opening, reading or writing local files and streams.
	ErrIO = errors.New("i/o error")
	// ErrNetwork marks unreachable resources and non-success HTTP responses.
	ErrNetwork = errors.New("network error")
	// ErrParse marks documents that do not have the expected shape.
	ErrParse = errors.New("parse error")
	// ErrSerialization marks output that could not be encoded.
	ErrSerialization = errors.New("serialization error")
)
