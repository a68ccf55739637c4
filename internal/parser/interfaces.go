package parser

import "io"

// Parser defines a generic interface for decoding a directory response body
// into normalized records
type Parser[T any] interface {
	Parse(body io.Reader) ([]T, error)
}
