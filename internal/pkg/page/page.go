// Package page implements offset pagination shared by every list query.
package page

import (
	"errors"
	"math"

	"takeout/internal/pkg/errs"
	"takeout/internal/pkg/guard"
)

const (
	DefaultNumber = 0
	DefaultSize   = 10
	MaxSize       = 100
)

var ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

// Request addresses one page: Number is zero-based, Size is at least 1.
// Sizes above MaxSize are accepted and served as MaxSize.
type Request struct {
	number int
	size   int

	guard guard.ConstructorGuard
}

func NewRequest(number, size int) (Request, error) {
	if number < 0 {
		return Request{}, errs.NewValueIsOutOfRangeError("page", number, 0, math.MaxInt32)
	}
	if size < 1 {
		return Request{}, errs.NewValueIsOutOfRangeError("size", size, 1, math.MaxInt32)
	}
	size = min(size, MaxSize)
	return Request{number: number, size: size, guard: guard.NewConstructorGuard()}, nil
}

// DefaultRequest is the first page with the default size.
func DefaultRequest() Request {
	return Request{number: DefaultNumber, size: DefaultSize, guard: guard.NewConstructorGuard()}
}

func (r Request) Validate() error {
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

func (r Request) Number() int { return r.number }

func (r Request) Size() int { return r.size }

// Offset is the number of rows to skip.
func (r Request) Offset() int {
	return r.number * r.size
}

// Page is the wire shape of a paged result.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
}

// New assembles a Page from one slice of rows and the total row count.
func New[T any](content []T, req Request, total int64) Page[T] {
	if content == nil {
		content = make([]T, 0)
	}
	totalPages := int((total + int64(req.size) - 1) / int64(req.size))
	return Page[T]{
		Content:       content,
		Page:          req.number,
		Size:          req.size,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          req.number >= totalPages-1,
	}
}

// Map converts the content of a page, keeping the paging metadata.
func Map[T, R any](p Page[T], fn func(T) R) Page[R] {
	out := make([]R, len(p.Content))
	for i, item := range p.Content {
		out[i] = fn(item)
	}
	return Page[R]{
		Content:       out,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Last:          p.Last,
	}
}
