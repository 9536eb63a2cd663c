package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shandysiswandi/gobook/internal/book/entity"
	"github.com/shandysiswandi/gobook/internal/pkg/pkgerror"
)

const (
	defaultPrice = 39.95
	nameSuffix   = " suffix"
)

var errInvalidBookID = errors.New("book id must be greater than or equal to 1")

type Usecase struct{}

func New() *Usecase {
	return &Usecase{}
}

// Find describes the book with the given id. Books are not stored; every
// valid id maps to the same generated description.
func (u *Usecase) Find(ctx context.Context, id int64) (entity.Book, error) {
	if id < 1 {
		return entity.Book{}, pkgerror.NewInvalidInput(errInvalidBookID)
	}

	slog.DebugContext(ctx, "describe book", "book_id", id)

	return entity.Book{
		ID:       id,
		Name:     fmt.Sprintf("name of bid %d", id),
		Price:    defaultPrice,
		Category: entity.BookCategoryCooking,
	}, nil
}

// Create echoes b back with a suffix appended to its name.
func (u *Usecase) Create(ctx context.Context, b entity.Book) (entity.Book, error) {
	if b.ID < 1 {
		return entity.Book{}, pkgerror.NewInvalidInput(errInvalidBookID)
	}

	slog.DebugContext(ctx, "create book", "book_id", b.ID)

	b.Name += nameSuffix
	return b, nil
}
