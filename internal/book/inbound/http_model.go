package inbound

import "github.com/shandysiswandi/gobook/internal/book/entity"

const bookIDMarkdown = "`markdown`"

type BookIDResponse struct {
	BookID int64 `json:"book_id"`
}

type BookModeResponse struct {
	BookID    int64            `json:"book_id"`
	QueryMode entity.QueryMode `json:"query_mode"`
}

// Book is the response schema of the book routes.
type Book struct {
	ID       int64               `json:"bid" validate:"gte=1" title:"book id" example:"5"`
	Name     string              `json:"name" validate:"min=2"`
	Price    float64             `json:"price" validate:"gt=0"`
	Category entity.BookCategory `json:"category" validate:"enum"`
}

// BookRequest is the request schema of POST /book. Pointer fields tell a
// missing value apart from a zero one.
type BookRequest struct {
	ID       *int64               `json:"bid" validate:"required,gte=1" title:"book id" example:"5"`
	Name     *string              `json:"name" validate:"required,min=2"`
	Price    *float64             `json:"price" validate:"required,gt=0"`
	Category *entity.BookCategory `json:"category" validate:"required,enum"`
}

func (Book) FieldDescriptions() map[string]string {
	return map[string]string{"bid": bookIDMarkdown}
}

func (BookRequest) SchemaName() string {
	return "Book"
}

func (BookRequest) FieldDescriptions() map[string]string {
	return map[string]string{"bid": bookIDMarkdown}
}

func (r BookRequest) toEntity() entity.Book {
	return entity.Book{
		ID:       *r.ID,
		Name:     *r.Name,
		Price:    *r.Price,
		Category: *r.Category,
	}
}

func toHTTPBook(b entity.Book) Book {
	return Book{
		ID:       b.ID,
		Name:     b.Name,
		Price:    b.Price,
		Category: b.Category,
	}
}
