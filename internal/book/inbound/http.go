package inbound

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/gobook/internal/book/entity"
	"github.com/shandysiswandi/gobook/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gobook/internal/pkg/pkgvalidate"
)

type uc interface {
	Find(ctx context.Context, id int64) (entity.Book, error)
	Create(ctx context.Context, b entity.Book) (entity.Book, error)
}

const tagBook = "book"

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	r.Register(Routes(uc)...)
}

// Routes returns the book route table in registration order.
func Routes(uc uc) []pkgrouter.Route {
	end := &HTTPEndpoint{uc: uc}

	return []pkgrouter.Route{
		{
			Method:      http.MethodGet,
			Path:        "/book/{book_id}",
			OperationID: "get_book_by_id",
			Summary:     "Get Book By Id",
			Tags:        []string{tagBook},
			Params:      []pkgvalidate.Param{pathBookID},
			Handler:     end.GetBookByID,
		},
		{
			Method:      http.MethodGet,
			Path:        "/get_book",
			OperationID: "get_book_by_id_via_query",
			Summary:     "Get Book By Id Via Query",
			Tags:        []string{tagBook},
			Params:      []pkgvalidate.Param{queryBookID},
			Handler:     end.GetBookByID,
		},
		{
			Method:      http.MethodGet,
			Path:        "/book/{book_id}/with_mode",
			OperationID: "get_book_by_id_mix",
			Summary:     "Get Book By Id Mix",
			Tags:        []string{tagBook},
			Params:      []pkgvalidate.Param{pathBookID, queryMode},
			Handler:     end.GetBookByIDMix,
		},
		{
			Method:      http.MethodGet,
			Path:        "/book/{book_id}/with_validation",
			OperationID: "get_book_by_id_with_validation",
			Summary:     "Get Book By Id With Validation",
			Tags:        []string{tagBook},
			Params:      []pkgvalidate.Param{pathBookIDValidated},
			Handler:     end.GetBookByID,
		},
		{
			Method:      http.MethodGet,
			Path:        "/book/{book_id}/with_validation_and_some_extra_document",
			OperationID: "get_book_by_id_with_extra_document",
			Summary:     "Get Book By Id With Validation And Some Extra Document",
			Tags:        []string{tagBook},
			Params:      []pkgvalidate.Param{pathBookIDDocumented},
			Handler:     end.GetBookByID,
		},
		{
			// Misspelled path kept for existing clients.
			Method:      http.MethodGet,
			Path:        "/book/{book_id}/with_validation_and_some_extra_documnet",
			OperationID: "get_book_by_id_with_extra_document_legacy",
			Params:      []pkgvalidate.Param{pathBookIDDocumented},
			Hidden:      true,
			Handler:     end.GetBookByID,
		},
		{
			Method:      http.MethodGet,
			Path:        "/book/{book_id}/with_response_model",
			OperationID: "get_book_by_id_with_response_model",
			Summary:     "Get Book By Id With Response Model",
			Tags:        []string{tagBook},
			Params:      []pkgvalidate.Param{pathBookIDWithExample},
			Response:    Book{},
			Handler:     end.GetBookWithResponseModel,
		},
		{
			Method:      http.MethodPost,
			Path:        "/book",
			OperationID: "create_book",
			Summary:     "Create Book",
			Tags:        []string{tagBook},
			Body:        BookRequest{},
			Response:    Book{},
			Handler:     end.CreateBook,
		},
	}
}
