package inbound

import (
	"context"

	"github.com/shandysiswandi/gobook/internal/book/entity"
	"github.com/shandysiswandi/gobook/internal/pkg/pkgrouter"
)

type HTTPEndpoint struct {
	uc uc
}

// GetBookByID echoes the validated book_id, wherever it was read from.
func (h *HTTPEndpoint) GetBookByID(_ context.Context, req *pkgrouter.Request) (any, error) {
	return BookIDResponse{BookID: req.Params.Int(paramBookID)}, nil
}

func (h *HTTPEndpoint) GetBookByIDMix(_ context.Context, req *pkgrouter.Request) (any, error) {
	return BookModeResponse{
		BookID:    req.Params.Int(paramBookID),
		QueryMode: entity.QueryMode(req.Params.String(paramQueryMode)),
	}, nil
}

func (h *HTTPEndpoint) GetBookWithResponseModel(ctx context.Context, req *pkgrouter.Request) (any, error) {
	book, err := h.uc.Find(ctx, req.Params.Int(paramBookID))
	if err != nil {
		return nil, err
	}

	return toHTTPBook(book), nil
}

func (h *HTTPEndpoint) CreateBook(ctx context.Context, req *pkgrouter.Request) (any, error) {
	payload := pkgrouter.Body[BookRequest](req)

	book, err := h.uc.Create(ctx, payload.toEntity())
	if err != nil {
		return nil, err
	}

	return toHTTPBook(book), nil
}
