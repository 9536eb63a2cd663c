package inbound

import (
	"github.com/shandysiswandi/gobook/internal/book/entity"
	"github.com/shandysiswandi/gobook/internal/pkg/pkgvalidate"
)

const (
	paramBookID    = "book_id"
	paramQueryMode = "query_mode"

	bookIDExample     = 5
	bookIDDescription = "`hey, we also support markdown`\n* 1\n* 2\n * 3\n"
)

//nolint:gochecknoglobals // immutable parameter declarations
var (
	pathBookID            = pkgvalidate.PathInt(paramBookID)
	pathBookIDValidated   = pkgvalidate.PathInt(paramBookID, pkgvalidate.Min(1))
	pathBookIDDocumented  = pathBookIDValidated.WithTitle("BOOK ID").WithDescription(bookIDDescription).WithExample(bookIDExample)
	pathBookIDWithExample = pathBookIDValidated.WithExample(bookIDExample)
	queryBookID           = pkgvalidate.QueryInt(paramBookID)
	queryMode             = pkgvalidate.QueryEnum(paramQueryMode, entity.QueryMode("").Values()...)
)
