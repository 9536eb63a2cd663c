package book

import (
	"github.com/shandysiswandi/gobook/internal/book/inbound"
	"github.com/shandysiswandi/gobook/internal/book/usecase"
	"github.com/shandysiswandi/gobook/internal/pkg/pkgrouter"
)

type Dependency struct {
	Router *pkgrouter.Router
}

func New(dep Dependency) {
	inbound.RegisterHTTPEndpoint(dep.Router, usecase.New())
}
