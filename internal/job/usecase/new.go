package usecase

import (
	"github.com/MGhunch/dot-hub-api/pkg/airtable"
	pkgLog "github.com/MGhunch/dot-hub-api/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	store airtable.IClient
}

// New creates a new job UseCase instance.
func New(l pkgLog.Logger, store airtable.IClient) *implUseCase {
	return &implUseCase{
		l:     l,
		store: store,
	}
}
