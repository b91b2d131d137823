package usecase

import (
	"github.com/MGhunch/dot-hub-api/internal/agent"
	"github.com/MGhunch/dot-hub-api/internal/session"
	"github.com/MGhunch/dot-hub-api/pkg/anthropic"
	pkgLog "github.com/MGhunch/dot-hub-api/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	llm       anthropic.IClient
	registry  *agent.ToolRegistry
	store     session.Store
	maxTokens int
}

// New creates a new assistant UseCase instance.
func New(
	l pkgLog.Logger,
	llm anthropic.IClient,
	registry *agent.ToolRegistry,
	store session.Store,
	maxTokens int,
) *implUseCase {
	if maxTokens <= 0 {
		maxTokens = anthropic.DefaultMaxTokens
	}
	return &implUseCase{
		l:         l,
		llm:       llm,
		registry:  registry,
		store:     store,
		maxTokens: maxTokens,
	}
}
