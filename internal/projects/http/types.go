package http

import (
	"context"

	"github.com/DennisSalmazs/project-service/internal/projects/access"
	"github.com/DennisSalmazs/project-service/internal/projects/domain"
	"github.com/DennisSalmazs/project-service/internal/projects/service"
)

// ProjectService is the slice of the lifecycle service the handlers
// need; *service.ProjectService satisfies it.
type ProjectService interface {
	Create(ctx context.Context, caller access.Caller, in service.CreateInput) (*domain.Project, error)
	GetByCode(ctx context.Context, caller access.Caller, code string) (*domain.Project, error)
	ManagerByCode(ctx context.Context, caller access.Caller, code string) (string, error)
	ListForCaller(ctx context.Context, caller access.Caller) ([]domain.ProjectDetails, error)
	ListAllAdmin(ctx context.Context) ([]domain.Project, error)
	ListForManager(ctx context.Context, caller access.Caller) ([]domain.Project, error)
	CountNonCompletedByManager(ctx context.Context, manager string) (int, error)
	CheckExists(ctx context.Context, caller access.Caller, code string) (bool, error)
	Update(ctx context.Context, caller access.Caller, code string, in service.UpdateInput) (*domain.Project, error)
	Complete(ctx context.Context, caller access.Caller, code string) (*domain.Project, error)
	Delete(ctx context.Context, caller access.Caller, code string) error
}

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	svc ProjectService
}

func New(svc ProjectService) *Handler {
	return &Handler{svc: svc}
}
