package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/DennisSalmazs/project-service/internal/events"
	"github.com/DennisSalmazs/project-service/internal/projects/access"
	"github.com/DennisSalmazs/project-service/internal/projects/domain"
)

// ProjectStore is the persistence surface the lifecycle manager needs.
type ProjectStore interface {
	FindByCode(ctx context.Context, code string) (*domain.Project, error)
	FindAll(ctx context.Context) ([]domain.Project, error)
	FindAllByManager(ctx context.Context, manager string) ([]domain.Project, error)
	CountNonCompletedByManager(ctx context.Context, manager string) (int, error)
	Save(ctx context.Context, p *domain.Project) (*domain.Project, error)
}

// TaskGateway is the remote task service surface used for cascades and
// count enrichment.
type TaskGateway interface {
	Counts(ctx context.Context, projectCode string) (domain.TaskCounts, error)
	CompleteAll(ctx context.Context, projectCode string) error
	DeleteAll(ctx context.Context, projectCode string) error
}

// EventSink receives lifecycle events. Publishing is best-effort.
type EventSink interface {
	Publish(ctx context.Context, e events.Event) error
}

// ProjectService owns the project lifecycle: creation, reads, updates,
// completion and soft-deletion, plus the cascades that keep the remote
// Task aggregate consistent with local transitions.
type ProjectService struct {
	store ProjectStore
	gw    TaskGateway
	sink  EventSink
}

// NewProjectService creates a new project service. sink may be nil when
// eventing is disabled.
func NewProjectService(store ProjectStore, gw TaskGateway, sink EventSink) *ProjectService {
	return &ProjectService{store: store, gw: gw, sink: sink}
}

// CreateInput carries the caller-settable fields of a new project.
type CreateInput struct {
	Code      string
	Name      string
	Detail    string
	StartDate *time.Time
	EndDate   *time.Time
}

// UpdateInput carries the mutable fields of an existing project.
// Identity, code, lifecycle state and ownership cannot be changed here.
type UpdateInput struct {
	Name      string
	Detail    string
	StartDate *time.Time
	EndDate   *time.Time
}

// Create inserts a new OPEN project managed by the caller. The code
// collision check is unconditional: it matches whatever codes are
// currently stored, and soft-deleted projects were renamed, so a
// deleted project's original code is free again.
func (s *ProjectService) Create(ctx context.Context, caller access.Caller, in CreateInput) (*domain.Project, error) {
	_, err := s.store.FindByCode(ctx, in.Code)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrProjectAlreadyExists, in.Code)
	}
	if !errors.Is(err, domain.ErrProjectNotFound) {
		return nil, err
	}

	project := &domain.Project{
		Code:            in.Code,
		Name:            in.Name,
		Detail:          in.Detail,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		Status:          domain.StatusOpen,
		AssignedManager: caller.Username,
	}

	saved, err := s.store.Save(ctx, project)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeProjectCreated, saved.Code, caller.Username)

	return saved, nil
}

// GetByCode returns a project after the access guard passes.
func (s *ProjectService) GetByCode(ctx context.Context, caller access.Caller, code string) (*domain.Project, error) {
	project, err := s.store.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := s.checkAccess(caller, project); err != nil {
		return nil, err
	}
	return project, nil
}

// ManagerByCode returns just the assigned manager of a project.
func (s *ProjectService) ManagerByCode(ctx context.Context, caller access.Caller, code string) (string, error) {
	project, err := s.GetByCode(ctx, caller, code)
	if err != nil {
		return "", err
	}
	return project.AssignedManager, nil
}

// ListForCaller returns the caller's projects, each enriched with task
// counts from the task service. Enrichment is fail-fast: a single
// failed counts fetch fails the whole listing, no partial results.
func (s *ProjectService) ListForCaller(ctx context.Context, caller access.Caller) ([]domain.ProjectDetails, error) {
	found, err := s.store.FindAllByManager(ctx, caller.Username)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ProjectDetails, 0, len(found))
	for _, p := range found {
		counts, err := s.gw.Counts(ctx, p.Code)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.ProjectDetails{Project: p, TaskCounts: counts})
	}
	return out, nil
}

// ListAllAdmin returns every project unfiltered. Privileged bulk view:
// no enrichment, no per-item guard.
func (s *ProjectService) ListAllAdmin(ctx context.Context) ([]domain.Project, error) {
	return s.store.FindAll(ctx)
}

// ListForManager returns the caller's projects without enrichment.
func (s *ProjectService) ListForManager(ctx context.Context, caller access.Caller) ([]domain.Project, error) {
	return s.store.FindAllByManager(ctx, caller.Username)
}

// CountNonCompletedByManager delegates to storage. Trusted internal
// query, no guard.
func (s *ProjectService) CountNonCompletedByManager(ctx context.Context, manager string) (int, error) {
	return s.store.CountNonCompletedByManager(ctx, manager)
}

// CheckExists probes whether a mutation may target the project. It
// reports false for absent codes, fails for completed projects before
// the access guard ever runs, and otherwise guards then reports true.
func (s *ProjectService) CheckExists(ctx context.Context, caller access.Caller, code string) (bool, error) {
	project, err := s.store.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return false, nil
		}
		return false, err
	}

	if project.Status == domain.StatusCompleted {
		return false, fmt.Errorf("%w: %s", domain.ErrProjectCompleted, code)
	}

	if err := s.checkAccess(caller, project); err != nil {
		return false, err
	}

	return true, nil
}

// Update rebuilds the project from the input while force-preserving
// identity, code, lifecycle state and ownership.
func (s *ProjectService) Update(ctx context.Context, caller access.Caller, code string, in UpdateInput) (*domain.Project, error) {
	found, err := s.store.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := s.checkAccess(caller, found); err != nil {
		return nil, err
	}

	project := &domain.Project{
		ID:              found.ID,
		Code:            found.Code,
		Status:          found.Status,
		AssignedManager: found.AssignedManager,
		Deleted:         found.Deleted,
		CreatedAt:       found.CreatedAt,
		Name:            in.Name,
		Detail:          in.Detail,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
	}

	return s.store.Save(ctx, project)
}

// Complete marks the project COMPLETED and completes its remote tasks.
// The cascade runs first: if the task service reports failure, the
// local status change is never persisted, so the caller retries against
// a still-OPEN project. Completing an already completed project is not
// separately gated; the transition is idempotent locally.
func (s *ProjectService) Complete(ctx context.Context, caller access.Caller, code string) (*domain.Project, error) {
	project, err := s.store.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := s.checkAccess(caller, project); err != nil {
		return nil, err
	}

	if err := s.gw.CompleteAll(ctx, code); err != nil {
		return nil, err
	}

	project.Status = domain.StatusCompleted

	completed, err := s.store.Save(ctx, project)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeProjectCompleted, code, caller.Username)

	return completed, nil
}

// Delete soft-deletes the project and deletes its remote tasks. The
// cascade runs before the local save: a remote failure blocks the
// soft-delete from being committed. The code is renamed to
// "{code}-{id}" so the original code is free for reuse.
func (s *ProjectService) Delete(ctx context.Context, caller access.Caller, code string) error {
	project, err := s.store.FindByCode(ctx, code)
	if err != nil {
		return err
	}
	if err := s.checkAccess(caller, project); err != nil {
		return err
	}

	if err := s.gw.DeleteAll(ctx, code); err != nil {
		return err
	}

	project.Deleted = true
	project.Code = project.DeletedCode()

	if _, err := s.store.Save(ctx, project); err != nil {
		return err
	}

	s.publish(ctx, events.TypeProjectDeleted, code, caller.Username)

	return nil
}

func (s *ProjectService) checkAccess(caller access.Caller, project *domain.Project) error {
	if d := access.Evaluate(caller, project.AssignedManager); !d.Allowed {
		return fmt.Errorf("%w: %s", domain.ErrAccessDenied, d.Reason)
	}
	return nil
}

func (s *ProjectService) publish(ctx context.Context, eventType, code, actor string) {
	if s.sink == nil {
		return
	}
	e := events.Event{Type: eventType, ProjectCode: code, Actor: actor}
	if err := s.sink.Publish(ctx, e); err != nil {
		log.Printf("[projects] publish %s for %s failed: %v", eventType, code, err)
	}
}
