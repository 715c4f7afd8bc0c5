package service

import (
	"context"

	"github.com/cindral-studio/cindral-api/internal/modules/model"
	"github.com/cindral-studio/cindral-api/internal/modules/repo"
)

// CatalogService covers the public marketing content: divisions, case-study
// projects, the team page, and CSR initiatives. All reads are public; the
// router puts mutations behind admin auth.
type CatalogService interface {
	Divisions() []model.Division
	CreateDivision(ctx context.Context, payload map[string]any) (model.Division, error)
	UpdateDivision(ctx context.Context, id string, patch map[string]any) (model.Division, error)
	DeleteDivision(ctx context.Context, id string) error

	Projects() []model.Project
	CreateProject(ctx context.Context, payload map[string]any) (model.Project, error)
	UpdateProject(ctx context.Context, id string, patch map[string]any) (model.Project, error)
	DeleteProject(ctx context.Context, id string) error

	Team() []model.TeamMember
	CreateTeamMember(ctx context.Context, payload map[string]any) (model.TeamMember, error)
	UpdateTeamMember(ctx context.Context, id string, patch map[string]any) (model.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id string) error

	Initiatives() []model.Initiative
	CreateInitiative(ctx context.Context, payload map[string]any) (model.Initiative, error)
	UpdateInitiative(ctx context.Context, id string, patch map[string]any) (model.Initiative, error)
	DeleteInitiative(ctx context.Context, id string) error
}

type catalogService struct {
	store *repo.Store
}

func NewCatalogService(store *repo.Store) CatalogService {
	return &catalogService{store: store}
}

func (s *catalogService) Divisions() []model.Division { return s.store.ListDivisions() }
func (s *catalogService) CreateDivision(ctx context.Context, payload map[string]any) (model.Division, error) {
	return s.store.CreateDivision(ctx, payload)
}
func (s *catalogService) UpdateDivision(ctx context.Context, id string, patch map[string]any) (model.Division, error) {
	return s.store.UpdateDivision(ctx, id, patch)
}
func (s *catalogService) DeleteDivision(ctx context.Context, id string) error {
	return s.store.DeleteDivision(ctx, id)
}

func (s *catalogService) Projects() []model.Project { return s.store.ListProjects() }
func (s *catalogService) CreateProject(ctx context.Context, payload map[string]any) (model.Project, error) {
	return s.store.CreateProject(ctx, payload)
}
func (s *catalogService) UpdateProject(ctx context.Context, id string, patch map[string]any) (model.Project, error) {
	return s.store.UpdateProject(ctx, id, patch)
}
func (s *catalogService) DeleteProject(ctx context.Context, id string) error {
	return s.store.DeleteProject(ctx, id)
}

func (s *catalogService) Team() []model.TeamMember { return s.store.ListTeam() }
func (s *catalogService) CreateTeamMember(ctx context.Context, payload map[string]any) (model.TeamMember, error) {
	return s.store.CreateTeamMember(ctx, payload)
}
func (s *catalogService) UpdateTeamMember(ctx context.Context, id string, patch map[string]any) (model.TeamMember, error) {
	return s.store.UpdateTeamMember(ctx, id, patch)
}
func (s *catalogService) DeleteTeamMember(ctx context.Context, id string) error {
	return s.store.DeleteTeamMember(ctx, id)
}

func (s *catalogService) Initiatives() []model.Initiative { return s.store.ListInitiatives() }
func (s *catalogService) CreateInitiative(ctx context.Context, payload map[string]any) (model.Initiative, error) {
	return s.store.CreateInitiative(ctx, payload)
}
func (s *catalogService) UpdateInitiative(ctx context.Context, id string, patch map[string]any) (model.Initiative, error) {
	return s.store.UpdateInitiative(ctx, id, patch)
}
func (s *catalogService) DeleteInitiative(ctx context.Context, id string) error {
	return s.store.DeleteInitiative(ctx, id)
}
