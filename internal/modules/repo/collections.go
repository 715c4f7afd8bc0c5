package repo

import (
	"context"
	"strconv"
	"time"

	"github.com/cindral-studio/cindral-api/internal/modules/model"
)

var divisions = collection[model.Division]{
	name:     "division",
	idPrefix: "div_",
	items:    func(d *Dataset) []model.Division { return d.Divisions },
	setItems: func(d *Dataset, v []model.Division) { d.Divisions = v },
	defaults: func(now time.Time, d *Dataset) map[string]any {
		divType := "Labs"
		if len(d.Divisions) > 0 {
			divType = d.Divisions[0].Type
		}
		return map[string]any{
			"type":        divType,
			"tagline":     "",
			"description": "",
			"iconName":    "FlaskConical",
			"color":       "text-white",
			"themeColor":  "#ffffff",
		}
	},
	validate: func(p map[string]any) error {
		if str(p["title"]) == "" {
			return Validationf("title is required")
		}
		return nil
	},
}

var projects = collection[model.Project]{
	name:     "project",
	idPrefix: "proj_",
	items:    func(d *Dataset) []model.Project { return d.Projects },
	setItems: func(d *Dataset, v []model.Project) { d.Projects = v },
	defaults: func(now time.Time, d *Dataset) map[string]any {
		return map[string]any{
			"summary": "",
			"content": "",
			"images":  []string{},
			"year":    strconv.Itoa(now.Year()),
		}
	},
	validate: func(p map[string]any) error {
		if str(p["title"]) == "" || str(p["divisionId"]) == "" {
			return Validationf("title and divisionId are required")
		}
		return nil
	},
	normalize: func(p *model.Project) {
		if p.Images == nil {
			p.Images = []string{}
		}
	},
}

var team = collection[model.TeamMember]{
	name:     "team member",
	idPrefix: "team_",
	items:    func(d *Dataset) []model.TeamMember { return d.Team },
	setItems: func(d *Dataset, v []model.TeamMember) { d.Team = v },
	defaults: func(now time.Time, d *Dataset) map[string]any {
		return map[string]any{
			"bio":           "",
			"image":         "",
			"projectIds":    []string{},
			"csrActivities": []string{},
			"skills":        []string{},
			"interests":     []string{},
		}
	},
	validate: func(p map[string]any) error {
		if str(p["name"]) == "" || str(p["role"]) == "" {
			return Validationf("name and role are required")
		}
		return nil
	},
	normalize: func(m *model.TeamMember) {
		if m.ProjectIDs == nil {
			m.ProjectIDs = []string{}
		}
		if m.CSRActivities == nil {
			m.CSRActivities = []string{}
		}
		if m.Skills == nil {
			m.Skills = []string{}
		}
		if m.Interests == nil {
			m.Interests = []string{}
		}
	},
}

var contactSubmissions = collection[model.ContactSubmission]{
	name:     "contact submission",
	idPrefix: "submission_",
	prepend:  true,
	items:    func(d *Dataset) []model.ContactSubmission { return d.ContactSubmissions },
	setItems: func(d *Dataset, v []model.ContactSubmission) { d.ContactSubmissions = v },
	defaults: func(now time.Time, d *Dataset) map[string]any {
		return map[string]any{
			"lastName":  "",
			"subject":   "General Inquiry",
			"createdAt": now.UTC().Format(time.RFC3339),
			"status":    "new",
		}
	},
	validate: func(p map[string]any) error {
		if str(p["firstName"]) == "" || str(p["email"]) == "" || str(p["message"]) == "" {
			return Validationf("firstName, email, and message are required")
		}
		return nil
	},
}

var clientProjects = collection[model.ClientProject]{
	name:     "client project",
	idPrefix: "client_proj_",
	items:    func(d *Dataset) []model.ClientProject { return d.ClientProjects },
	setItems: func(d *Dataset, v []model.ClientProject) { d.ClientProjects = v },
	defaults: func(now time.Time, d *Dataset) map[string]any {
		return map[string]any{
			"summary":       "",
			"status":        string(model.StatusOnTrack),
			"health":        string(model.HealthGreen),
			"budgetUsed":    0,
			"startDate":     now.UTC().Format("2006-01-02"),
			"nextMilestone": "",
			"team":          []string{},
			"resources":     []model.ResourceLink{},
			"tasks":         []model.ClientProjectTask{},
			"timeline":      []model.TimelineItem{},
			"updates":       []model.ClientUpdate{},
			"links":         []model.ResourceLink{},
		}
	},
	validate: func(p map[string]any) error {
		if str(p["name"]) == "" || str(p["projectId"]) == "" {
			return Validationf("name and projectId are required")
		}
		return nil
	},
	normalize: normalizeClientProject,
}

// normalizeClientProject is the single place the progress invariant is
// enforced: any record passing through the store, whether read or written,
// carries a progress value derived from its tasks whenever tasks exist.
func normalizeClientProject(p *model.ClientProject) {
	if p.ClientName == "" {
		p.ClientName = p.Name
	}
	if p.Status == "" {
		p.Status = model.StatusOnTrack
	}
	if p.Health == "" {
		p.Health = model.HealthGreen
	}
	if p.Team == nil {
		p.Team = []string{}
	}
	if p.Resources == nil {
		p.Resources = []model.ResourceLink{}
	}
	if p.Tasks == nil {
		p.Tasks = []model.ClientProjectTask{}
	}
	if p.Timeline == nil {
		p.Timeline = []model.TimelineItem{}
	}
	if p.Updates == nil {
		p.Updates = []model.ClientUpdate{}
	}
	if p.Links == nil {
		p.Links = []model.ResourceLink{}
	}
	if len(p.Tasks) > 0 {
		p.Progress = model.ProgressFromTasks(p.Tasks)
	}
	if p.Progress < 0 {
		p.Progress = 0
	}
	if p.Progress > 100 {
		p.Progress = 100
	}
}

var clientInvoices = collection[model.ClientInvoice]{
	name:     "invoice",
	idPrefix: "inv_",
	items:    func(d *Dataset) []model.ClientInvoice { return d.ClientInvoices },
	setItems: func(d *Dataset, v []model.ClientInvoice) { d.ClientInvoices = v },
	defaults: func(now time.Time, d *Dataset) map[string]any {
		return map[string]any{
			"status":      "due",
			"description": "",
		}
	},
	validate: func(p map[string]any) error {
		amount, _ := p["amount"].(float64)
		if str(p["projectId"]) == "" || amount == 0 || str(p["currency"]) == "" ||
			str(p["issuedOn"]) == "" || str(p["dueOn"]) == "" {
			return Validationf("projectId, amount, currency, issuedOn, and dueOn are required")
		}
		return nil
	},
}

var clientUsers = collection[model.ClientUser]{
	name:     "client user",
	idPrefix: "client_",
	items:    func(d *Dataset) []model.ClientUser { return d.ClientUsers },
	setItems: func(d *Dataset, v []model.ClientUser) { d.ClientUsers = v },
	defaults: func(now time.Time, d *Dataset) map[string]any {
		return map[string]any{
			"company":           "",
			"role":              "viewer",
			"allowedProjectIds": []string{},
		}
	},
	validate: func(p map[string]any) error {
		if str(p["name"]) == "" || str(p["email"]) == "" {
			return Validationf("name and email are required")
		}
		return nil
	},
	normalize: func(u *model.ClientUser) {
		if u.AllowedProjectIDs == nil {
			u.AllowedProjectIDs = []string{}
		}
	},
}

var initiatives = collection[model.Initiative]{
	name:     "initiative",
	idPrefix: "init_",
	items:    func(d *Dataset) []model.Initiative { return d.Initiatives },
	setItems: func(d *Dataset, v []model.Initiative) { d.Initiatives = v },
	defaults: func(now time.Time, d *Dataset) map[string]any {
		return map[string]any{
			"image":       "",
			"description": "",
			"fullContent": "",
			"iconName":    "Heart",
			"color":       "text-white",
			"bgHover":     "",
			"textHover":   "",
			"stats":       []model.CSRStat{},
		}
	},
	validate: func(p map[string]any) error {
		if str(p["title"]) == "" {
			return Validationf("title is required")
		}
		return nil
	},
	normalize: func(i *model.Initiative) {
		if i.Stats == nil {
			i.Stats = []model.CSRStat{}
		}
	},
}

// Divisions

func (s *Store) ListDivisions() []model.Division { return listIn(s, divisions) }
func (s *Store) CreateDivision(ctx context.Context, payload map[string]any) (model.Division, error) {
	return createIn(ctx, s, divisions, payload)
}
func (s *Store) UpdateDivision(ctx context.Context, id string, patch map[string]any) (model.Division, error) {
	return updateIn(ctx, s, divisions, id, patch)
}
func (s *Store) DeleteDivision(ctx context.Context, id string) error {
	return deleteIn(ctx, s, divisions, id)
}

// Projects

func (s *Store) ListProjects() []model.Project { return listIn(s, projects) }
func (s *Store) CreateProject(ctx context.Context, payload map[string]any) (model.Project, error) {
	return createIn(ctx, s, projects, payload)
}
func (s *Store) UpdateProject(ctx context.Context, id string, patch map[string]any) (model.Project, error) {
	return updateIn(ctx, s, projects, id, patch)
}
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	return deleteIn(ctx, s, projects, id)
}

// Team

func (s *Store) ListTeam() []model.TeamMember { return listIn(s, team) }
func (s *Store) CreateTeamMember(ctx context.Context, payload map[string]any) (model.TeamMember, error) {
	return createIn(ctx, s, team, payload)
}
func (s *Store) UpdateTeamMember(ctx context.Context, id string, patch map[string]any) (model.TeamMember, error) {
	return updateIn(ctx, s, team, id, patch)
}
func (s *Store) DeleteTeamMember(ctx context.Context, id string) error {
	return deleteIn(ctx, s, team, id)
}

// Contact submissions

func (s *Store) ListContactSubmissions() []model.ContactSubmission {
	return listIn(s, contactSubmissions)
}
func (s *Store) CreateContactSubmission(ctx context.Context, payload map[string]any) (model.ContactSubmission, error) {
	return createIn(ctx, s, contactSubmissions, payload)
}
func (s *Store) UpdateContactSubmission(ctx context.Context, id string, patch map[string]any) (model.ContactSubmission, error) {
	return updateIn(ctx, s, contactSubmissions, id, patch)
}
func (s *Store) DeleteContactSubmission(ctx context.Context, id string) error {
	return deleteIn(ctx, s, contactSubmissions, id)
}

// Client projects

func (s *Store) ListClientProjects() []model.ClientProject { return listIn(s, clientProjects) }
func (s *Store) GetClientProject(id string) (model.ClientProject, error) {
	return getIn(s, clientProjects, id)
}
func (s *Store) CreateClientProject(ctx context.Context, payload map[string]any) (model.ClientProject, error) {
	return createIn(ctx, s, clientProjects, payload)
}
func (s *Store) UpdateClientProject(ctx context.Context, id string, patch map[string]any) (model.ClientProject, error) {
	return updateIn(ctx, s, clientProjects, id, patch)
}
func (s *Store) DeleteClientProject(ctx context.Context, id string) error {
	return deleteIn(ctx, s, clientProjects, id)
}

// Client invoices

func (s *Store) ListClientInvoices() []model.ClientInvoice { return listIn(s, clientInvoices) }
func (s *Store) GetClientInvoice(id string) (model.ClientInvoice, error) {
	return getIn(s, clientInvoices, id)
}
func (s *Store) CreateClientInvoice(ctx context.Context, payload map[string]any) (model.ClientInvoice, error) {
	return createIn(ctx, s, clientInvoices, payload)
}
func (s *Store) UpdateClientInvoice(ctx context.Context, id string, patch map[string]any) (model.ClientInvoice, error) {
	return updateIn(ctx, s, clientInvoices, id, patch)
}
func (s *Store) DeleteClientInvoice(ctx context.Context, id string) error {
	return deleteIn(ctx, s, clientInvoices, id)
}

// Client users

func (s *Store) ListClientUsers() []model.ClientUser { return listIn(s, clientUsers) }
func (s *Store) GetClientUser(id string) (model.ClientUser, error) {
	return getIn(s, clientUsers, id)
}
func (s *Store) CreateClientUser(ctx context.Context, payload map[string]any) (model.ClientUser, error) {
	return createIn(ctx, s, clientUsers, payload)
}
func (s *Store) UpdateClientUser(ctx context.Context, id string, patch map[string]any) (model.ClientUser, error) {
	return updateIn(ctx, s, clientUsers, id, patch)
}
func (s *Store) DeleteClientUser(ctx context.Context, id string) error {
	return deleteIn(ctx, s, clientUsers, id)
}

// Initiatives

func (s *Store) ListInitiatives() []model.Initiative { return listIn(s, initiatives) }
func (s *Store) CreateInitiative(ctx context.Context, payload map[string]any) (model.Initiative, error) {
	return createIn(ctx, s, initiatives, payload)
}
func (s *Store) UpdateInitiative(ctx context.Context, id string, patch map[string]any) (model.Initiative, error) {
	return updateIn(ctx, s, initiatives, id, patch)
}
func (s *Store) DeleteInitiative(ctx context.Context, id string) error {
	return deleteIn(ctx, s, initiatives, id)
}
