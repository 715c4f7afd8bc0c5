package service

import (
	"time"

	"github.com/cindral-studio/cindral-api/internal/modules/model"
	"github.com/cindral-studio/cindral-api/internal/modules/repo"
)

// PortalProject is the client-facing slice of a delivery engagement. Status
// and Health are the derived pair; internal fields like budget and the raw
// task notes stay out of the portal payload.
type PortalProject struct {
	ID            string                `json:"id"`
	ProjectID     string                `json:"projectId"`
	Name          string                `json:"name"`
	Summary       string                `json:"summary"`
	Status        model.DeliveryStatus  `json:"status"`
	Health        model.Health          `json:"health"`
	Progress      int                   `json:"progress"`
	StartDate     string                `json:"startDate"`
	EndDate       string                `json:"endDate,omitempty"`
	DaysRemaining *int                  `json:"daysRemaining,omitempty"`
	NextMilestone string                `json:"nextMilestone"`
	Timeline      []model.TimelineItem  `json:"timeline"`
	Updates       []model.ClientUpdate  `json:"updates"`
	Links         []model.ResourceLink  `json:"links"`
	Invoices      []model.ClientInvoice `json:"invoices"`
}

// PortalView is everything one client user may see.
type PortalView struct {
	User     model.ClientUser `json:"user"`
	Projects []PortalProject  `json:"projects"`
}

type PortalService interface {
	ProjectsFor(userID string) (PortalView, error)
}

type portalService struct {
	store *repo.Store
	now   func() time.Time
}

func NewPortalService(store *repo.Store) PortalService {
	return &portalService{store: store, now: time.Now}
}

// ProjectsFor filters the portfolio down to the public project ids the user
// is allowed to see. A user with an empty allow list gets an empty portal,
// not an error.
func (s *portalService) ProjectsFor(userID string) (PortalView, error) {
	user, err := s.store.GetClientUser(userID)
	if err != nil {
		return PortalView{}, err
	}

	allowed := map[string]bool{}
	for _, id := range user.AllowedProjectIDs {
		allowed[id] = true
	}

	now := s.now()
	invoices := s.store.ListClientInvoices()
	view := PortalView{User: user, Projects: []PortalProject{}}
	for _, p := range s.store.ListClientProjects() {
		if !allowed[p.ProjectID] {
			continue
		}

		status, health := model.DeriveDelivery(p, now)
		pp := PortalProject{
			ID:            p.ID,
			ProjectID:     p.ProjectID,
			Name:          p.Name,
			Summary:       p.Summary,
			Status:        status,
			Health:        health,
			Progress:      model.EffectiveProgress(p),
			StartDate:     p.StartDate,
			EndDate:       p.EndDate,
			NextMilestone: p.NextMilestone,
			Timeline:      p.Timeline,
			Updates:       p.Updates,
			Links:         p.Links,
			Invoices:      []model.ClientInvoice{},
		}
		if days, ok := model.DaysRemaining(p, now); ok {
			pp.DaysRemaining = &days
		}
		for _, inv := range invoices {
			if inv.ProjectID == p.ProjectID {
				pp.Invoices = append(pp.Invoices, inv)
			}
		}
		view.Projects = append(view.Projects, pp)
	}
	return view, nil
}
