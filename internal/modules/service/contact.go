package service

import (
	"context"

	"github.com/cindral-studio/cindral-api/internal/modules/model"
	"github.com/cindral-studio/cindral-api/internal/modules/repo"
)

// ContactService handles the public contact form and the admin inbox.
// Submissions are stored newest-first.
type ContactService interface {
	List() []model.ContactSubmission
	Submit(ctx context.Context, payload map[string]any) (model.ContactSubmission, error)
	Update(ctx context.Context, id string, patch map[string]any) (model.ContactSubmission, error)
	Delete(ctx context.Context, id string) error
}

type contactService struct {
	store *repo.Store
}

func NewContactService(store *repo.Store) ContactService {
	return &contactService{store: store}
}

func (s *contactService) List() []model.ContactSubmission {
	return s.store.ListContactSubmissions()
}

func (s *contactService) Submit(ctx context.Context, payload map[string]any) (model.ContactSubmission, error) {
	return s.store.CreateContactSubmission(ctx, payload)
}

func (s *contactService) Update(ctx context.Context, id string, patch map[string]any) (model.ContactSubmission, error) {
	return s.store.UpdateContactSubmission(ctx, id, patch)
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteContactSubmission(ctx, id)
}
