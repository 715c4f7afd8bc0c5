package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/cindral-studio/cindral-api/internal/infra/blob"
	"github.com/cindral-studio/cindral-api/internal/modules/model"
	"github.com/cindral-studio/cindral-api/internal/modules/repo"
)

// ErrNoDocumentStore is returned when an invoice document operation runs
// without S3 configured.
var ErrNoDocumentStore = errors.New("document storage is not configured")

// BillingService manages invoices and client users. Invoice documents go to
// blob storage; the invoice record only carries the object key, and reads
// get a short-lived presigned URL.
type BillingService interface {
	Invoices() []model.ClientInvoice
	GetInvoice(id string) (model.ClientInvoice, error)
	CreateInvoice(ctx context.Context, payload map[string]any) (model.ClientInvoice, error)
	UpdateInvoice(ctx context.Context, id string, patch map[string]any) (model.ClientInvoice, error)
	DeleteInvoice(ctx context.Context, id string) error

	AttachDocument(ctx context.Context, invoiceID string, fh *multipart.FileHeader) (model.ClientInvoice, error)
	DocumentURL(ctx context.Context, invoiceID string) (string, error)

	Users() []model.ClientUser
	GetUser(id string) (model.ClientUser, error)
	CreateUser(ctx context.Context, payload map[string]any) (model.ClientUser, error)
	UpdateUser(ctx context.Context, id string, patch map[string]any) (model.ClientUser, error)
	DeleteUser(ctx context.Context, id string) error
}

type billingService struct {
	store         *repo.Store
	blob          *blob.S3Deps
	presignExpire time.Duration
}

func NewBillingService(store *repo.Store, blob *blob.S3Deps, presignExpire time.Duration) BillingService {
	if presignExpire <= 0 {
		presignExpire = 15 * time.Minute
	}
	return &billingService{store: store, blob: blob, presignExpire: presignExpire}
}

func (s *billingService) Invoices() []model.ClientInvoice { return s.store.ListClientInvoices() }

func (s *billingService) GetInvoice(id string) (model.ClientInvoice, error) {
	return s.store.GetClientInvoice(id)
}

func (s *billingService) CreateInvoice(ctx context.Context, payload map[string]any) (model.ClientInvoice, error) {
	return s.store.CreateClientInvoice(ctx, payload)
}

func (s *billingService) UpdateInvoice(ctx context.Context, id string, patch map[string]any) (model.ClientInvoice, error) {
	return s.store.UpdateClientInvoice(ctx, id, patch)
}

func (s *billingService) DeleteInvoice(ctx context.Context, id string) error {
	return s.store.DeleteClientInvoice(ctx, id)
}

// AttachDocument uploads the file and records its key on the invoice.
// Re-attaching replaces the key; the old object is left for lifecycle rules
// to reap.
func (s *billingService) AttachDocument(ctx context.Context, invoiceID string, fh *multipart.FileHeader) (model.ClientInvoice, error) {
	if s.blob == nil {
		return model.ClientInvoice{}, ErrNoDocumentStore
	}
	if _, err := s.store.GetClientInvoice(invoiceID); err != nil {
		return model.ClientInvoice{}, err
	}

	meta, err := s.blob.UploadFormFile(ctx, "invoices", fh)
	if err != nil {
		return model.ClientInvoice{}, fmt.Errorf("upload invoice document: %w", err)
	}
	return s.store.UpdateClientInvoice(ctx, invoiceID, map[string]any{"documentKey": meta.Key})
}

// DocumentURL returns a presigned link to the stored document, or the legacy
// external DownloadURL for records that predate uploads.
func (s *billingService) DocumentURL(ctx context.Context, invoiceID string) (string, error) {
	inv, err := s.store.GetClientInvoice(invoiceID)
	if err != nil {
		return "", err
	}
	if inv.DocumentKey == "" {
		if inv.DownloadURL != "" {
			return inv.DownloadURL, nil
		}
		return "", fmt.Errorf("invoice %q has no document: %w", invoiceID, repo.ErrNotFound)
	}
	if s.blob == nil {
		return "", ErrNoDocumentStore
	}
	return s.blob.PresignGet(ctx, inv.DocumentKey, s.presignExpire)
}

func (s *billingService) Users() []model.ClientUser { return s.store.ListClientUsers() }

func (s *billingService) GetUser(id string) (model.ClientUser, error) {
	return s.store.GetClientUser(id)
}

func (s *billingService) CreateUser(ctx context.Context, payload map[string]any) (model.ClientUser, error) {
	return s.store.CreateClientUser(ctx, payload)
}

func (s *billingService) UpdateUser(ctx context.Context, id string, patch map[string]any) (model.ClientUser, error) {
	return s.store.UpdateClientUser(ctx, id, patch)
}

func (s *billingService) DeleteUser(ctx context.Context, id string) error {
	return s.store.DeleteClientUser(ctx, id)
}
