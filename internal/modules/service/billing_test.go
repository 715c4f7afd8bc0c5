package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cindral-studio/cindral-api/internal/modules/repo"
)

func TestInvoiceDocumentURLFallbacks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	svc := NewBillingService(store, nil, 0)

	legacy, err := svc.CreateInvoice(ctx, map[string]any{
		"projectId": "p1", "amount": 5000.0, "currency": "USD",
		"issuedOn": "2025-01-01", "dueOn": "2025-02-01",
		"downloadUrl": "https://files.example.com/inv.pdf",
	})
	require.NoError(t, err)

	// Legacy external links work without blob storage.
	url, err := svc.DocumentURL(ctx, legacy.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/inv.pdf", url)

	bare, err := svc.CreateInvoice(ctx, map[string]any{
		"projectId": "p1", "amount": 100.0, "currency": "USD",
		"issuedOn": "2025-01-01", "dueOn": "2025-02-01",
	})
	require.NoError(t, err)

	_, err = svc.DocumentURL(ctx, bare.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound, "no document at all")

	// A stored key without configured blob storage is a configuration error.
	_, err = svc.UpdateInvoice(ctx, bare.ID, map[string]any{"documentKey": "invoices/2025/01/01/abc.pdf"})
	require.NoError(t, err)
	_, err = svc.DocumentURL(ctx, bare.ID)
	assert.ErrorIs(t, err, ErrNoDocumentStore)

	_, err = svc.DocumentURL(ctx, "inv_missing")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestInvoiceCRUDAndStatus(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	svc := NewBillingService(store, nil, 0)

	inv, err := svc.CreateInvoice(ctx, map[string]any{
		"projectId": "p1", "amount": 5000.0, "currency": "USD",
		"issuedOn": "2025-01-01", "dueOn": "2025-02-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "due", inv.Status, "status defaults to due")
	assert.Contains(t, inv.ID, "inv_")

	inv, err = svc.UpdateInvoice(ctx, inv.ID, map[string]any{"status": "paid"})
	require.NoError(t, err)
	assert.Equal(t, "paid", inv.Status)

	require.NoError(t, svc.DeleteInvoice(ctx, inv.ID))
	assert.Empty(t, svc.Invoices())
}
