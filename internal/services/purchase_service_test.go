package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/repairtrack/backend/internal/dto"
	"github.com/repairtrack/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func purchaseRequest(customer, invoice, date string) *dto.PurchaseRequest {
	return &dto.PurchaseRequest{
		InvoiceNumber:       invoice,
		ProductName:         "ThinkPad X1",
		ProductSerialNumber: "PX1-0042",
		ShopName:            "Main Street Electronics",
		PurchaseDate:        date,
		CustomerName:        customer,
	}
}

func TestPurchaseAddAndHistory(t *testing.T) {
	t.Parallel()

	svc := services.NewPurchaseService(newTestDB(t))

	_, err := svc.Add(purchaseRequest("Jane Doe", "INV-1", "2026-01-10"))
	require.NoError(t, err)
	_, err = svc.Add(purchaseRequest("Jane Doe", "INV-2", "2026-03-05"))
	require.NoError(t, err)
	_, err = svc.Add(purchaseRequest("Bob Roberts", "INV-3", "2026-02-20"))
	require.NoError(t, err)

	all, err := svc.List("")
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest purchase date first.
	assert.Equal(t, "INV-2", all[0].InvoiceNumber)
	assert.Equal(t, "INV-3", all[1].InvoiceNumber)
	assert.Equal(t, "INV-1", all[2].InvoiceNumber)

	history, err := svc.List("Jane Doe")
	require.NoError(t, err)
	require.Len(t, history, 2)
	for _, p := range history {
		assert.Equal(t, "Jane Doe", p.CustomerName)
	}
}

func TestPurchaseValidation(t *testing.T) {
	t.Parallel()

	svc := services.NewPurchaseService(newTestDB(t))

	_, err := svc.Add(purchaseRequest("", "INV-1", "2026-01-10"))
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = svc.Add(purchaseRequest("Jane Doe", "INV-1", "not-a-date"))
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestPurchaseDelete(t *testing.T) {
	t.Parallel()

	svc := services.NewPurchaseService(newTestDB(t))

	created, err := svc.Add(purchaseRequest("Jane Doe", "INV-1", "2026-01-10"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	assert.ErrorIs(t, svc.Delete(created.ID), services.ErrPurchaseNotFound)
	assert.ErrorIs(t, svc.Delete(uuid.New()), services.ErrPurchaseNotFound)
}
