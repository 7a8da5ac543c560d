package services_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/repairtrack/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingSubmitThenApprove(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	pendingSvc := services.NewPendingService(db)
	reportSvc := services.NewReportService(db, false)

	submitted, err := pendingSvc.Submit("jane@example.com", validReportRequest())
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", submitted.SubmitterEmail)

	// Visible in Jane's personal queue view.
	mine, total, err := pendingSvc.List("jane@example.com", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, mine, 1)
	assert.Equal(t, submitted.ID, mine[0].ID)

	report, err := pendingSvc.Approve(submitted.ID)
	require.NoError(t, err)

	// Exactly one report with the submitted field values, under a fresh id.
	assert.NotEqual(t, submitted.ID, report.ID)
	assert.Equal(t, "Jane Doe", report.CustomerName)
	assert.Equal(t, "555-1234", report.PhoneNumber)
	assert.Equal(t, "cracked screen", report.ProblemDescription)
	assert.Equal(t, "Pending Diagnosis", report.Status)

	found, _, err := reportSvc.List("Jane", 0, 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, report.ID, found[0].ID)

	// The queue entry is consumed.
	remaining, total, err := pendingSvc.List("jane@example.com", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, remaining)
	assert.Zero(t, total)
	_, err = pendingSvc.Approve(submitted.ID)
	assert.ErrorIs(t, err, services.ErrPendingNotFound)
}

func TestPendingSubmitThenReject(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	pendingSvc := services.NewPendingService(db)
	reportSvc := services.NewReportService(db, false)

	submitted, err := pendingSvc.Submit("jane@example.com", validReportRequest())
	require.NoError(t, err)

	require.NoError(t, pendingSvc.Reject(submitted.ID))

	// No report was created and the entry is gone.
	reports, total, err := reportSvc.List("", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, reports)
	assert.Zero(t, total)

	pending, total, err := pendingSvc.List("", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
	assert.Zero(t, total)
}

func TestPendingSubmitValidation(t *testing.T) {
	t.Parallel()

	pendingSvc := services.NewPendingService(newTestDB(t))

	req := validReportRequest()
	req.ProblemDescription = ""
	_, err := pendingSvc.Submit("jane@example.com", req)
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = pendingSvc.Submit("", validReportRequest())
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestPendingApproveRejectNotFound(t *testing.T) {
	t.Parallel()

	pendingSvc := services.NewPendingService(newTestDB(t))

	_, err := pendingSvc.Approve(uuid.New())
	assert.ErrorIs(t, err, services.ErrPendingNotFound)
	assert.ErrorIs(t, pendingSvc.Reject(uuid.New()), services.ErrPendingNotFound)
}

func TestPendingListFiltersBySubmitter(t *testing.T) {
	t.Parallel()

	pendingSvc := services.NewPendingService(newTestDB(t))

	for i := 0; i < 3; i++ {
		_, err := pendingSvc.Submit("jane@example.com", validReportRequest())
		require.NoError(t, err)
	}
	other := validReportRequest()
	other.CustomerName = "Bob Roberts"
	_, err := pendingSvc.Submit("bob@example.com", other)
	require.NoError(t, err)

	all, total, err := pendingSvc.List("", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, all, 4)

	janes, total, err := pendingSvc.List("jane@example.com", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	for _, p := range janes {
		assert.Equal(t, "jane@example.com", p.SubmitterEmail)
	}

	// Same pagination contract as the report store.
	page, _, err := pendingSvc.List("jane@example.com", 0, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	last, _, err := pendingSvc.List("jane@example.com", 1, 2)
	require.NoError(t, err)
	assert.Len(t, last, 1)
}
