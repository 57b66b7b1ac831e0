package jobs

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/access"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/services"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingMarker struct {
	calls atomic.Int32
	err   error
}

func (m *countingMarker) MarkOverdue(time.Time) (int64, error) {
	m.calls.Add(1)
	return 1, m.err
}

func TestStartOverdueSweepRunsUntilDone(t *testing.T) {
	marker := &countingMarker{err: errors.New("db down")}
	done := make(chan struct{})

	StartOverdueSweep(marker, 10*time.Millisecond, done)
	require.Eventually(t, func() bool { return marker.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)

	close(done)
	time.Sleep(30 * time.Millisecond)
	stopped := marker.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, marker.calls.Load())
}

func TestStartOverdueSweepDisabled(t *testing.T) {
	marker := &countingMarker{}
	StartOverdueSweep(marker, 0, make(chan struct{}))
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, marker.calls.Load())
}

func TestSweepMarksPastDuePayments(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	_, landlord := fx.Landlord("owner@example.com")
	_, tenant := fx.Tenant("renter@example.com")
	property := fx.Property(landlord.ID, "Maple", models.PropertyOccupied)
	rental := fx.Rental(property.ID, tenant.ID, models.RentalActive)

	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	late := fx.Payment(rental.ID, 2500, now.AddDate(0, 0, -5), models.PaymentPending)
	upcoming := fx.Payment(rental.ID, 2500, now.AddDate(0, 0, 20), models.PaymentPending)

	sweep(services.NewPaymentService(db, access.NewAuthorizer(db)), now)

	var got models.RentPayment
	require.NoError(t, db.First(&got, "id = ?", late.ID).Error)
	assert.Equal(t, models.PaymentOverdue, got.Status)
	require.NoError(t, db.First(&got, "id = ?", upcoming.ID).Error)
	assert.Equal(t, models.PaymentPending, got.Status)
}
