package booking

import (
	"testing"

	"github.com/mindhaven/core/internal/models"
	"github.com/mindhaven/core/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db        *gorm.DB
	svc       *Service
	owner     uint
	stranger  uint
	therapist uint
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.OpenDB(t)

	u1 := models.UserModel{Username: "owner", Email: "owner@example.com", Password: "x"}
	u2 := models.UserModel{Username: "stranger", Email: "stranger@example.com", Password: "x"}
	require.NoError(t, db.Create(&u1).Error)
	require.NoError(t, db.Create(&u2).Error)

	therapist := models.TherapistModel{Name: "Dr. Jane Smith"}
	require.NoError(t, db.Create(&therapist).Error)
	availability := []models.TherapistAvailabilityModel{
		{TherapistID: therapist.ID, Day: "Monday", Slot: "09:00"},
		{TherapistID: therapist.ID, Day: "Monday", Slot: "10:00"},
		{TherapistID: therapist.ID, Day: "Wednesday", Slot: "11:00"},
	}
	require.NoError(t, db.Create(&availability).Error)

	return &fixture{db: db, svc: NewService(db), owner: u1.ID, stranger: u2.ID, therapist: therapist.ID}
}

func TestCreate(t *testing.T) {
	f := newFixture(t)

	b, name, err := f.svc.Create(f.owner, f.therapist, "Monday", "09:00")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Jane Smith", name)
	assert.NotZero(t, b.ID)

	t.Run("SecondClaimOnSameSlotConflicts", func(t *testing.T) {
		_, _, err := f.svc.Create(f.stranger, f.therapist, "Monday", "09:00")
		assert.ErrorIs(t, err, errSlotTaken)
	})

	t.Run("UndeclaredSlotRejectedEvenWhenFree", func(t *testing.T) {
		_, _, err := f.svc.Create(f.owner, f.therapist, "Friday", "09:00")
		assert.ErrorIs(t, err, errSlotUnavailable)
	})

	t.Run("UnknownTherapist", func(t *testing.T) {
		_, _, err := f.svc.Create(f.owner, 9999, "Monday", "10:00")
		assert.ErrorIs(t, err, errTherapistNotFound)
	})
}

func TestUniqueIndexBackstop(t *testing.T) {
	f := newFixture(t)

	// Bypass the service checks and hit the storage constraint directly,
	// as two racing requests would.
	require.NoError(t, f.db.Create(&models.BookingModel{
		UserID: f.owner, TherapistID: f.therapist, Day: "Monday", Slot: "09:00",
	}).Error)
	err := f.db.Create(&models.BookingModel{
		UserID: f.stranger, TherapistID: f.therapist, Day: "Monday", Slot: "09:00",
	}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestListFor(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.svc.Create(f.owner, f.therapist, "Monday", "09:00")
	require.NoError(t, err)
	_, _, err = f.svc.Create(f.stranger, f.therapist, "Monday", "10:00")
	require.NoError(t, err)

	out, err := f.svc.ListFor(f.owner)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Dr. Jane Smith", out[0].Therapist)
	assert.Equal(t, f.therapist, out[0].TherapistID)

	t.Run("RemovedTherapistReadsUnknown", func(t *testing.T) {
		require.NoError(t, f.db.Delete(&models.TherapistModel{}, f.therapist).Error)
		out, err := f.svc.ListFor(f.owner)
		require.NoError(t, err)
		require.Len(t, out, 1, "booking survives therapist removal")
		assert.Equal(t, "Unknown", out[0].Therapist)
	})
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)

	b, _, err := f.svc.Create(f.owner, f.therapist, "Monday", "09:00")
	require.NoError(t, err)

	t.Run("MoveToFreeSlot", func(t *testing.T) {
		require.NoError(t, f.svc.Update(b.ID, f.owner, "Wednesday", "11:00"))
		var got models.BookingModel
		require.NoError(t, f.db.First(&got, b.ID).Error)
		assert.Equal(t, "Wednesday", got.Day)
		assert.Equal(t, "11:00", got.Slot)
	})

	t.Run("KeepingOwnSlotIsNotAConflict", func(t *testing.T) {
		assert.NoError(t, f.svc.Update(b.ID, f.owner, "Wednesday", "11:00"))
	})

	t.Run("MoveToClaimedSlotConflicts", func(t *testing.T) {
		_, _, err := f.svc.Create(f.stranger, f.therapist, "Monday", "10:00")
		require.NoError(t, err)
		assert.ErrorIs(t, f.svc.Update(b.ID, f.owner, "Monday", "10:00"), errSlotTaken)
	})

	t.Run("MoveToUndeclaredSlot", func(t *testing.T) {
		assert.ErrorIs(t, f.svc.Update(b.ID, f.owner, "Sunday", "08:00"), errSlotUnavailable)
	})

	t.Run("ForeignOwnerIsNotFound", func(t *testing.T) {
		assert.ErrorIs(t, f.svc.Update(b.ID, f.stranger, "Monday", "09:00"), errBookingNotFound)
	})
}

func TestDeleteFreesSlot(t *testing.T) {
	f := newFixture(t)

	b, _, err := f.svc.Create(f.owner, f.therapist, "Monday", "09:00")
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Delete(b.ID, f.stranger), errBookingNotFound)
	require.NoError(t, f.svc.Delete(b.ID, f.owner))

	// The slot is claimable again after deletion.
	_, _, err = f.svc.Create(f.stranger, f.therapist, "Monday", "09:00")
	assert.NoError(t, err)
}
