package sos

import (
	"testing"
	"time"

	"github.com/mindhaven/core/internal/models"
	"github.com/mindhaven/core/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := NewService(db)

	u := models.UserModel{Username: "alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, db.Create(&u).Error)
	contacts := []models.EmergencyContactModel{
		{UserID: u.ID, Name: "Mum", Phone: "111", Email: "mum@example.com"},
		{UserID: u.ID, Name: "Dad", Phone: "222"},
	}
	require.NoError(t, db.Create(&contacts).Error)

	out, err := svc.Send(u.Email, u.ID)
	require.NoError(t, err)

	assert.Equal(t, "success", out.Status)
	assert.Equal(t, "SOS alert sent for alice@example.com!", out.Message)
	assert.WithinDuration(t, time.Now().UTC(), out.Timestamp, 5*time.Second)
	require.Len(t, out.NotifiedContacts, 2)
	assert.Equal(t, "Mum", out.NotifiedContacts[0].Name)
	assert.Equal(t, "111", out.NotifiedContacts[0].Phone)
}

func TestSendWithoutContacts(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := NewService(db)

	u := models.UserModel{Username: "bob", Email: "bob@example.com", Password: "x"}
	require.NoError(t, db.Create(&u).Error)

	out, err := svc.Send(u.Email, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "success", out.Status)
	assert.Empty(t, out.NotifiedContacts)
}

func TestSendForVanishedUser(t *testing.T) {
	svc := NewService(testutil.OpenDB(t))

	out, err := svc.Send("ghost@example.com", 0)
	require.NoError(t, err)
	assert.Equal(t, "success", out.Status)
	assert.Empty(t, out.NotifiedContacts)
}
