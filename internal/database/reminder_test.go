package database

import (
	"testing"

	"punchbot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReminderRepo_MarkAndCheck(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	user := createTestUser(t, db, "U123456789")
	reminderRepo := newReminderRepo(db.conn)

	t.Run("should report unsent before marking", func(t *testing.T) {
		sent, err := reminderRepo.WasSent(user.ID, domain.ReminderDailyPunchIn, "2024-12-02")

		require.NoError(t, err)
		assert.False(t, sent)
	})

	t.Run("should report sent after marking", func(t *testing.T) {
		err := reminderRepo.MarkSent(user.ID, domain.ReminderDailyPunchIn, "2024-12-02")
		require.NoError(t, err)

		sent, err := reminderRepo.WasSent(user.ID, domain.ReminderDailyPunchIn, "2024-12-02")
		require.NoError(t, err)
		assert.True(t, sent)
	})

	t.Run("should tolerate marking the same reminder twice", func(t *testing.T) {
		err := reminderRepo.MarkSent(user.ID, domain.ReminderDailyPunchIn, "2024-12-02")
		require.NoError(t, err)
	})

	t.Run("should track kinds and dates independently", func(t *testing.T) {
		sent, err := reminderRepo.WasSent(user.ID, domain.ReminderForgotPunch, "2024-12-02")
		require.NoError(t, err)
		assert.False(t, sent)

		sent, err = reminderRepo.WasSent(user.ID, domain.ReminderDailyPunchIn, "2024-12-03")
		require.NoError(t, err)
		assert.False(t, sent)
	})
}
