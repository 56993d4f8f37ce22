package database

import (
	"testing"

	"punchbot/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, db *DB, slackUserID string) *entity.User {
	t.Helper()

	user := &entity.User{
		SlackUserID:   slackUserID,
		SlackUserName: "testuser",
		DisplayName:   "Test User",
		Role:          "user",
		StandardHours: 8,
		Timezone:      "UTC",
		IsActive:      true,
	}
	err := newUserRepo(db.conn).Create(user)
	require.NoError(t, err)
	return user
}

func TestUserRepo_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	userRepo := newUserRepo(db.conn)

	t.Run("should create user successfully", func(t *testing.T) {
		user := &entity.User{
			SlackUserID:   "U123456789",
			SlackUserName: "testuser",
			DisplayName:   "Test User",
			Department:    "engineering",
			Role:          "user",
			StandardHours: 8,
			Timezone:      "America/Sao_Paulo",
			IsActive:      true,
		}

		err := userRepo.Create(user)

		require.NoError(t, err)
		assert.NotZero(t, user.ID)
	})

	t.Run("should reject a duplicate slack user id", func(t *testing.T) {
		user := &entity.User{
			SlackUserID:   "U123456789",
			SlackUserName: "other",
			DisplayName:   "Other",
			StandardHours: 8,
			Timezone:      "UTC",
			IsActive:      true,
		}

		err := userRepo.Create(user)
		require.Error(t, err)
	})
}

func TestUserRepo_GetBySlackID(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	userRepo := newUserRepo(db.conn)
	created := createTestUser(t, db, "U123456789")

	t.Run("should return user when found", func(t *testing.T) {
		user, err := userRepo.GetBySlackID("U123456789")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, created.ID, user.ID)
		assert.Equal(t, "Test User", user.DisplayName)
		assert.Equal(t, 8, user.StandardHours)
		assert.Equal(t, "UTC", user.Timezone)
		assert.True(t, user.IsActive)
	})

	t.Run("should return nil when not found", func(t *testing.T) {
		user, err := userRepo.GetBySlackID("U000000000")

		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepo_GetByID(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	userRepo := newUserRepo(db.conn)
	created := createTestUser(t, db, "U123456789")

	user, err := userRepo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, created.SlackUserID, user.SlackUserID)

	missing, err := userRepo.GetByID(999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepo_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	userRepo := newUserRepo(db.conn)
	user := createTestUser(t, db, "U123456789")

	user.DisplayName = "Renamed User"
	user.Timezone = "Europe/Lisbon"
	user.StandardHours = 6

	err := userRepo.Update(user)
	require.NoError(t, err)

	got, err := userRepo.GetByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Renamed User", got.DisplayName)
	assert.Equal(t, "Europe/Lisbon", got.Timezone)
	assert.Equal(t, 6, got.StandardHours)
}

func TestUserRepo_GetActiveUsers(t *testing.T) {
	db := SetupTestDB(t)
	defer db.Close()

	userRepo := newUserRepo(db.conn)
	active := createTestUser(t, db, "U111111111")
	inactive := createTestUser(t, db, "U222222222")

	err := userRepo.SetActive(inactive.ID, false)
	require.NoError(t, err)

	users, err := userRepo.GetActiveUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, active.ID, users[0].ID)
}
