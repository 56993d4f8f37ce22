package service

import (
	"testing"
	"time"

	"punchbot/internal/config"
	"punchbot/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager  *mocks.MockDataManager
	mockUserRepo     *mocks.MockUserRepo
	mockPunchRepo    *mocks.MockPunchRepo
	mockLeaveRepo    *mocks.MockLeaveRepo
	mockReminderRepo *mocks.MockReminderRepo
	mockSlackClient  *mocks.MockSlackClient
}

func testConfig() *config.Config {
	return &config.Config{
		DefaultTimezone:         "UTC",
		DefaultStandardHours:    8,
		LeaveAutoApprove:        true,
		AutoPunchTimeoutMinutes: 30,
		SweepIntervalMinutes:    15,
		DailyReminderTime:       "09:00",
		ForgotPunchReminderTime: "18:30",
	}
}

func newServiceTestMock(t *testing.T) (m allMocks, svc *attendanceService, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	userRepo := mocks.NewMockUserRepo(ctrl)
	dm.EXPECT().User().Return(userRepo).AnyTimes()

	punchRepo := mocks.NewMockPunchRepo(ctrl)
	dm.EXPECT().Punch().Return(punchRepo).AnyTimes()

	leaveRepo := mocks.NewMockLeaveRepo(ctrl)
	dm.EXPECT().Leave().Return(leaveRepo).AnyTimes()

	reminderRepo := mocks.NewMockReminderRepo(ctrl)
	dm.EXPECT().Reminder().Return(reminderRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager:  dm,
		mockUserRepo:     userRepo,
		mockPunchRepo:    punchRepo,
		mockLeaveRepo:    leaveRepo,
		mockReminderRepo: reminderRepo,
		mockSlackClient:  slackClient,
	}

	svc = newAttendance(dm, slackClient, testConfig())
	require.NotNil(t, svc)

	return
}

// freezeNow pins the service clock for deterministic session math.
func freezeNow(svc *attendanceService, at time.Time) {
	svc.now = func() time.Time { return at }
}
