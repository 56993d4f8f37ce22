package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"punchbot/internal/domain"
	"punchbot/internal/domain/entity"
	"punchbot/internal/handlers/test"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const signingSecret = "test-signing-secret"

func testUser() *entity.User {
	return &entity.User{
		ID:            1,
		SlackUserID:   "U123456789",
		SlackUserName: "test-user",
		DisplayName:   "Test User",
		StandardHours: 8,
		Timezone:      "UTC",
		IsActive:      true,
	}
}

func decodeResponse(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()

	require.Equal(t, http.StatusOK, resp.Code)

	var response slack.Msg
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	require.NoError(t, err)
	return response
}

func TestSlackHandler_HandleSlashCommand_Punch(t *testing.T) {
	type args struct {
		text   string
		userID string
	}

	tests := []struct {
		name          string
		args          args
		buildMocks    func(ctx context.Context, m test.ServiceMocks, args args)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should record a punch in",
			args: args{text: "in", userID: "U123456789"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				user := testUser()
				m.AttendanceServiceMock.EXPECT().
					GetOrCreateUser(gomock.Any(), args.userID, "test-user").
					Return(user, nil).Times(1)
				m.AttendanceServiceMock.EXPECT().
					RecordPunch(gomock.Any(), user.ID, domain.ActionIn, time.Time{}, false, "").
					Return(&entity.PunchEvent{
						ID:        1,
						UserID:    user.ID,
						Action:    domain.ActionIn,
						Timestamp: time.Date(2024, 12, 2, 9, 0, 0, 0, time.UTC),
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Punched in at 09:00")
			},
		},
		{
			name: "Should warn about an out of sequence punch",
			args: args{text: "back", userID: "U123456789"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				user := testUser()
				m.AttendanceServiceMock.EXPECT().
					GetOrCreateUser(gomock.Any(), args.userID, "test-user").
					Return(user, nil).Times(1)
				m.AttendanceServiceMock.EXPECT().
					RecordPunch(gomock.Any(), user.ID, domain.ActionBack, time.Time{}, false, "").
					Return(&entity.PunchEvent{
						ID:        2,
						UserID:    user.ID,
						Action:    domain.ActionBack,
						Timestamp: time.Date(2024, 12, 2, 13, 0, 0, 0, time.UTC),
						Anomalous: true,
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "Back to work at 13:00")
				assert.Contains(t, response.Text, "out of sequence")
			},
		},
		{
			name: "Should pass the free text note through",
			args: args{text: "in working from home", userID: "U123456789"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				user := testUser()
				m.AttendanceServiceMock.EXPECT().
					GetOrCreateUser(gomock.Any(), args.userID, "test-user").
					Return(user, nil).Times(1)
				m.AttendanceServiceMock.EXPECT().
					RecordPunch(gomock.Any(), user.ID, domain.ActionIn, time.Time{}, false, "working from home").
					Return(&entity.PunchEvent{
						ID:        3,
						UserID:    user.ID,
						Action:    domain.ActionIn,
						Timestamp: time.Date(2024, 12, 2, 9, 0, 0, 0, time.UTC),
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "Punched in at 09:00")
			},
		},
		{
			name: "Should translate a rejected future punch",
			args: args{text: "out", userID: "U123456789"},
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				user := testUser()
				m.AttendanceServiceMock.EXPECT().
					GetOrCreateUser(gomock.Any(), args.userID, "test-user").
					Return(user, nil).Times(1)
				m.AttendanceServiceMock.EXPECT().
					RecordPunch(gomock.Any(), user.ID, domain.ActionOut, time.Time{}, false, "").
					Return(nil, domain.ErrInvalidTimestamp).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "❌")
				assert.Contains(t, response.Text, "future")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			ctx := context.Background()
			if tt.buildMocks != nil {
				tt.buildMocks(ctx, m, tt.args)
			}

			req := test.CreateSlackRequest(t, "/punch", tt.args.text, tt.args.userID, signingSecret)
			resp := test.CreateTestRecorder()

			handler.HandleSlashCommand(resp, req)
			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Today(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	user := testUser()
	firstIn := time.Date(2024, 12, 2, 9, 0, 0, 0, time.UTC)
	lastOut := time.Date(2024, 12, 2, 18, 0, 0, 0, time.UTC)

	m.AttendanceServiceMock.EXPECT().
		GetOrCreateUser(gomock.Any(), user.SlackUserID, "test-user").
		Return(user, nil).Times(1)
	m.AttendanceServiceMock.EXPECT().
		ComputeDaySession(gomock.Any(), user.ID, gomock.Any()).
		Return(&entity.DaySession{
			UserID:        user.ID,
			Date:          "2024-12-02",
			WorkedMinutes: 480,
			BreakMinutes:  60,
			FirstIn:       &firstIn,
			LastOut:       &lastOut,
			Status:        domain.SessionClosed,
		}, nil).Times(1)

	req := test.CreateSlackRequest(t, "/punch", "today", user.SlackUserID, signingSecret)
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	response := decodeResponse(t, resp)
	assert.Contains(t, response.Text, "2024-12-02")
	assert.Contains(t, response.Text, "done for the day")
	assert.Contains(t, response.Text, "Worked: 8h 00m")
	assert.Contains(t, response.Text, "Break: 1h 00m")
}

func TestSlackHandler_HandleSlashCommand_Week(t *testing.T) {
	m, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	user := testUser()

	m.AttendanceServiceMock.EXPECT().
		GetOrCreateUser(gomock.Any(), user.SlackUserID, "test-user").
		Return(user, nil).Times(1)
	m.AttendanceServiceMock.EXPECT().
		AggregateRange(gomock.Any(), user.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, startDate, endDate string) (*entity.RangeSummary, error) {
			// week starts on Monday
			start, err := time.Parse(domain.DateLayout, startDate)
			require.NoError(t, err)
			require.Equal(t, time.Monday, start.Weekday())
			return &entity.RangeSummary{
				UserID:             user.ID,
				StartDate:          startDate,
				EndDate:            endDate,
				TotalWorkedMinutes: 1200,
				WorkedDays:         3,
				LeaveDays:          1,
			}, nil
		}).Times(1)

	req := test.CreateSlackRequest(t, "/punch", "week", user.SlackUserID, signingSecret)
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	response := decodeResponse(t, resp)
	assert.Contains(t, response.Text, "This week")
	assert.Contains(t, response.Text, "Worked: 20h 00m over 3 day(s)")
	assert.Contains(t, response.Text, "Leave days: 1")
}

func TestSlackHandler_HandleSlashCommand_Leave(t *testing.T) {
	type args struct {
		text   string
		userID string
	}

	tests := []struct {
		name          string
		args          args
		buildMocks    func(m test.ServiceMocks, args args)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should request leave for a date range with a reason",
			args: args{text: "ooo 2025-01-10 to 2025-01-12 family trip", userID: "U123456789"},
			buildMocks: func(m test.ServiceMocks, args args) {
				user := testUser()
				m.AttendanceServiceMock.EXPECT().
					GetOrCreateUser(gomock.Any(), args.userID, "test-user").
					Return(user, nil).Times(1)
				m.AttendanceServiceMock.EXPECT().
					RequestLeave(gomock.Any(), user.ID, "2025-01-10", "2025-01-12", "", "family trip").
					Return(&entity.LeaveRecord{
						ID:        1,
						UserID:    user.ID,
						StartDate: "2025-01-10",
						EndDate:   "2025-01-12",
						Status:    domain.LeaveApproved,
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "Leave recorded from 2025-01-10 to 2025-01-12")
			},
		},
		{
			name: "Should report a conflict with an approved leave",
			args: args{text: "ooo 2024-12-24 to 2024-12-26", userID: "U123456789"},
			buildMocks: func(m test.ServiceMocks, args args) {
				user := testUser()
				m.AttendanceServiceMock.EXPECT().
					GetOrCreateUser(gomock.Any(), args.userID, "test-user").
					Return(user, nil).Times(1)
				m.AttendanceServiceMock.EXPECT().
					RequestLeave(gomock.Any(), user.ID, "2024-12-24", "2024-12-26", "", "").
					Return(nil, domain.ErrLeaveConflict).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "overlaps an already approved leave")
			},
		},
		{
			name: "Should reject a malformed leave date",
			args: args{text: "ooo 01/10/2025", userID: "U123456789"},
			buildMocks: func(m test.ServiceMocks, args args) {
				user := testUser()
				m.AttendanceServiceMock.EXPECT().
					GetOrCreateUser(gomock.Any(), args.userID, "test-user").
					Return(user, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "Invalid date")
			},
		},
		{
			name: "Should cancel a future leave",
			args: args{text: "cancel 2025-01-10", userID: "U123456789"},
			buildMocks: func(m test.ServiceMocks, args args) {
				user := testUser()
				m.AttendanceServiceMock.EXPECT().
					GetOrCreateUser(gomock.Any(), args.userID, "test-user").
					Return(user, nil).Times(1)
				m.AttendanceServiceMock.EXPECT().
					CancelLeave(gomock.Any(), user.ID, "2025-01-10").
					Return(&entity.LeaveRecord{
						ID:        1,
						UserID:    user.ID,
						StartDate: "2025-01-10",
						EndDate:   "2025-01-12",
						Status:    domain.LeaveCancelled,
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "Leave from 2025-01-10 to 2025-01-12 cancelled")
			},
		},
		{
			name: "Should refuse to cancel a started leave",
			args: args{text: "cancel 2024-12-01", userID: "U123456789"},
			buildMocks: func(m test.ServiceMocks, args args) {
				user := testUser()
				m.AttendanceServiceMock.EXPECT().
					GetOrCreateUser(gomock.Any(), args.userID, "test-user").
					Return(user, nil).Times(1)
				m.AttendanceServiceMock.EXPECT().
					CancelLeave(gomock.Any(), user.ID, "2024-12-01").
					Return(nil, domain.ErrLeaveNotCancellable).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "already started")
			},
		},
		{
			name: "Should ask for a date when cancel has no args",
			args: args{text: "cancel", userID: "U123456789"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "Please provide a date")
			},
		},
		{
			name: "Should list leave records",
			args: args{text: "holidays", userID: "U123456789"},
			buildMocks: func(m test.ServiceMocks, args args) {
				user := testUser()
				m.AttendanceServiceMock.EXPECT().
					GetOrCreateUser(gomock.Any(), args.userID, "test-user").
					Return(user, nil).Times(1)
				m.AttendanceServiceMock.EXPECT().
					ListLeaves(gomock.Any(), user.ID, 10).
					Return([]*entity.LeaveRecord{
						{ID: 1, UserID: user.ID, StartDate: "2025-01-10", EndDate: "2025-01-10", LeaveType: "vacation", Status: domain.LeaveApproved},
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "2025-01-10")
				assert.Contains(t, response.Text, "vacation")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(m, tt.args)
			}

			req := test.CreateSlackRequest(t, "/punch", tt.args.text, tt.args.userID, signingSecret)
			resp := test.CreateTestRecorder()

			handler.HandleSlashCommand(resp, req)
			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Help(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/punch", "help", "U123456789", signingSecret)
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	response := decodeResponse(t, resp)
	assert.Contains(t, response.Text, "Available Commands")
}

func TestSlackHandler_HandleSlashCommand_UnknownCommand(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/punch", "lunch", "U123456789", signingSecret)
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	response := decodeResponse(t, resp)
	assert.Contains(t, response.Text, "unknown command")
}

func TestSlackHandler_HandleSlashCommand_InvalidSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/punch", "in", "U123456789", "wrong-secret")
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	require.Equal(t, http.StatusUnauthorized, resp.Code)
}
