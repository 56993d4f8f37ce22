package service

import (
	"context"
	"testing"
	"time"

	"punchbot/internal/domain"
	"punchbot/internal/domain/entity"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_attendanceService_GetOrCreateUser(t *testing.T) {
	ctx := context.Background()

	type args struct {
		slackUserID   string
		slackUserName string
	}
	tests := []struct {
		name      string
		args      args
		buildMock func(m allMocks, args args)
		wantName  string
		wantTZ    string
		wantErr   bool
	}{
		{
			name: "Should return the existing user without touching Slack",
			args: args{slackUserID: "U123", slackUserName: "john"},
			buildMock: func(m allMocks, args args) {
				m.mockUserRepo.EXPECT().
					GetBySlackID(args.slackUserID).
					Return(&entity.User{ID: 1, SlackUserID: args.slackUserID, DisplayName: "John Doe", Timezone: "UTC"}, nil).Times(1)
			},
			wantName: "John Doe",
			wantTZ:   "UTC",
		},
		{
			name: "Should create a new user enriched from the Slack profile",
			args: args{slackUserID: "U456", slackUserName: "jane"},
			buildMock: func(m allMocks, args args) {
				m.mockUserRepo.EXPECT().
					GetBySlackID(args.slackUserID).
					Return(nil, nil).Times(1)
				m.mockSlackClient.EXPECT().
					GetUserInfo(args.slackUserID).
					Return(&slack.User{
						Name: "jane.doe",
						TZ:   "America/Sao_Paulo",
						Profile: slack.UserProfile{
							RealName: "Jane Doe",
						},
					}, nil).Times(1)
				m.mockUserRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(user *entity.User) error {
						user.ID = 2
						require.Equal(t, args.slackUserID, user.SlackUserID)
						require.True(t, user.IsActive)
						require.Equal(t, 8, user.StandardHours)
						return nil
					}).Times(1)
			},
			wantName: "Jane Doe",
			wantTZ:   "America/Sao_Paulo",
		},
		{
			name: "Should create the user with defaults when the Slack lookup fails",
			args: args{slackUserID: "U789", slackUserName: "bob"},
			buildMock: func(m allMocks, args args) {
				m.mockUserRepo.EXPECT().
					GetBySlackID(args.slackUserID).
					Return(nil, nil).Times(1)
				m.mockSlackClient.EXPECT().
					GetUserInfo(args.slackUserID).
					Return(nil, assert.AnError).Times(1)
				m.mockUserRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(user *entity.User) error {
						user.ID = 3
						return nil
					}).Times(1)
			},
			wantName: "bob",
			wantTZ:   "UTC",
		},
		{
			name: "Should return error when the user lookup fails",
			args: args{slackUserID: "U123", slackUserName: "john"},
			buildMock: func(m allMocks, args args) {
				m.mockUserRepo.EXPECT().
					GetBySlackID(args.slackUserID).
					Return(nil, assert.AnError).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, svc, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m, tt.args)

			user, err := svc.GetOrCreateUser(ctx, tt.args.slackUserID, tt.args.slackUserName)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, user.DisplayName)
			assert.Equal(t, tt.wantTZ, user.Timezone)
		})
	}
}

func Test_attendanceService_RecordPunch(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 12, 2, 15, 0, 0, 0, time.UTC)

	user := &entity.User{ID: 1, SlackUserID: "U123", Timezone: "UTC", StandardHours: 8, IsActive: true}

	tests := []struct {
		name          string
		action        domain.PunchAction
		at            time.Time
		strict        bool
		buildMock     func(m allMocks)
		wantAnomalous bool
		wantErr       error
	}{
		{
			name:   "Should store an expected punch in without anomaly",
			action: domain.ActionIn,
			buildMock: func(m allMocks) {
				m.mockUserRepo.EXPECT().GetByID(int64(1)).Return(user, nil).Times(1)
				m.mockPunchRepo.EXPECT().
					GetByUserAndRange(int64(1), gomock.Any(), gomock.Any()).
					Return(nil, nil).Times(1)
				m.mockPunchRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
			},
		},
		{
			name:   "Should flag an out of sequence punch and still store it",
			action: domain.ActionBack,
			buildMock: func(m allMocks) {
				m.mockUserRepo.EXPECT().GetByID(int64(1)).Return(user, nil).Times(1)
				m.mockPunchRepo.EXPECT().
					GetByUserAndRange(int64(1), gomock.Any(), gomock.Any()).
					Return(nil, nil).Times(1)
				m.mockPunchRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
			},
			wantAnomalous: true,
		},
		{
			name:   "Should judge a backdated punch against the state it interrupted",
			action: domain.ActionBreak,
			at:     time.Date(2024, 12, 2, 12, 0, 0, 0, time.UTC),
			buildMock: func(m allMocks) {
				m.mockUserRepo.EXPECT().GetByID(int64(1)).Return(user, nil).Times(1)
				m.mockPunchRepo.EXPECT().
					GetByUserAndRange(int64(1), gomock.Any(), gomock.Any()).
					Return([]*entity.PunchEvent{punchAt(domain.ActionIn, 9, 0)}, nil).Times(1)
				m.mockPunchRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
			},
		},
		{
			name:   "Should reject a future timestamp",
			action: domain.ActionIn,
			at:     now.Add(time.Hour),
			buildMock: func(m allMocks) {
				m.mockUserRepo.EXPECT().GetByID(int64(1)).Return(user, nil).Times(1)
			},
			wantErr: domain.ErrInvalidTimestamp,
		},
		{
			name:      "Should reject an unknown action",
			action:    domain.PunchAction("lunch"),
			buildMock: func(m allMocks) {},
			wantErr:   domain.ErrInvalidAction,
		},
		{
			name:   "Should reject an out of sequence punch in strict mode",
			action: domain.ActionOut,
			strict: true,
			buildMock: func(m allMocks) {
				m.mockUserRepo.EXPECT().GetByID(int64(1)).Return(user, nil).Times(1)
				m.mockPunchRepo.EXPECT().
					GetByUserAndRange(int64(1), gomock.Any(), gomock.Any()).
					Return(nil, nil).Times(1)
			},
			wantErr: domain.ErrInvalidAction,
		},
		{
			name:   "Should return error when the user does not exist",
			action: domain.ActionIn,
			buildMock: func(m allMocks) {
				m.mockUserRepo.EXPECT().GetByID(int64(1)).Return(nil, nil).Times(1)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, svc, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()
			freezeNow(svc, now)
			svc.cfg.StrictSequence = tt.strict

			tt.buildMock(m)

			event, err := svc.RecordPunch(ctx, 1, tt.action, tt.at, false, "")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAnomalous, event.Anomalous)
			if tt.at.IsZero() {
				assert.Equal(t, now, event.Timestamp)
			} else {
				assert.Equal(t, tt.at.UTC(), event.Timestamp)
			}
		})
	}
}

func Test_attendanceService_RecordPunch_AllowsAutoInStrictMode(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 12, 2, 15, 0, 0, 0, time.UTC)
	user := &entity.User{ID: 1, SlackUserID: "U123", Timezone: "UTC", StandardHours: 8, IsActive: true}

	m, svc, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()
	freezeNow(svc, now)
	svc.cfg.StrictSequence = true

	m.mockUserRepo.EXPECT().GetByID(int64(1)).Return(user, nil).Times(1)
	m.mockPunchRepo.EXPECT().
		GetByUserAndRange(int64(1), gomock.Any(), gomock.Any()).
		Return(nil, nil).Times(1)
	m.mockPunchRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	event, err := svc.RecordPunch(ctx, 1, domain.ActionOut, time.Time{}, true, "auto punch out")
	require.NoError(t, err)
	assert.True(t, event.Anomalous)
	assert.True(t, event.IsAuto)
}
