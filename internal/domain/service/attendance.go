package service

import (
	"context"
	"fmt"
	"time"

	"punchbot/internal/config"
	"punchbot/internal/domain"
	"punchbot/internal/domain/contract"
	"punchbot/internal/domain/entity"
)

type attendanceService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	cfg         *config.Config

	// userLocks serializes the read-last-event + append section per user.
	userLocks *domain.KeyedMutex
	now       func() time.Time
}

func newAttendance(dm contract.DataManager, slackClient contract.SlackClient, cfg *config.Config) *attendanceService {
	return &attendanceService{
		dm:          dm,
		slackClient: slackClient,
		cfg:         cfg,
		userLocks:   domain.NewKeyedMutex(),
		now:         time.Now,
	}
}

func (s *attendanceService) GetOrCreateUser(ctx context.Context, slackUserID, slackUserName string) (*entity.User, error) {
	user, err := s.dm.User().GetBySlackID(slackUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	if user != nil {
		return user, nil
	}

	user = &entity.User{
		SlackUserID:   slackUserID,
		SlackUserName: slackUserName,
		DisplayName:   slackUserName,
		Role:          "user",
		StandardHours: s.cfg.DefaultStandardHours,
		Timezone:      s.cfg.DefaultTimezone,
		IsActive:      true,
	}

	// Enrich from the Slack profile when reachable; a failed lookup still
	// lets the punch through with the bare identity.
	if info, err := s.slackClient.GetUserInfo(slackUserID); err == nil {
		displayName := info.Profile.RealName
		if displayName == "" {
			displayName = info.Profile.DisplayName
		}
		if displayName == "" {
			displayName = info.Name
		}
		user.DisplayName = displayName
		if info.Name != "" {
			user.SlackUserName = info.Name
		}
		if info.TZ != "" {
			user.Timezone = info.TZ
		}
	}

	if err := s.dm.User().Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *attendanceService) RecordPunch(ctx context.Context, userID int64, action domain.PunchAction, at time.Time, isAuto bool, note string) (*entity.PunchEvent, error) {
	if _, ok := domain.ParseAction(string(action)); !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAction, action)
	}

	user, err := s.dm.User().GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, userID)
	}

	now := s.now().UTC()
	if at.IsZero() {
		at = now
	} else {
		at = at.UTC()
	}
	if at.After(now) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidTimestamp, at.Format(time.RFC3339))
	}

	s.userLocks.Lock(userID)
	defer s.userLocks.Unlock(userID)

	loc := user.Location()
	date := at.In(loc).Format(domain.DateLayout)
	from, to, err := localDayWindow(date, loc)
	if err != nil {
		return nil, err
	}

	events, err := s.dm.Punch().GetByUserAndRange(userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get day events: %w", err)
	}

	state := stateBefore(events, at)
	expected := domain.IsExpectedTransition(state, action)
	if !expected && s.cfg.StrictSequence && !isAuto {
		return nil, fmt.Errorf("%w: cannot punch %q while %s", domain.ErrInvalidAction, action, state)
	}

	event := &entity.PunchEvent{
		UserID:    userID,
		Action:    action,
		Timestamp: at,
		IsAuto:    isAuto,
		Anomalous: !expected,
		Note:      note,
	}

	if err := s.dm.Punch().Create(event); err != nil {
		return nil, fmt.Errorf("failed to store punch event: %w", err)
	}

	return event, nil
}

// stateBefore folds the day state over events strictly preceding `at`, so a
// backdated punch is judged against the state it would have interrupted.
func stateBefore(events []*entity.PunchEvent, at time.Time) domain.DayState {
	state := domain.StateIdle
	for _, ev := range sortedByTime(events) {
		if !ev.Timestamp.Before(at) {
			break
		}
		state = nextState(state, ev.Action)
	}
	return state
}
