package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"punchbot/internal/domain"
	"punchbot/internal/domain/entity"

	"github.com/slack-go/slack"
)

// RunAutoPunchSweep closes open working sessions for users who have been
// silent longer than the configured timeout. One failing user never aborts
// the sweep for the others, and re-running inside the same window does not
// insert a second synthetic out.
func (s *attendanceService) RunAutoPunchSweep(ctx context.Context, now time.Time) error {
	users, err := s.dm.User().GetActiveUsers()
	if err != nil {
		return fmt.Errorf("failed to get active users: %w", err)
	}

	now = now.UTC()
	for _, user := range users {
		if err := s.sweepUser(ctx, user, now); err != nil {
			log.Printf("auto punch sweep failed for user %d: %v", user.ID, err)
		}
	}

	return nil
}

func (s *attendanceService) sweepUser(ctx context.Context, user *entity.User, now time.Time) error {
	loc := user.Location()
	date := now.In(loc).Format(domain.DateLayout)
	from, to, err := localDayWindow(date, loc)
	if err != nil {
		return err
	}

	events, err := s.dm.Punch().GetByUserAndRange(user.ID, from, to)
	if err != nil {
		return fmt.Errorf("failed to get day events: %w", err)
	}
	if len(events) == 0 {
		return nil
	}

	session := foldDaySession(user.ID, date, events, loc, now)
	if session.Status != domain.SessionOpen {
		return nil
	}

	last := events[len(events)-1]
	if last.IsAuto {
		// an earlier sweep already acted on this session
		return nil
	}

	timeout := time.Duration(s.cfg.AutoPunchTimeoutMinutes) * time.Minute
	if now.Sub(last.Timestamp) < timeout {
		return nil
	}

	// Prefer closing at first-in + standard hours, the user's nominal end
	// of day; fall back to last activity + timeout.
	outAt := last.Timestamp.Add(timeout)
	if session.FirstIn != nil {
		nominalOut := session.FirstIn.Add(time.Duration(user.StandardHours) * time.Hour)
		if nominalOut.After(last.Timestamp) && !nominalOut.After(now) {
			outAt = nominalOut
		}
	}

	event, err := s.RecordPunch(ctx, user.ID, domain.ActionOut, outAt, true,
		fmt.Sprintf("auto punch out after %d minutes of inactivity", s.cfg.AutoPunchTimeoutMinutes))
	if err != nil {
		return fmt.Errorf("failed to record auto punch out: %w", err)
	}

	message := fmt.Sprintf("⏰ You were punched out automatically at %s after %d minutes of inactivity. Use `/punch in` if you are still working.",
		event.Timestamp.In(loc).Format("15:04"), s.cfg.AutoPunchTimeoutMinutes)
	if _, _, err := s.slackClient.PostMessage(user.SlackUserID, slack.MsgOptionText(message, false)); err != nil {
		log.Printf("failed to notify user %d about auto punch out: %v", user.ID, err)
	}

	return nil
}

// RunReminderPass delivers the punch-in and forgot-punch-out reminders.
// Delivery is guarded by durable per-user per-day marks so a restart or an
// overlapping pass never double-sends.
func (s *attendanceService) RunReminderPass(ctx context.Context, now time.Time) error {
	users, err := s.dm.User().GetActiveUsers()
	if err != nil {
		return fmt.Errorf("failed to get active users: %w", err)
	}

	now = now.UTC()
	for _, user := range users {
		if err := s.remindUser(ctx, user, now); err != nil {
			log.Printf("reminder pass failed for user %d: %v", user.ID, err)
		}
	}

	return nil
}

func (s *attendanceService) remindUser(ctx context.Context, user *entity.User, now time.Time) error {
	loc := user.Location()
	localNow := now.In(loc)
	date := localNow.Format(domain.DateLayout)

	from, to, err := localDayWindow(date, loc)
	if err != nil {
		return err
	}
	events, err := s.dm.Punch().GetByUserAndRange(user.ID, from, to)
	if err != nil {
		return fmt.Errorf("failed to get day events: %w", err)
	}

	if afterClock(localNow, s.cfg.DailyReminderTime) && len(events) == 0 {
		onLeave, err := s.dm.Leave().GetApprovedOverlapping(user.ID, date, date)
		if err != nil {
			return fmt.Errorf("failed to check leave: %w", err)
		}
		if len(onLeave) == 0 {
			msg := "☀️ Good morning! Don't forget to punch in with `/punch in`."
			if err := s.sendReminderOnce(user, domain.ReminderDailyPunchIn, date, msg); err != nil {
				return err
			}
		}
	}

	if afterClock(localNow, s.cfg.ForgotPunchReminderTime) && len(events) > 0 {
		session := foldDaySession(user.ID, date, events, loc, now)
		if session.Status == domain.SessionOpen {
			msg := "🌙 You are still punched in. Use `/punch out` when you finish for the day."
			if err := s.sendReminderOnce(user, domain.ReminderForgotPunch, date, msg); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *attendanceService) sendReminderOnce(user *entity.User, kind, date, message string) error {
	sent, err := s.dm.Reminder().WasSent(user.ID, kind, date)
	if err != nil {
		return fmt.Errorf("failed to check reminder mark: %w", err)
	}
	if sent {
		return nil
	}

	if _, _, err := s.slackClient.PostMessage(user.SlackUserID, slack.MsgOptionText(message, false)); err != nil {
		return fmt.Errorf("failed to send reminder: %w", err)
	}

	if err := s.dm.Reminder().MarkSent(user.ID, kind, date); err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}

	return nil
}

// afterClock reports whether t's local wall clock has reached the HH:MM
// threshold.
func afterClock(t time.Time, clock string) bool {
	threshold, err := time.Parse(domain.ClockLayout, clock)
	if err != nil {
		return false
	}
	return t.Hour()*60+t.Minute() >= threshold.Hour()*60+threshold.Minute()
}
