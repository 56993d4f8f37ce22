package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"punchbot/internal/domain"
	"punchbot/internal/domain/entity"
)

func (s *attendanceService) ComputeDaySession(ctx context.Context, userID int64, date string) (*entity.DaySession, error) {
	user, err := s.dm.User().GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, userID)
	}

	loc := user.Location()
	from, to, err := localDayWindow(date, loc)
	if err != nil {
		return nil, err
	}

	events, err := s.dm.Punch().GetByUserAndRange(userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get day events: %w", err)
	}

	session := foldDaySession(userID, date, events, loc, s.now().UTC())

	leaves, err := s.dm.Leave().GetApprovedOverlapping(userID, date, date)
	if err != nil {
		return nil, fmt.Errorf("failed to check leave: %w", err)
	}
	session.OnLeave = len(leaves) > 0

	return session, nil
}

func (s *attendanceService) AggregateRange(ctx context.Context, userID int64, startDate, endDate string) (*entity.RangeSummary, error) {
	user, err := s.dm.User().GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, userID)
	}

	loc := user.Location()
	start, err := time.ParseInLocation(domain.DateLayout, startDate, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.ParseInLocation(domain.DateLayout, endDate, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("start date %s is after end date %s", startDate, endDate)
	}

	// One query for the whole range, partitioned into local calendar days.
	events, err := s.dm.Punch().GetByUserAndRange(userID, start.UTC(), end.AddDate(0, 0, 1).UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to get range events: %w", err)
	}

	eventsByDay := make(map[string][]*entity.PunchEvent)
	for _, ev := range events {
		day := ev.Timestamp.In(loc).Format(domain.DateLayout)
		eventsByDay[day] = append(eventsByDay[day], ev)
	}

	leaves, err := s.dm.Leave().GetApprovedOverlapping(userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaves: %w", err)
	}

	summary := &entity.RangeSummary{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	now := s.now().UTC()
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := day.Format(domain.DateLayout)
		session := foldDaySession(userID, date, eventsByDay[date], loc, now)

		for _, l := range leaves {
			if l.Covers(date) {
				session.OnLeave = true
				break
			}
		}

		summary.TotalWorkedMinutes += session.WorkedMinutes
		summary.TotalBreakMinutes += session.BreakMinutes
		summary.Anomalies += session.Anomalies
		if session.OnLeave && session.Status == domain.SessionIdle {
			summary.LeaveDays++
		} else if session.Status != domain.SessionIdle {
			summary.WorkedDays++
		}
		summary.Days = append(summary.Days, session)
	}

	return summary, nil
}

// localDayWindow returns the UTC instants bounding the local calendar day.
func localDayWindow(date string, loc *time.Location) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(domain.DateLayout, date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return day.UTC(), day.AddDate(0, 0, 1).UTC(), nil
}

// nextState applies one punch to the day state, mirroring the fold below.
func nextState(state domain.DayState, action domain.PunchAction) domain.DayState {
	switch action {
	case domain.ActionIn:
		return domain.StateWorking
	case domain.ActionBreak:
		return domain.StateOnBreak
	case domain.ActionBack:
		return domain.StateWorking
	case domain.ActionOut:
		return domain.StateIdle
	}
	return state
}

func sortedByTime(events []*entity.PunchEvent) []*entity.PunchEvent {
	sorted := make([]*entity.PunchEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// foldDaySession turns one local day's punches into work/break totals.
// The fold is pure and defensive: it re-sorts the events and never fails on
// out-of-order or duplicate punches, it only counts anomalies.
//
// Accounting rules: worked minutes accumulate over in->(break|out)
// intervals, break minutes over break->(back|out). Unmatched closes add
// nothing. A day left open is capped at `now` when the date is today,
// otherwise at end of day and flagged incomplete.
func foldDaySession(userID int64, date string, events []*entity.PunchEvent, loc *time.Location, now time.Time) *entity.DaySession {
	session := &entity.DaySession{
		UserID: userID,
		Date:   date,
		Status: domain.SessionIdle,
	}

	state := domain.StateIdle
	var openStart time.Time

	for _, ev := range sortedByTime(events) {
		t := ev.Timestamp
		if !domain.IsExpectedTransition(state, ev.Action) {
			session.Anomalies++
		}

		switch ev.Action {
		case domain.ActionIn:
			switch state {
			case domain.StateIdle:
				state = domain.StateWorking
				openStart = t
				if session.FirstIn == nil {
					firstIn := t
					session.FirstIn = &firstIn
				}
			case domain.StateOnBreak:
				session.BreakMinutes += minutesBetween(openStart, t)
				state = domain.StateWorking
				openStart = t
			case domain.StateWorking:
				// duplicate in, ignored for accounting
			}

		case domain.ActionBreak:
			switch state {
			case domain.StateWorking:
				session.WorkedMinutes += minutesBetween(openStart, t)
				state = domain.StateOnBreak
				openStart = t
			case domain.StateIdle:
				// break with nothing open still starts a break interval
				state = domain.StateOnBreak
				openStart = t
			case domain.StateOnBreak:
				// duplicate break, ignored
			}

		case domain.ActionBack:
			switch state {
			case domain.StateOnBreak:
				session.BreakMinutes += minutesBetween(openStart, t)
				state = domain.StateWorking
				openStart = t
			case domain.StateIdle:
				// back with no open break resumes work
				state = domain.StateWorking
				openStart = t
			case domain.StateWorking:
				// duplicate back, ignored
			}

		case domain.ActionOut:
			switch state {
			case domain.StateWorking:
				session.WorkedMinutes += minutesBetween(openStart, t)
			case domain.StateOnBreak:
				session.BreakMinutes += minutesBetween(openStart, t)
			case domain.StateIdle:
				// unmatched close, counted as anomaly above
			}
			lastOut := t
			session.LastOut = &lastOut
			state = domain.StateIdle
			session.Status = domain.SessionClosed
		}
	}

	if state != domain.StateIdle {
		capAt := now
		if date != now.In(loc).Format(domain.DateLayout) {
			// past day left open: cap the estimate at end of day
			dayStart, _ := time.ParseInLocation(domain.DateLayout, date, loc)
			capAt = dayStart.AddDate(0, 0, 1).Add(-time.Second).UTC()
			session.Incomplete = true
		}
		if capAt.After(openStart) {
			if state == domain.StateWorking {
				session.WorkedMinutes += minutesBetween(openStart, capAt)
			} else {
				session.BreakMinutes += minutesBetween(openStart, capAt)
			}
		}
		session.Status = domain.SessionOpen
	}

	return session
}

func minutesBetween(from, to time.Time) int {
	return int(to.Sub(from) / time.Minute)
}
