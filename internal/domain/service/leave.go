package service

import (
	"context"
	"fmt"
	"time"

	"punchbot/internal/domain"
	"punchbot/internal/domain/entity"
)

func (s *attendanceService) RequestLeave(ctx context.Context, userID int64, startDate, endDate, leaveType, reason string) (*entity.LeaveRecord, error) {
	user, err := s.dm.User().GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, userID)
	}

	if _, err := time.Parse(domain.DateLayout, startDate); err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	if _, err := time.Parse(domain.DateLayout, endDate); err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	if endDate < startDate {
		return nil, fmt.Errorf("start date %s is after end date %s", startDate, endDate)
	}

	if leaveType == "" {
		leaveType = domain.DefaultLeaveType
	}

	s.userLocks.Lock(userID)
	defer s.userLocks.Unlock(userID)

	conflicts, err := s.dm.Leave().GetApprovedOverlapping(userID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check leave conflicts: %w", err)
	}
	if len(conflicts) > 0 {
		return nil, fmt.Errorf("%w: %s to %s conflicts with %s to %s",
			domain.ErrLeaveConflict, startDate, endDate, conflicts[0].StartDate, conflicts[0].EndDate)
	}

	status := domain.LeavePending
	if s.cfg.LeaveAutoApprove {
		status = domain.LeaveApproved
	}

	leave := &entity.LeaveRecord{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
		LeaveType: leaveType,
		Reason:    reason,
		Status:    status,
	}

	if err := s.dm.Leave().Create(leave); err != nil {
		return nil, fmt.Errorf("failed to create leave record: %w", err)
	}

	return leave, nil
}

func (s *attendanceService) CancelLeave(ctx context.Context, userID int64, date string) (*entity.LeaveRecord, error) {
	user, err := s.dm.User().GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", domain.ErrNotFound, userID)
	}

	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	s.userLocks.Lock(userID)
	defer s.userLocks.Unlock(userID)

	leave, err := s.dm.Leave().GetActiveForDate(userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to find leave: %w", err)
	}
	if leave == nil {
		return nil, fmt.Errorf("%w: no leave covering %s", domain.ErrNotFound, date)
	}

	today := s.now().In(user.Location()).Format(domain.DateLayout)
	if leave.StartDate <= today {
		return nil, fmt.Errorf("%w: leave started %s", domain.ErrLeaveNotCancellable, leave.StartDate)
	}

	if err := s.dm.Leave().UpdateStatus(leave.ID, domain.LeaveCancelled); err != nil {
		return nil, fmt.Errorf("failed to cancel leave: %w", err)
	}

	leave.Status = domain.LeaveCancelled
	return leave, nil
}

func (s *attendanceService) ListLeaves(ctx context.Context, userID int64, limit int) ([]*entity.LeaveRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	leaves, err := s.dm.Leave().GetByUser(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	return leaves, nil
}
