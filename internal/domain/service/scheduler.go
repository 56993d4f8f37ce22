package service

import (
	"context"
	"log"
	"time"

	"punchbot/internal/config"
	"punchbot/internal/domain/contract"
)

// scheduler drives the recurring background jobs: the auto-punch-out sweep
// and the reminder pass. Both entry points are idempotent, so the loop can
// fire them together on every tick without any coordination state.
type scheduler struct {
	attendance contract.AttendanceService
	interval   time.Duration
	stopChan   chan struct{}
	running    bool
}

func newScheduler(attendance contract.AttendanceService, cfg *config.Config) *scheduler {
	interval := time.Duration(cfg.SweepIntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	return &scheduler{
		attendance: attendance,
		interval:   interval,
		stopChan:   make(chan struct{}),
	}
}

func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	log.Printf("Scheduler starting, sweep interval %s", s.interval)
	go s.mainLoop()
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	log.Println("Scheduler stopping...")
	close(s.stopChan)
	s.running = false
}

func (s *scheduler) mainLoop() {
	// run immediately so a restart catches up on overdue sweeps
	s.runOnce()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce()
		case <-s.stopChan:
			return
		}
	}
}

func (s *scheduler) runOnce() {
	ctx := context.Background()
	now := time.Now().UTC()

	if err := s.attendance.RunAutoPunchSweep(ctx, now); err != nil {
		log.Printf("Auto punch sweep failed: %v", err)
	}
	if err := s.attendance.RunReminderPass(ctx, now); err != nil {
		log.Printf("Reminder pass failed: %v", err)
	}
}
