package service

import (
	"punchbot/internal/config"
	"punchbot/internal/domain/contract"
)

type Instance struct {
	Attendance contract.AttendanceService
	Scheduler  *scheduler
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, cfg *config.Config) *Instance {
	attendance := newAttendance(dm, slackClient, cfg)

	return &Instance{
		Attendance: attendance,
		Scheduler:  newScheduler(attendance, cfg),
	}
}
