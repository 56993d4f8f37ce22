package domain

// PunchAction is the closed set of punch kinds a user can record.
type PunchAction string

const (
	ActionIn    PunchAction = "in"
	ActionOut   PunchAction = "out"
	ActionBreak PunchAction = "break"
	ActionBack  PunchAction = "back"
)

// ParseAction maps a command argument to a punch action.
func ParseAction(s string) (PunchAction, bool) {
	switch PunchAction(s) {
	case ActionIn, ActionOut, ActionBreak, ActionBack:
		return PunchAction(s), true
	}
	return "", false
}

// DayState is the per-user, per-day attendance state.
type DayState string

const (
	StateIdle    DayState = "idle"
	StateWorking DayState = "working"
	StateOnBreak DayState = "on_break"
)

// SessionStatus is the terminal status of a computed day session.
type SessionStatus string

const (
	SessionIdle   SessionStatus = "idle"
	SessionOpen   SessionStatus = "open"
	SessionClosed SessionStatus = "closed"
)

// LeaveStatus values. pending -> approved/rejected are one-way transitions;
// cancelled is only reachable for leaves that have not started yet.
type LeaveStatus string

const (
	LeavePending   LeaveStatus = "pending"
	LeaveApproved  LeaveStatus = "approved"
	LeaveRejected  LeaveStatus = "rejected"
	LeaveCancelled LeaveStatus = "cancelled"
)

// Reminder kinds used for the persisted per-user per-day reminder marks.
const (
	ReminderDailyPunchIn = "daily_punch_in"
	ReminderForgotPunch  = "forgot_punch_out"
)

// DateLayout is the calendar-date format used for leave ranges, reminder
// marks and day-session keys. Dates are always in the user's timezone.
const DateLayout = "2006-01-02"

// ClockLayout is the HH:MM format used for configured reminder times.
const ClockLayout = "15:04"

// DefaultLeaveType is used when a leave request does not name a type.
const DefaultLeaveType = "vacation"

// expectedActions lists, per state, the punch actions that keep the day
// sequence well formed. Anything else is stored but flagged anomalous.
// Note that out-while-on-break closes the day yet still counts as an anomaly.
var expectedActions = map[DayState]map[PunchAction]bool{
	StateIdle:    {ActionIn: true},
	StateWorking: {ActionBreak: true, ActionOut: true},
	StateOnBreak: {ActionBack: true},
}

// IsExpectedTransition reports whether action is a well formed next punch
// for the given day state.
func IsExpectedTransition(state DayState, action PunchAction) bool {
	return expectedActions[state][action]
}
