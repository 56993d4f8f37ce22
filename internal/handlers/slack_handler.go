package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"punchbot/internal/domain"
	"punchbot/internal/domain/contract"
	"punchbot/internal/domain/entity"
	slackcmd "punchbot/internal/domain/slack"

	"github.com/slack-go/slack"
)

type SlackHandler struct {
	slackClient   contract.SlackClient
	attendance    contract.AttendanceService
	signingSecret string
}

func New(slackClient contract.SlackClient, attendance contract.AttendanceService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		slackClient:   slackClient,
		attendance:    attendance,
		signingSecret: signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	// Handle command
	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdPunchIn, slackcmd.CmdPunchOut, slackcmd.CmdPunchBreak, slackcmd.CmdPunchBack:
		return h.handlePunch(ctx, cmd, slashCmd)
	case slackcmd.CmdToday:
		return h.handleToday(ctx, slashCmd)
	case slackcmd.CmdWeek:
		return h.handleWeek(ctx, slashCmd)
	case slackcmd.CmdMonth:
		return h.handleMonth(ctx, slashCmd)
	case slackcmd.CmdLeave:
		return h.handleLeave(ctx, cmd, slashCmd)
	case slackcmd.CmdCancel:
		return h.handleCancelLeave(ctx, cmd, slashCmd)
	case slackcmd.CmdHolidays:
		return h.handleHolidays(ctx, slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command. Try `/punch help`")
	}
}

var punchReplies = map[domain.PunchAction]string{
	domain.ActionIn:    "🟢 Punched in at %s. Have a good day!",
	domain.ActionOut:   "🔴 Punched out at %s. See you tomorrow!",
	domain.ActionBreak: "☕ Break started at %s.",
	domain.ActionBack:  "💪 Back to work at %s.",
}

func (h *SlackHandler) handlePunch(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	action, ok := domain.ParseAction(string(cmd.Type))
	if !ok {
		return h.createErrorResponse("Unknown punch action")
	}

	user, err := h.attendance.GetOrCreateUser(ctx, slashCmd.UserID, slashCmd.UserName)
	if err != nil {
		return h.createErrorResponse("Could not resolve your user record")
	}

	event, err := h.attendance.RecordPunch(ctx, user.ID, action, time.Time{}, false, cmd.Note())
	if err != nil {
		return h.createErrorResponse(h.errorMessage(err))
	}

	text := fmt.Sprintf(punchReplies[action], event.Timestamp.In(user.Location()).Format("15:04"))
	if event.Anomalous {
		text += "\n⚠️ This punch is out of sequence. It was recorded anyway, but you may want to check today's records with `/punch today`."
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) handleToday(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	user, err := h.attendance.GetOrCreateUser(ctx, slashCmd.UserID, slashCmd.UserName)
	if err != nil {
		return h.createErrorResponse("Could not resolve your user record")
	}

	date := time.Now().In(user.Location()).Format(domain.DateLayout)
	session, err := h.attendance.ComputeDaySession(ctx, user.ID, date)
	if err != nil {
		return h.createErrorResponse(h.errorMessage(err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         formatDaySession(session, user.Location()),
	}
}

func (h *SlackHandler) handleWeek(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	return h.handleRangeSummary(ctx, slashCmd, "This week", weekStart)
}

func (h *SlackHandler) handleMonth(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	return h.handleRangeSummary(ctx, slashCmd, "This month", monthStart)
}

func (h *SlackHandler) handleRangeSummary(ctx context.Context, slashCmd *slack.SlashCommand, label string, startOf func(time.Time) time.Time) *slack.Msg {
	user, err := h.attendance.GetOrCreateUser(ctx, slashCmd.UserID, slashCmd.UserName)
	if err != nil {
		return h.createErrorResponse("Could not resolve your user record")
	}

	localNow := time.Now().In(user.Location())
	start := startOf(localNow).Format(domain.DateLayout)
	end := localNow.Format(domain.DateLayout)

	summary, err := h.attendance.AggregateRange(ctx, user.ID, start, end)
	if err != nil {
		return h.createErrorResponse(h.errorMessage(err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         formatRangeSummary(label, summary),
	}
}

func (h *SlackHandler) handleLeave(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	user, err := h.attendance.GetOrCreateUser(ctx, slashCmd.UserID, slashCmd.UserName)
	if err != nil {
		return h.createErrorResponse("Could not resolve your user record")
	}

	startDate, endDate, reason, err := parseLeaveArgs(cmd.Args, time.Now().In(user.Location()))
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	leave, err := h.attendance.RequestLeave(ctx, user.ID, startDate, endDate, "", reason)
	if err != nil {
		return h.createErrorResponse(h.errorMessage(err))
	}

	text := fmt.Sprintf("🏖️ Leave recorded for %s", leave.StartDate)
	if leave.EndDate != leave.StartDate {
		text = fmt.Sprintf("🏖️ Leave recorded from %s to %s", leave.StartDate, leave.EndDate)
	}
	if leave.Status == domain.LeavePending {
		text += " (pending approval)"
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

// parseLeaveArgs understands the three leave forms: no args (today), one
// date, and `START to END [reason...]`.
func parseLeaveArgs(args []string, localNow time.Time) (startDate, endDate, reason string, err error) {
	today := localNow.Format(domain.DateLayout)

	switch {
	case len(args) == 0:
		return today, today, "", nil
	case len(args) == 1:
		if _, perr := time.Parse(domain.DateLayout, args[0]); perr != nil {
			return "", "", "", fmt.Errorf("Invalid date %q. Use YYYY-MM-DD", args[0])
		}
		return args[0], args[0], "", nil
	case len(args) >= 3 && args[1] == "to":
		if _, perr := time.Parse(domain.DateLayout, args[0]); perr != nil {
			return "", "", "", fmt.Errorf("Invalid date %q. Use YYYY-MM-DD", args[0])
		}
		if _, perr := time.Parse(domain.DateLayout, args[2]); perr != nil {
			return "", "", "", fmt.Errorf("Invalid date %q. Use YYYY-MM-DD", args[2])
		}
		return args[0], args[2], strings.Join(args[3:], " "), nil
	default:
		return "", "", "", fmt.Errorf("Use `/punch ooo`, `/punch ooo YYYY-MM-DD` or `/punch ooo YYYY-MM-DD to YYYY-MM-DD`")
	}
}

func (h *SlackHandler) handleCancelLeave(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please provide a date: `/punch cancel YYYY-MM-DD`")
	}

	user, err := h.attendance.GetOrCreateUser(ctx, slashCmd.UserID, slashCmd.UserName)
	if err != nil {
		return h.createErrorResponse("Could not resolve your user record")
	}

	leave, err := h.attendance.CancelLeave(ctx, user.ID, cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(h.errorMessage(err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("🗑️ Leave from %s to %s cancelled", leave.StartDate, leave.EndDate),
	}
}

func (h *SlackHandler) handleHolidays(ctx context.Context, slashCmd *slack.SlashCommand) *slack.Msg {
	user, err := h.attendance.GetOrCreateUser(ctx, slashCmd.UserID, slashCmd.UserName)
	if err != nil {
		return h.createErrorResponse("Could not resolve your user record")
	}

	leaves, err := h.attendance.ListLeaves(ctx, user.ID, 10)
	if err != nil {
		return h.createErrorResponse(h.errorMessage(err))
	}

	if len(leaves) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No leave records yet. Use `/punch ooo` to request one.",
		}
	}

	var b strings.Builder
	b.WriteString("*Your leave records:*\n")
	for _, l := range leaves {
		if l.StartDate == l.EndDate {
			fmt.Fprintf(&b, "• %s — %s (%s)\n", l.StartDate, l.LeaveType, l.Status)
		} else {
			fmt.Fprintf(&b, "• %s to %s — %s (%s)\n", l.StartDate, l.EndDate, l.LeaveType, l.Status)
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         b.String(),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func formatDaySession(session *entity.DaySession, loc *time.Location) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", session.Date)

	if session.OnLeave {
		b.WriteString("🏖️ On approved leave\n")
	}

	switch session.Status {
	case domain.SessionIdle:
		b.WriteString("No punches recorded")
		return b.String()
	case domain.SessionOpen:
		b.WriteString("Status: still punched in\n")
	case domain.SessionClosed:
		b.WriteString("Status: done for the day\n")
	}

	if session.FirstIn != nil {
		fmt.Fprintf(&b, "First in: %s\n", session.FirstIn.In(loc).Format("15:04"))
	}
	if session.LastOut != nil {
		fmt.Fprintf(&b, "Last out: %s\n", session.LastOut.In(loc).Format("15:04"))
	}
	fmt.Fprintf(&b, "Worked: %s", formatMinutes(session.WorkedMinutes))
	if session.BreakMinutes > 0 {
		fmt.Fprintf(&b, " · Break: %s", formatMinutes(session.BreakMinutes))
	}
	if session.Incomplete {
		b.WriteString("\n⚠️ Day was left open; worked time is an estimate")
	}
	if session.Anomalies > 0 {
		fmt.Fprintf(&b, "\n⚠️ %d out-of-sequence punch(es)", session.Anomalies)
	}

	return b.String()
}

func formatRangeSummary(label string, summary *entity.RangeSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s (%s to %s)*\n", label, summary.StartDate, summary.EndDate)
	fmt.Fprintf(&b, "Worked: %s over %d day(s)\n", formatMinutes(summary.TotalWorkedMinutes), summary.WorkedDays)
	if summary.TotalBreakMinutes > 0 {
		fmt.Fprintf(&b, "Breaks: %s\n", formatMinutes(summary.TotalBreakMinutes))
	}
	if summary.LeaveDays > 0 {
		fmt.Fprintf(&b, "Leave days: %d\n", summary.LeaveDays)
	}
	if summary.Anomalies > 0 {
		fmt.Fprintf(&b, "⚠️ %d out-of-sequence punch(es)\n", summary.Anomalies)
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// weekStart returns the Monday of t's week.
func weekStart(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func (h *SlackHandler) errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidTimestamp):
		return "That punch is in the future and cannot be recorded"
	case errors.Is(err, domain.ErrInvalidAction):
		return "That punch does not fit your current state. Check `/punch today`"
	case errors.Is(err, domain.ErrLeaveConflict):
		return "That range overlaps an already approved leave"
	case errors.Is(err, domain.ErrLeaveNotCancellable):
		return "That leave has already started and cannot be cancelled"
	case errors.Is(err, domain.ErrNotFound):
		return "Record not found"
	default:
		return "Something went wrong, please try again"
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
