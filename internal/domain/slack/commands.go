package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdPunchIn    CommandType = "in"
	CmdPunchOut   CommandType = "out"
	CmdPunchBreak CommandType = "break"
	CmdPunchBack  CommandType = "back"
	CmdToday      CommandType = "today"
	CmdWeek       CommandType = "week"
	CmdMonth      CommandType = "month"
	CmdLeave      CommandType = "ooo"
	CmdCancel     CommandType = "cancel"
	CmdHolidays   CommandType = "holidays"
	CmdHelp       CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// Note returns the free-text remainder of a punch command, used as the
// punch note.
func (c *Command) Note() string {
	return strings.Join(c.Args, " ")
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch parts[0] {
	case "in":
		cmd.Type = CmdPunchIn
	case "out":
		cmd.Type = CmdPunchOut
	case "break":
		cmd.Type = CmdPunchBreak
	case "back":
		cmd.Type = CmdPunchBack
	case "today":
		cmd.Type = CmdToday
	case "week":
		cmd.Type = CmdWeek
	case "month":
		cmd.Type = CmdMonth
	case "ooo", "leave":
		cmd.Type = CmdLeave
	case "cancel":
		cmd.Type = CmdCancel
	case "holidays":
		cmd.Type = CmdHolidays
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Punching:*
• ` + "`/punch in [note]`" + ` - Start working
• ` + "`/punch break [note]`" + ` - Take a break
• ` + "`/punch back [note]`" + ` - Back from break
• ` + "`/punch out [note]`" + ` - Finish for the day

*Summaries:*
• ` + "`/punch today`" + ` - Today's worked and break time
• ` + "`/punch week`" + ` - This week's totals
• ` + "`/punch month`" + ` - This month's totals

*Leave:*
• ` + "`/punch ooo`" + ` - Request leave for today
• ` + "`/punch ooo YYYY-MM-DD`" + ` - Request leave for a date
• ` + "`/punch ooo YYYY-MM-DD to YYYY-MM-DD [reason]`" + ` - Request a leave range
• ` + "`/punch cancel YYYY-MM-DD`" + ` - Cancel a future leave
• ` + "`/punch holidays`" + ` - List your leave records`
}
