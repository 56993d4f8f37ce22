package config

import (
	"os"
	"strconv"
)

type Config struct {
	SlackBotToken      string
	SlackAppToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string

	// Attendance policy
	DefaultTimezone      string
	DefaultStandardHours int
	StrictSequence       bool
	LeaveAutoApprove     bool

	// Background jobs
	AutoPunchTimeoutMinutes int
	SweepIntervalMinutes    int
	DailyReminderTime       string // HH:MM, user-local
	ForgotPunchReminderTime string // HH:MM, user-local
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackAppToken:      getEnv("SLACK_APP_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./punchbot.db"),
		Port:               getEnv("PORT", "3000"),

		DefaultTimezone:      getEnv("DEFAULT_TIMEZONE", "UTC"),
		DefaultStandardHours: getEnvInt("DEFAULT_WORK_HOURS", 8),
		StrictSequence:       getEnvBool("PUNCH_STRICT_SEQUENCE", false),
		LeaveAutoApprove:     getEnvBool("LEAVE_AUTO_APPROVE", true),

		AutoPunchTimeoutMinutes: getEnvInt("AUTO_PUNCH_TIMEOUT_MINUTES", 30),
		SweepIntervalMinutes:    getEnvInt("SWEEP_INTERVAL_MINUTES", 15),
		DailyReminderTime:       getEnv("DAILY_REMINDER_TIME", "09:00"),
		ForgotPunchReminderTime: getEnv("FORGOT_PUNCH_REMINDER_TIME", "18:30"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
