package domain

import "encoding/json"

const MailTypeDutyReminder = "duty_reminder"

type MailMessage struct {
	Type string          `json:"type"`
	To   string          `json:"to"`
	Data json.RawMessage `json:"data"`
}

type DutyReminderMailData struct {
	GeneratedAt string      `json:"generatedAt"`
	Duty        DutySummary `json:"duty"`
}
