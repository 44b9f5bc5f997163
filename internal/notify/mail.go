package notify

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
	"github.com/wneessen/go-mail"
)

var ErrUnsupportedMailType = errors.New("不支持的邮件类型")

const dutyReminderTemplate = "duty_reminder_email.html"

// ComposeMail 根据消息类型渲染对应的模板，生成可以直接发送的邮件
func ComposeMail(from, templateDir string, m domain.MailMessage) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("无法设置邮件发件人: %w", err)
	}
	if err := msg.To(m.To); err != nil {
		return nil, fmt.Errorf("无法设置邮件收件人: %w", err)
	}

	switch m.Type {
	case domain.MailTypeDutyReminder:
		var data domain.DutyReminderMailData
		if err := json.Unmarshal(m.Data, &data); err != nil {
			return nil, fmt.Errorf("值班提醒反序列化失败: %w", err)
		}
		tmpl, err := template.ParseFiles(filepath.Join(templateDir, dutyReminderTemplate))
		if err != nil {
			return nil, fmt.Errorf("无法解析邮件模板: %w", err)
		}
		if err := msg.SetBodyHTMLTemplate(tmpl, data); err != nil {
			return nil, fmt.Errorf("无法设置邮件正文: %w", err)
		}
		msg.Subject(fmt.Sprintf("值班提醒 - %s", data.Duty.International.Date))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMailType, m.Type)
	}

	return msg, nil
}
