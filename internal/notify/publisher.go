package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/roster"
)

// Channel 是 *amqp.Channel 中发布消息所需的部分
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type Publisher struct {
	ch      Channel
	queue   string
	timeout time.Duration
}

func NewPublisher(ch Channel, queue string, timeout time.Duration) *Publisher {
	return &Publisher{
		ch:      ch,
		queue:   queue,
		timeout: timeout,
	}
}

// Publish 把邮件消息发送到消息队列中，由 mail worker 负责真正发送
func (p *Publisher) Publish(ctx context.Context, msg domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("邮件消息序列化失败: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.ch.PublishWithContext(
		ctx,
		"",
		p.queue,
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		return fmt.Errorf("无法发布邮件消息到 %s: %w", p.queue, err)
	}
	return nil
}

// DutyReminders 为每个收件人生成一条 now 时刻的值班提醒
func DutyReminders(now time.Time, recipients []string) ([]domain.MailMessage, error) {
	data, err := json.Marshal(domain.DutyReminderMailData{
		GeneratedAt: now.Format("2006-01-02 15:04"),
		Duty:        roster.CurrentDuty(now),
	})
	if err != nil {
		return nil, fmt.Errorf("值班提醒序列化失败: %w", err)
	}

	msgs := make([]domain.MailMessage, 0, len(recipients))
	for _, to := range recipients {
		to = strings.TrimSpace(to)
		if to == "" {
			continue
		}
		msgs = append(msgs, domain.MailMessage{
			Type: domain.MailTypeDutyReminder,
			To:   to,
			Data: data,
		})
	}
	return msgs, nil
}
