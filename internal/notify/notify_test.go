package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime"
	"os"
	"path/filepath"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/domain"
)

type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	err       error
}

func (c *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("publish without deadline")
	}
	if c.err != nil {
		return c.err
	}
	c.keys = append(c.keys, key)
	c.published = append(c.published, msg)
	return nil
}

var reminderNow = time.Date(2026, 1, 5, 3, 0, 0, 0, time.UTC)

func TestDutyReminders(t *testing.T) {
	msgs, err := DutyReminders(reminderNow, []string{"a@example.com", " ", " b@example.com "})
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, "a@example.com", msgs[0].To)
	assert.Equal(t, "b@example.com", msgs[1].To)
	assert.Equal(t, domain.MailTypeDutyReminder, msgs[0].Type)

	var data domain.DutyReminderMailData
	require.NoError(t, json.Unmarshal(msgs[0].Data, &data))
	assert.Equal(t, "2026-01-05 03:00", data.GeneratedAt)
	assert.Equal(t, "2026-01-04", data.Duty.International.Date)
	assert.Equal(t, "2026-01-05", data.Duty.Domestic.Date)
}

func TestPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := NewPublisher(ch, "email_queue", time.Second)

	msgs, err := DutyReminders(reminderNow, []string{"a@example.com"})
	require.NoError(t, err)
	require.NoError(t, p.Publish(context.Background(), msgs[0]))

	require.Len(t, ch.published, 1)
	assert.Equal(t, "email_queue", ch.keys[0])
	assert.Equal(t, "application/json", ch.published[0].ContentType)

	var decoded domain.MailMessage
	require.NoError(t, json.Unmarshal(ch.published[0].Body, &decoded))
	assert.Equal(t, msgs[0].To, decoded.To)
	assert.JSONEq(t, string(msgs[0].Data), string(decoded.Data))
}

func TestPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := NewPublisher(ch, "email_queue", time.Second)

	err := p.Publish(context.Background(), domain.MailMessage{Type: domain.MailTypeDutyReminder, To: "a@example.com", Data: json.RawMessage(`{}`)})
	assert.ErrorContains(t, err, "channel closed")
}

func writeTemplate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	body := "<p>{{.Duty.International.Date}} Morning {{.Duty.International.Morning}}</p>\n<p>{{.Duty.Domestic.Date}} Morning {{.Duty.Domestic.Morning}}</p>\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, dutyReminderTemplate), []byte(body), 0o644))
	return dir
}

func TestComposeMail_DutyReminder(t *testing.T) {
	dir := writeTemplate(t)
	msgs, err := DutyReminders(reminderNow, []string{"a@example.com"})
	require.NoError(t, err)

	msg, err := ComposeMail("roster@example.com", dir, msgs[0])
	require.NoError(t, err)

	recipients, err := msg.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"a@example.com"}, recipients)
	subject := msg.GetGenHeader(mail.HeaderSubject)
	require.Len(t, subject, 1)
	decoded, err := new(mime.WordDecoder).DecodeHeader(subject[0])
	require.NoError(t, err)
	assert.Equal(t, "值班提醒 - 2026-01-04", decoded)

	var buf bytes.Buffer
	_, err = msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "2026-01-04 Morning D")
	assert.Contains(t, buf.String(), "2026-01-05 Morning B")
}

func TestComposeMail_UnsupportedType(t *testing.T) {
	_, err := ComposeMail("roster@example.com", t.TempDir(), domain.MailMessage{Type: "create_user", To: "a@example.com"})
	assert.ErrorIs(t, err, ErrUnsupportedMailType)
}

func TestComposeMail_MissingTemplate(t *testing.T) {
	msgs, err := DutyReminders(reminderNow, []string{"a@example.com"})
	require.NoError(t, err)

	_, err = ComposeMail("roster@example.com", t.TempDir(), msgs[0])
	assert.Error(t, err)
}
