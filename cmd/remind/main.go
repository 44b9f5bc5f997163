package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/config"
	"github.com/sysu-ecnc-dev/duty-roster/backend/internal/notify"
)

// remind 由 cron 定时调用，把当前的值班情况通过邮件队列发给所有订阅者
func main() {
	/**********************************************
	 * 创建 logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * 加载配置
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法加载配置文件", "error", err)
		os.Exit(1)
	}
	if len(cfg.Reminder.Recipients) == 0 {
		logger.Info("没有配置值班提醒收件人，跳过")
		return
	}

	/**********************************************
	 * 连接 rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("无法连接到 rabbitmq", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("无法建立通道", "error", err)
		os.Exit(1)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(cfg.RabbitMQ.Queue, true, false, false, false, nil); err != nil {
		logger.Error("无法声明队列", "error", err)
		os.Exit(1)
	}

	/**********************************************
	 * 生成并发布值班提醒
	 **********************************************/
	now := time.Now()
	msgs, err := notify.DutyReminders(now, cfg.Reminder.Recipients)
	if err != nil {
		logger.Error("无法生成值班提醒", "error", err)
		os.Exit(1)
	}

	publisher := notify.NewPublisher(ch, cfg.RabbitMQ.Queue, time.Duration(cfg.RabbitMQ.PublishTimeout)*time.Second)
	failed := 0
	for _, msg := range msgs {
		if err := publisher.Publish(context.Background(), msg); err != nil {
			logger.Error("无法发布值班提醒", "to", msg.To, "error", err)
			failed++
			continue
		}
		logger.Info("已发布值班提醒", "to", msg.To)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
