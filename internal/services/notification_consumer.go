package services

import (
	"encoding/json"
	"fmt"

	"github.com/stepwise-saude/insole-platform-backend/internal/database/repository"
	"github.com/stepwise-saude/insole-platform-backend/internal/models"

	"github.com/sirupsen/logrus"
)

// NotificationMailer is the mail dependency of the consumer.
type NotificationMailer interface {
	Send(to, subject, html string) error
}

// NotificationConsumer drains the order-events queue and emails the
// prescribing physiotherapist about each status change. Delivery failures
// are logged and the message is acked anyway; notifications are
// best-effort.
type NotificationConsumer struct {
	rabbit   *RabbitMQService
	userRepo *repository.UserRepository
	mailer   NotificationMailer
	done     chan struct{}
}

func NewNotificationConsumer(rabbit *RabbitMQService, userRepo *repository.UserRepository, mailer NotificationMailer) *NotificationConsumer {
	return &NotificationConsumer{
		rabbit:   rabbit,
		userRepo: userRepo,
		mailer:   mailer,
		done:     make(chan struct{}),
	}
}

// Start begins consuming in the background.
func (c *NotificationConsumer) Start() error {
	deliveries, err := c.rabbit.Consume()
	if err != nil {
		return fmt.Errorf("failed to start order-events consumer: %w", err)
	}

	go func() {
		for {
			select {
			case <-c.done:
				return
			case msg, ok := <-deliveries:
				if !ok {
					return
				}
				c.handle(msg.Body)
				if err := msg.Ack(false); err != nil {
					logrus.Errorf("Failed to ack order event: %v", err)
				}
			}
		}
	}()

	logrus.Info("Order notification consumer started")
	return nil
}

// Stop stops the consumer loop.
func (c *NotificationConsumer) Stop() {
	close(c.done)
	logrus.Info("Order notification consumer stopped")
}

func (c *NotificationConsumer) handle(body []byte) {
	var event models.OrderEvent
	if err := json.Unmarshal(body, &event); err != nil {
		logrus.Errorf("Discarding malformed order event: %v", err)
		return
	}

	buyer, err := c.userRepo.GetByID(event.BuyerID)
	if err != nil {
		logrus.Warnf("Order event for unknown buyer %s: %v", event.BuyerID, err)
		return
	}

	subject := fmt.Sprintf("Pedido %s: %s", event.OrderNumber, statusLabel(event.Status))
	html := fmt.Sprintf(
		"<p>Olá %s,</p><p>Seu pedido <strong>%s</strong> está com o status: <strong>%s</strong>.</p>",
		buyer.Name, event.OrderNumber, statusLabel(event.Status),
	)
	if err := c.mailer.Send(buyer.Email, subject, html); err != nil {
		logrus.Warnf("Failed to notify buyer %s about order %s: %v", buyer.ID, event.OrderNumber, err)
	}
}

func statusLabel(status string) string {
	switch status {
	case models.OrderReceived:
		return "recebido"
	case models.OrderInProduction:
		return "em produção"
	case models.OrderShipped:
		return "enviado"
	case models.OrderDelivered:
		return "entregue"
	case models.OrderCancelled:
		return "cancelado"
	}
	return status
}
