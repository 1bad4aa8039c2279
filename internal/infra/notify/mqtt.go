package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/cagegit/hotel-front-desk-agent/internal/pkg/config"
	"github.com/cagegit/hotel-front-desk-agent/internal/pkg/errs"
)

const (
	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second
)

// MQTTNotifier publishes staff alerts to a broker topic per recipient, so
// duty-manager pagers and supervisor dashboards can each subscribe to their
// own feed.
type MQTTNotifier struct {
	client      mqtt.Client
	topicPrefix string
}

type staffAlert struct {
	Recipient string    `json:"recipient"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sentAt"`
}

func NewMQTTNotifier(cfg config.NotifyConfig) (*MQTTNotifier, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetConnectTimeout(connectTimeout).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, errs.New("timed out connecting to mqtt broker")
	}
	if err := token.Error(); err != nil {
		return nil, errs.Wrap(err, "failed to connect to mqtt broker")
	}

	return &MQTTNotifier{client: client, topicPrefix: cfg.TopicPrefix}, nil
}

func (n *MQTTNotifier) Notify(ctx context.Context, recipient, message string) error {
	payload, err := json.Marshal(staffAlert{
		Recipient: recipient,
		Message:   message,
		SentAt:    time.Now(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode staff alert")
	}

	topic := fmt.Sprintf("%s/%s", n.topicPrefix, recipient)
	token := n.client.Publish(topic, 1, false, payload)
	if !token.WaitTimeout(publishTimeout) {
		return errs.New("timed out publishing staff alert")
	}
	if err := token.Error(); err != nil {
		return errs.Wrap(err, "failed to publish staff alert")
	}
	return nil
}

func (n *MQTTNotifier) Close() {
	n.client.Disconnect(250)
}
