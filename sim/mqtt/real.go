package mqtt

import (
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/pacing-sim/pacing-sim/sim"
)

const connectTimeout = 10 * time.Second

// RealPublisher publishes to an actual MQTT broker.
type RealPublisher struct {
	client paho.Client
	topic  string
}

// NewRealPublisher creates a publisher connected to the given broker.
// An empty topic selects DefaultTopic.
func NewRealPublisher(broker, topic string) (*RealPublisher, error) {
	if topic == "" {
		topic = DefaultTopic
	}
	client := paho.NewClient(newClientOptions(broker))
	if err := connect(client, connectTimeout); err != nil {
		return nil, err
	}

	return &RealPublisher{
		client: client,
		topic:  topic,
	}, nil
}

func newClientOptions(broker string) *paho.ClientOptions {
	return paho.NewClientOptions().
		AddBroker(broker).
		SetClientID("pacing-sim").
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)
}

// connect waits for the initial connection. On failure the client is
// disconnected so its retry loop stops.
func connect(client paho.Client, timeout time.Duration) error {
	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		client.Disconnect(0)
		return fmt.Errorf("connection timeout")
	}
	if err := token.Error(); err != nil {
		client.Disconnect(0)
		return fmt.Errorf("connect to broker: %w", err)
	}
	return nil
}

// Publish sends a pacing event to the MQTT broker.
func (p *RealPublisher) Publish(event sim.Event) error {
	payload, err := FormatPayload(event)
	if err != nil {
		return fmt.Errorf("format payload: %w", err)
	}

	// QoS 0 (at-most-once), not retained
	token := p.client.Publish(p.topic, 0, false, payload)
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("publish timeout")
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	return nil
}

// Close disconnects from the broker.
func (p *RealPublisher) Close() error {
	p.client.Disconnect(1000) // 1 second timeout
	return nil
}
