package events

import (
	"context"
	"encoding/json"
	"fmt"
)

// mqttPublisher is satisfied by *mqtt.Client from internal/common/mqtt
type mqttPublisher interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
	Disconnect()
}

// MQTTPublisher publishes each event as JSON on <prefix>/<type>
type MQTTPublisher struct {
	client      mqttPublisher
	topicPrefix string
	qos         byte
}

func NewMQTTPublisher(client mqttPublisher, topicPrefix string, qos byte) *MQTTPublisher {
	return &MQTTPublisher{client: client, topicPrefix: topicPrefix, qos: qos}
}

// Topic returns the topic an event type is published on
func (p *MQTTPublisher) Topic(eventType string) string {
	if p.topicPrefix == "" {
		return eventType
	}
	return p.topicPrefix + "/" + eventType
}

func (p *MQTTPublisher) Publish(_ context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return p.client.Publish(p.Topic(e.Type), p.qos, false, payload)
}

func (p *MQTTPublisher) Close() error {
	p.client.Disconnect()
	return nil
}
