package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	mqtt.Token
	err error
}

func (t fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t fakeToken) Error() error                   { return t.err }

type published struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

type fakeClient struct {
	mqtt.Client
	err  error
	sent []published
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.sent = append(c.sent, published{topic: topic, qos: qos, retained: retained, payload: payload.([]byte)})
	return fakeToken{err: c.err}
}

func TestMQTTPublisherPublish(t *testing.T) {
	client := &fakeClient{}
	p := newMQTTPublisher(client)

	at := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	err := p.Publish(context.Background(), Event{Resource: "pages", ID: "p-1", Action: ActionUpdated, At: at})
	require.NoError(t, err)

	require.Len(t, client.sent, 1)
	msg := client.sent[0]
	assert.Equal(t, "cms/pages/updated", msg.topic)
	assert.Equal(t, byte(1), msg.qos)
	assert.False(t, msg.retained)

	var decoded Event
	require.NoError(t, json.Unmarshal(msg.payload, &decoded))
	assert.Equal(t, "p-1", decoded.ID)
	assert.Equal(t, ActionUpdated, decoded.Action)
	assert.True(t, at.Equal(decoded.At))
}

func TestMQTTPublisherError(t *testing.T) {
	p := newMQTTPublisher(&fakeClient{err: errors.New("not connected")})

	err := p.Publish(context.Background(), Event{Resource: "settings", Action: ActionDeleted})
	assert.ErrorContains(t, err, "cms/settings/deleted")
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.Publish(context.Background(), Event{}))
}
