package mqtt

import (
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_TimeoutStopsRetryLoop(t *testing.T) {
	// GIVEN a retrying client pointed at a port nothing listens on
	opts := newClientOptions("tcp://127.0.0.1:1").SetConnectRetryInterval(50 * time.Millisecond)
	client := paho.NewClient(opts)

	// WHEN the initial connection does not complete in time
	err := connect(client, 200*time.Millisecond)

	// THEN the error is reported and the client no longer counts as connecting
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection timeout")
	assert.False(t, client.IsConnected())
}
