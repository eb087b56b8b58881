package broker

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	brokerRepository "mediashelf/internal/domain/repository/broker"
)

const TestStreamName = "mediashelf.events.test"

// setupRedis starts a disposable redis container and returns its URI.
func setupRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:latest",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminating container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	return fmt.Sprintf("redis://%s", net.JoinHostPort(host, port.Port()))
}

func TestPublish(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{
		URI:        setupRedis(t),
		StreamName: TestStreamName,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("closing client: %v", err)
		}
	})

	publisher := NewPublisher(client, PublisherConfig{Timeout: 2000})
	ctx := context.Background()

	events := []brokerRepository.Event{
		{Kind: "music", Action: "added", ID: "abc123"},
		{Kind: "music", Action: "deleted", ID: "abc123"},
	}
	for _, event := range events {
		require.NoError(t, publisher.Publish(ctx, event))
	}

	entries, err := client.redis.XRange(ctx, TestStreamName, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "music", entries[0].Values["kind"])
	assert.Equal(t, "added", entries[0].Values["action"])
	assert.Equal(t, "abc123", entries[0].Values["id"])
	assert.Equal(t, "deleted", entries[1].Values["action"])
}

func TestNewClientBadURI(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Config{URI: "not-a-redis-uri"})
	require.Error(t, err)
}
