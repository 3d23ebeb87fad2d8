//go:build integration

package main_test

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	kafkamodule "github.com/testcontainers/testcontainers-go/modules/kafka"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shareit/service-booking/internal/application"
	"github.com/shareit/service-booking/internal/events"
	"github.com/shareit/service-booking/internal/platform/database"
	"github.com/shareit/service-booking/internal/platform/kafka"
	"github.com/shareit/service-booking/internal/platform/metrics"
	"github.com/shareit/service-booking/internal/repository"
)

const bookingTopic = "booking.events"

// testInfra holds shared test infrastructure.
type testInfra struct {
	DB           *gorm.DB
	KafkaBrokers []string
	Cleanup      func()
}

// testClock is a settable time source shared by the services under test.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Now().UTC()}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// shareitStack holds wired-up application services.
type shareitStack struct {
	Users           *application.UserService
	Items           *application.ItemService
	Bookings        *application.BookingService
	Comments        *application.CommentService
	Clock           *testClock
	CleanupProducer func()
}

// setupContainers starts PostgreSQL and Kafka testcontainers, applies the SQL
// migrations and returns a connected GORM DB.
func setupContainers(t *testing.T) *testInfra {
	t.Helper()
	ctx := context.Background()
	logger := zap.NewNop()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test_shareit",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: pgReq,
		Started:          true,
	})
	require.NoError(t, err, "failed to start PostgreSQL container")

	pgHost, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dbConfig := database.PostgresConfig{
		Host:     pgHost,
		Port:     pgPort.Port(),
		User:     "test",
		Password: "test",
		DBName:   "test_shareit",
		SSLMode:  "disable",
	}

	// Poll until GORM can actually connect and ping.
	var db *gorm.DB
	require.Eventually(t, func() bool {
		var err error
		db, err = database.Connect(dbConfig, logger)
		return err == nil
	}, 30*time.Second, 1*time.Second, "PostgreSQL not ready for connections")

	require.NoError(t, database.RunMigrations(dbConfig.DatabaseURL(), "migrations", logger))

	// Start Kafka container using confluent-local (supports KRaft natively).
	kafkaContainer, err := kafkamodule.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(t, err, "failed to start Kafka container")

	kafkaBrokers, err := kafkaContainer.Brokers(ctx)
	require.NoError(t, err, "failed to get Kafka brokers")

	createTopics(t, kafkaBrokers, bookingTopic)

	cleanup := func() {
		if err := kafkaContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate Kafka container: %v", err)
		}
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate PostgreSQL container: %v", err)
		}
	}

	return &testInfra{
		DB:           db,
		KafkaBrokers: kafkaBrokers,
		Cleanup:      cleanup,
	}
}

// setupStack wires the services the way cmd/server does, with a settable clock.
func setupStack(t *testing.T, db *gorm.DB, brokers []string) *shareitStack {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	clock := newTestClock()

	userRepo := repository.NewGormUserRepository(db)
	itemRepo := repository.NewGormItemRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)
	commentRepo := repository.NewGormCommentRepository(db)

	producer := kafka.NewProducer(brokers, logger)
	publisher := events.NewBookingPublisher(producer, bookingTopic, logger)

	users := application.NewUserService(userRepo, logger)
	items := application.NewItemService(itemRepo, userRepo, bookingRepo, commentRepo, logger).
		WithClock(clock.Now)
	bookings := application.NewBookingService(bookingRepo, users, items, publisher,
		metrics.New(prometheus.NewRegistry()), logger).
		WithClock(clock.Now)
	comments := application.NewCommentService(commentRepo, userRepo, itemRepo, bookingRepo, logger).
		WithClock(clock.Now)

	return &shareitStack{
		Users:           users,
		Items:           items,
		Bookings:        bookings,
		Comments:        comments,
		Clock:           clock,
		CleanupProducer: func() { _ = producer.Close() },
	}
}

// seedUser registers a user with a unique email.
func seedUser(t *testing.T, s *shareitStack, name string) int64 {
	t.Helper()
	u, err := s.Users.CreateUser(context.Background(), application.CreateUserRequest{
		Name:  name,
		Email: fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8]),
	})
	require.NoError(t, err, "failed to seed user")
	return u.ID
}

// seedItem lists an available item for owner.
func seedItem(t *testing.T, s *shareitStack, ownerID int64, name, description string) int64 {
	t.Helper()
	available := true
	it, err := s.Items.CreateItem(context.Background(), ownerID, application.CreateItemRequest{
		Name:        name,
		Description: description,
		Available:   &available,
	})
	require.NoError(t, err, "failed to seed item")
	return it.ID
}

// seedBooking creates a WAITING booking as seen from the stack clock's current instant.
func seedBooking(t *testing.T, s *shareitStack, bookerID, itemID int64, start, end time.Time) int64 {
	t.Helper()
	bk, err := s.Bookings.CreateBooking(context.Background(), bookerID, application.CreateBookingRequest{
		ItemID: itemID,
		Start:  start,
		End:    end,
	})
	require.NoError(t, err, "failed to seed booking")
	return bk.ID
}

// bookingIDs extracts ids in result order.
func bookingIDs(bookings []application.BookingDTO) []int64 {
	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}
	return ids
}

// consumeEvent reads from a Kafka topic until it finds an event of the expected
// type for the given subject.
func consumeEvent(t *testing.T, brokers []string, topic, expectedType, subject string, timeout time.Duration) kafka.CloudEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	groupID := fmt.Sprintf("test-assert-%s", uuid.New().String()[:8])
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		Topic:       topic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafkago.FirstOffset,
	})
	defer func() { _ = reader.Close() }()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				t.Fatalf("timed out waiting for event type %q on topic %q", expectedType, topic)
			}
			continue
		}
		ce, err := kafka.ParseCloudEvent(msg.Value)
		if err != nil {
			continue
		}
		if ce.Type == expectedType && ce.Subject == subject {
			return ce
		}
	}
}

// createTopics pre-creates Kafka topics so producers don't fail with "Unknown Topic".
func createTopics(t *testing.T, brokers []string, topics ...string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", brokers[0])
	require.NoError(t, err, "failed to dial Kafka for topic creation")
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err, "failed to get Kafka controller")

	controllerConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, fmt.Sprintf("%d", controller.Port)))
	require.NoError(t, err, "failed to connect to Kafka controller")
	defer controllerConn.Close()

	topicConfigs := make([]kafkago.TopicConfig, len(topics))
	for i, topic := range topics {
		topicConfigs[i] = kafkago.TopicConfig{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		}
	}
	err = controllerConn.CreateTopics(topicConfigs...)
	require.NoError(t, err, "failed to create Kafka topics")

	// Give Kafka a moment to propagate topic metadata.
	time.Sleep(1 * time.Second)
}
