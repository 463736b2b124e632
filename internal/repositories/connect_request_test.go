package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/skillswap-in/skillswap-server/internal/models"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupConnectPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS connect_requests (
		request_id UUID PRIMARY KEY,
		from_email VARCHAR(100) NOT NULL,
		to_email VARCHAR(100) NOT NULL,
		message TEXT NOT NULL DEFAULT '',
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestConnectRequestRepository_SaveAndList(t *testing.T) {
	db, teardown := setupConnectPostgresContainer(t)
	defer teardown()

	writeRepo := NewConnectRequestWriteRepository(db)
	readRepo := NewConnectRequestReadRepository(db)
	ctx := context.Background()

	created, err := writeRepo.Save(ctx, "ravi@example.com", "asha@example.com", "Trade guitar for French?")
	assert.NoError(t, err)
	assert.NotNil(t, created)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.NotEqual(t, uuid.Nil, created.RequestID)

	t.Run("recipient sees the request", func(t *testing.T) {
		requests, err := readRepo.ListByRecipient(ctx, "asha@example.com")
		assert.NoError(t, err)
		assert.Len(t, requests, 1)
		assert.Equal(t, "ravi@example.com", requests[0].From)
	})

	t.Run("sender inbox is empty", func(t *testing.T) {
		requests, err := readRepo.ListByRecipient(ctx, "ravi@example.com")
		assert.NoError(t, err)
		assert.Empty(t, requests)
		assert.NotNil(t, requests)
	})

	t.Run("duplicate pair allowed", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, "ravi@example.com", "asha@example.com", "Still interested?")
		assert.NoError(t, err)

		requests, err := readRepo.ListByRecipient(ctx, "asha@example.com")
		assert.NoError(t, err)
		assert.Len(t, requests, 2)
	})
}

func TestConnectRequestWriteRepository_UpdateStatus(t *testing.T) {
	db, teardown := setupConnectPostgresContainer(t)
	defer teardown()

	writeRepo := NewConnectRequestWriteRepository(db)
	readRepo := NewConnectRequestReadRepository(db)
	ctx := context.Background()

	created, err := writeRepo.Save(ctx, "ravi@example.com", "asha@example.com", "hi")
	assert.NoError(t, err)

	rows, err := writeRepo.UpdateStatus(ctx, created.RequestID, models.StatusAccepted)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	// A later response overwrites the earlier one.
	rows, err = writeRepo.UpdateStatus(ctx, created.RequestID, models.StatusRejected)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	requests, err := readRepo.ListByRecipient(ctx, "asha@example.com")
	assert.NoError(t, err)
	assert.Len(t, requests, 1)
	assert.Equal(t, models.StatusRejected, requests[0].Status)

	t.Run("unknown id touches zero rows", func(t *testing.T) {
		rows, err := writeRepo.UpdateStatus(ctx, uuid.New(), models.StatusAccepted)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})
}
