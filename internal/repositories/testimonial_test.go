package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestimonialPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
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
	CREATE TABLE IF NOT EXISTS testimonials (
		testimonial_id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL DEFAULT '',
		message TEXT NOT NULL DEFAULT '',
		date TIMESTAMP NOT NULL DEFAULT NOW()
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

func TestTestimonialRepository_SaveAndGetAll(t *testing.T) {
	db, teardown := setupTestimonialPostgresContainer(t)
	defer teardown()

	writeRepo := NewTestimonialWriteRepository(db)
	readRepo := NewTestimonialReadRepository(db)
	ctx := context.Background()

	assert.NoError(t, writeRepo.Save(ctx, "Ravi", "Found a great guitar teacher here!"))
	time.Sleep(10 * time.Millisecond)
	assert.NoError(t, writeRepo.Save(ctx, "Meera", "Swapped cooking lessons for yoga."))

	testimonials, err := readRepo.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, testimonials, 2)

	// Newest first.
	assert.Equal(t, "Meera", testimonials[0].Name)
	assert.Equal(t, "Ravi", testimonials[1].Name)
	assert.False(t, testimonials[0].Date.IsZero())
}

func TestTestimonialReadRepository_GetAll_Empty(t *testing.T) {
	db, teardown := setupTestimonialPostgresContainer(t)
	defer teardown()

	readRepo := NewTestimonialReadRepository(db)

	testimonials, err := readRepo.GetAll(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, testimonials)
	assert.Empty(t, testimonials)
}
