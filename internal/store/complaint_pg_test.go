package store

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grupo1/reclamos-backend/internal/dto"
	"github.com/grupo1/reclamos-backend/internal/models"
)

const testSchemaSQL = `
	CREATE TABLE categorias (id BIGSERIAL PRIMARY KEY, nombre TEXT NOT NULL);
	CREATE TABLE clientes (
		id BIGSERIAL PRIMARY KEY,
		nombre_completo TEXT NOT NULL,
		email TEXT NOT NULL,
		direccion TEXT
	);
	CREATE TABLE empleados (
		id BIGSERIAL PRIMARY KEY,
		nombre_completo TEXT NOT NULL,
		email TEXT NOT NULL,
		categoria_id BIGINT REFERENCES categorias(id)
	);
	CREATE TABLE reclamos (
		id BIGSERIAL PRIMARY KEY,
		cliente_id BIGINT REFERENCES clientes(id),
		categoria_id BIGINT REFERENCES categorias(id),
		asignado_a BIGINT REFERENCES empleados(id),
		descripcion TEXT,
		fecha_reclamo TIMESTAMPTZ,
		estado TEXT NOT NULL DEFAULT 'pendiente',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`

// newTestPool connects to TEST_DATABASE_URL with a throwaway schema on the search path.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	schema := "reclamos_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	admin, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect error: %v", err)
	}
	if _, err := admin.Exec(ctx, "CREATE SCHEMA "+schema); err != nil {
		admin.Close()
		t.Fatalf("create schema error: %v", err)
	}
	t.Cleanup(func() {
		_, _ = admin.Exec(context.Background(), "DROP SCHEMA "+schema+" CASCADE")
		admin.Close()
	})

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		t.Fatalf("parse config error: %v", err)
	}
	cfg.ConnConfig.RuntimeParams["search_path"] = schema
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		t.Fatalf("connect error: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(ctx, testSchemaSQL); err != nil {
		t.Fatalf("create tables error: %v", err)
	}
	return pool
}

func TestComplaintPGStoreWithDatabase(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	store := NewComplaintPGStore(pool)

	if _, err := store.Ping(ctx); err != nil {
		t.Fatalf("ping error: %v", err)
	}

	res, err := store.Seed(ctx, SampleData())
	if err != nil {
		t.Fatalf("seed error: %v", err)
	}
	if res.Complaints != 6 || res.Employees != 3 {
		t.Fatalf("unexpected seed result: %+v", res)
	}

	n, err := store.Count(ctx)
	if err != nil || n != 6 {
		t.Fatalf("count mismatch: %d, %v", n, err)
	}

	var records []models.ComplaintRecord
	err = store.StreamRecords(ctx, func(r *models.ComplaintRecord) error {
		records = append(records, *r)
		return nil
	})
	if err != nil {
		t.Fatalf("stream error: %v", err)
	}
	if len(records) != 6 || records[0].RecordedAt == nil || records[0].CreatedAt == nil {
		t.Fatalf("unexpected records: %+v", records)
	}

	pending := models.StatusPending
	var listed []models.Complaint
	err = store.List(ctx, dto.ComplaintQuery{Status: &pending}, func(c *models.Complaint) error {
		listed = append(listed, *c)
		return nil
	})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 pending complaints, got %d", len(listed))
	}

	var unassigned *models.Complaint
	for i := range listed {
		if listed[i].CustomerName == "Ana Martínez" {
			unassigned = &listed[i]
		}
	}
	if unassigned == nil || unassigned.AssignedTo != "" || unassigned.Category != "Problema de Calidad" {
		t.Fatalf("unexpected joined row: %+v", unassigned)
	}
	want := time.Date(2025, 11, 9, 16, 45, 0, 0, time.UTC)
	if !unassigned.RecordedAt.Equal(want) {
		t.Errorf("recordedAt mismatch: got %s", unassigned.RecordedAt)
	}

	got, err := store.Get(ctx, unassigned.ID)
	if err != nil || got.CustomerEmail != "ana.martinez@email.com" {
		t.Fatalf("get mismatch: %+v, %v", got, err)
	}
	if _, err := store.Get(ctx, "999999"); err == nil {
		t.Fatal("expected not found error")
	}
}
