package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/grupo1/reclamos-backend/internal/dto"
	"github.com/grupo1/reclamos-backend/internal/errs"
	"github.com/grupo1/reclamos-backend/internal/models"
	"github.com/grupo1/reclamos-backend/pkg/helpers"
	"github.com/grupo1/reclamos-backend/pkg/logger"
)

// pgQuerier is the subset of *pgxpool.Pool the store uses.
type pgQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type complaintPGStore struct {
	db pgQuerier
}

func NewComplaintPGStore(db pgQuerier) *complaintPGStore {
	return &complaintPGStore{db: db}
}

const recordsSQL = `
	SELECT estado, fecha_reclamo, created_at
	FROM reclamos
	ORDER BY created_at DESC`

const complaintColumnsSQL = `
	SELECT
		r.id::text,
		COALESCE(c.nombre_completo, ''),
		COALESCE(c.email, ''),
		COALESCE(r.descripcion, ''),
		COALESCE(cat.nombre, ''),
		r.estado,
		COALESCE(e.nombre_completo, ''),
		r.fecha_reclamo,
		r.created_at
	FROM reclamos r
	LEFT JOIN clientes c ON r.cliente_id = c.id
	LEFT JOIN categorias cat ON r.categoria_id = cat.id
	LEFT JOIN empleados e ON r.asignado_a = e.id`

const listSQL = complaintColumnsSQL + `
	WHERE ($1::text IS NULL OR r.estado = $1)
	ORDER BY r.created_at DESC`

const getSQL = complaintColumnsSQL + `
	WHERE r.id::text = $1`

func (s *complaintPGStore) StreamRecords(ctx context.Context, handle func(*models.ComplaintRecord) error) error {
	rows, err := s.db.Query(ctx, recordsSQL)
	if err != nil {
		return errs.NewDatabaseError("read", "failed to query complaint records", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r models.ComplaintRecord
		if err := rows.Scan(&r.Status, &r.RecordedAt, &r.CreatedAt); err != nil {
			return errs.NewDatabaseError("read", "failed to scan complaint record", err)
		}
		if err := handle(&r); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return errs.NewDatabaseError("read", "failed to read complaint records", err)
	}
	return nil
}

func (s *complaintPGStore) List(ctx context.Context, q dto.ComplaintQuery, handle func(*models.Complaint) error) error {
	log := logger.FromContext(ctx)
	log.Debug("listing complaints", "estado", helpers.ValueOr(q.Status, "*"))

	rows, err := s.db.Query(ctx, listSQL, q.Status)
	if err != nil {
		return errs.NewDatabaseError("read", "failed to query complaints", err)
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return errs.NewDatabaseError("read", "failed to scan complaint", err)
		}
		if err := handle(c); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return errs.NewDatabaseError("read", "failed to read complaints", err)
	}
	return nil
}

func (s *complaintPGStore) Get(ctx context.Context, id string) (*models.Complaint, error) {
	c, err := scanComplaint(s.db.QueryRow(ctx, getSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("complaint not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get complaint", err)
	}
	return c, nil
}

func (s *complaintPGStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM reclamos").Scan(&n); err != nil {
		return 0, errs.NewDatabaseError("read", "failed to count complaints", err)
	}
	return n, nil
}

// Ping returns the database clock.
func (s *complaintPGStore) Ping(ctx context.Context) (time.Time, error) {
	var now time.Time
	if err := s.db.QueryRow(ctx, "SELECT NOW()").Scan(&now); err != nil {
		return time.Time{}, errs.NewDatabaseError("read", "connection check failed", err)
	}
	return now, nil
}

// Seed inserts data in a single transaction; nothing is written when any insert fails.
func (s *complaintPGStore) Seed(ctx context.Context, data dto.SampleData) (dto.SeedResult, error) {
	var result dto.SeedResult
	if err := validateSample(data); err != nil {
		return result, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return result, errs.NewDatabaseError("create", "failed to begin seed transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	categoryIDs := make([]string, len(data.Categories))
	for i, c := range data.Categories {
		err := tx.QueryRow(ctx,
			"INSERT INTO categorias (nombre) VALUES ($1) RETURNING id::text",
			c.Name).Scan(&categoryIDs[i])
		if err != nil {
			return result, seedError("categorias", err)
		}
	}

	customerIDs := make([]string, len(data.Customers))
	for i, c := range data.Customers {
		err := tx.QueryRow(ctx,
			"INSERT INTO clientes (nombre_completo, email, direccion) VALUES ($1, $2, $3) RETURNING id::text",
			c.FullName, c.Email, nullable(c.Address)).Scan(&customerIDs[i])
		if err != nil {
			return result, seedError("clientes", err)
		}
	}

	employeeIDs := make([]string, len(data.Employees))
	for i, e := range data.Employees {
		err := tx.QueryRow(ctx,
			"INSERT INTO empleados (nombre_completo, email, categoria_id) VALUES ($1, $2, $3) RETURNING id::text",
			e.FullName, e.Email, pick(categoryIDs, e.Category)).Scan(&employeeIDs[i])
		if err != nil {
			return result, seedError("empleados", err)
		}
	}

	for _, c := range data.Complaints {
		_, err := tx.Exec(ctx,
			`INSERT INTO reclamos (cliente_id, categoria_id, asignado_a, descripcion, fecha_reclamo, estado)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			customerIDs[c.Customer], categoryIDs[c.Category], pick(employeeIDs, c.Assignee),
			c.Description, c.RecordedAt, c.Status)
		if err != nil {
			return result, seedError("reclamos", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return result, errs.NewDatabaseError("create", "failed to commit sample data", err)
	}

	return dto.SeedResult{
		Categories: len(categoryIDs),
		Customers:  len(customerIDs),
		Employees:  len(employeeIDs),
		Complaints: len(data.Complaints),
	}, nil
}

func scanComplaint(row pgx.Row) (*models.Complaint, error) {
	var c models.Complaint
	err := row.Scan(
		&c.ID,
		&c.CustomerName,
		&c.CustomerEmail,
		&c.Description,
		&c.Category,
		&c.Status,
		&c.AssignedTo,
		&c.RecordedAt,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func seedError(table string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return errs.NewDatabaseError("create", "failed to insert into "+table+": "+pgErr.Message, err)
	}
	return errs.NewDatabaseError("create", "failed to insert into "+table, err)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func pick(ids []string, i *int) *string {
	if i == nil {
		return nil
	}
	return &ids[*i]
}
