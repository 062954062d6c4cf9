package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/orgplant/internal/domain"
)

// SQLitePlantingRepo implements PlantingRepo using a SQLite database.
type SQLitePlantingRepo struct {
	db *sql.DB
}

// NewSQLitePlantingRepo creates a new SQLitePlantingRepo.
func NewSQLitePlantingRepo(db *sql.DB) *SQLitePlantingRepo {
	return &SQLitePlantingRepo{db: db}
}

const dateLayout = "2006-01-02"

func (r *SQLitePlantingRepo) Create(ctx context.Context, p *domain.Planting) error {
	query := `INSERT INTO plantings (id, name, category, file, due_date, subtask_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Category,
		p.File,
		p.DueDate.Format(dateLayout),
		p.SubtaskCount,
		p.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting planting: %w", err)
	}
	return nil
}

func (r *SQLitePlantingRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Planting, error) {
	query := `SELECT id, name, category, file, due_date, subtask_count, created_at
		FROM plantings ORDER BY created_at DESC, id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing plantings: %w", err)
	}
	defer rows.Close()

	var plantings []*domain.Planting
	for rows.Next() {
		p, err := r.scanPlanting(rows)
		if err != nil {
			return nil, err
		}
		plantings = append(plantings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plantings: %w", err)
	}
	return plantings, nil
}

func (r *SQLitePlantingRepo) scanPlanting(rows *sql.Rows) (*domain.Planting, error) {
	var p domain.Planting
	var dueDate, createdAt string
	if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.File, &dueDate, &p.SubtaskCount, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning planting: %w", err)
	}

	due, err := time.Parse(dateLayout, dueDate)
	if err != nil {
		return nil, fmt.Errorf("parsing planting due date: %w", err)
	}
	p.DueDate = due

	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing planting created_at: %w", err)
	}
	p.CreatedAt = created

	return &p, nil
}
