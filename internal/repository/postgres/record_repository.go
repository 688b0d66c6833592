package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"

	"go-cv-review-backend/internal/domain"
)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock satisfies
// it, which keeps the repository testable without a live database.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type recordRepository struct {
	db    DB
	table string
}

const recordColumns = `
	id, COALESCE(full_name, ''), COALESCE(file_name, ''), COALESCE(file_ref, ''), lot,
	COALESCE(degree_level, ''), COALESCE(field_of_study, ''), experience_years,
	COALESCE(last_job_title, ''), COALESCE(last_company, ''),
	speaks_english, COALESCE(english_level, ''), COALESCE(cv_language, ''),
	COALESCE(skills, '{}'),
	COALESCE(profile_type, ''), score_profil, COALESCE(notes, ''), COALESCE(parse_status, ''),
	created_at`

// NewRecordRepository reads candidate records from the given table or view.
// The table name comes from configuration, so it is quoted defensively.
func NewRecordRepository(pool DB, table string) domain.RecordRepository {
	return &recordRepository{
		db:    pool,
		table: pgx.Identifier{table}.Sanitize(),
	}
}

func (r *recordRepository) ListPage(ctx context.Context, lot string, offset, limit int) ([]domain.CandidateRecord, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM %s WHERE lot = $1 ORDER BY id LIMIT $2 OFFSET $3`,
		recordColumns, r.table,
	)

	rows, err := r.db.Query(ctx, query, lot, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list records for lot %s: %w", lot, err)
	}
	defer rows.Close()

	records := make([]domain.CandidateRecord, 0, limit)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records for lot %s: %w", lot, err)
	}
	return records, nil
}

func (r *recordRepository) GetByID(ctx context.Context, id int64) (*domain.CandidateRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, recordColumns, r.table)

	rec, err := scanRecord(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record %d: %w", id, err)
	}
	return &rec, nil
}

func scanRecord(row pgx.Row) (domain.CandidateRecord, error) {
	var rec domain.CandidateRecord
	var skills []string

	err := row.Scan(
		&rec.ID, &rec.FullName, &rec.FileName, &rec.FileRef, &rec.Lot,
		&rec.DegreeLevel, &rec.FieldOfStudy, &rec.ExperienceYears,
		&rec.LastJobTitle, &rec.LastCompany,
		&rec.SpeaksEnglish, &rec.EnglishLevel, &rec.CVLanguage,
		pq.Array(&skills),
		&rec.ProfileType, &rec.Score, &rec.Notes, &rec.ParseStatus,
		&rec.CreatedAt,
	)
	if err != nil {
		return domain.CandidateRecord{}, err
	}
	rec.Skills = skills
	return rec, nil
}
