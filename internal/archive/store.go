// internal/archive/store.go
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"brand-intake/internal/assessment"

	"github.com/lib/pq"
)

const schema = `CREATE TABLE IF NOT EXISTS brand_assessments (
	id                UUID PRIMARY KEY,
	brand_name        TEXT NOT NULL,
	industry          TEXT NOT NULL,
	brand_description TEXT NOT NULL,
	target_audience   TEXT NOT NULL,
	website_link      TEXT NOT NULL DEFAULT '',
	overall_score     INTEGER NOT NULL,
	awareness_score   INTEGER NOT NULL,
	consistency_score INTEGER NOT NULL,
	engagement_score  INTEGER NOT NULL,
	score_source      TEXT NOT NULL,
	kit_source        TEXT,
	brand_kit         JSONB,
	created_at        TIMESTAMPTZ NOT NULL
)`

const insertAssessment = `INSERT INTO brand_assessments (
	id, brand_name, industry, brand_description, target_audience, website_link,
	overall_score, awareness_score, consistency_score, engagement_score,
	score_source, kit_source, brand_kit, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

// uniqueViolation is the postgres SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

// Store writes completed assessments to Postgres.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the brand_assessments table if it is missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create brand_assessments: %w", err)
	}
	return nil
}

// Save implements assessment.Archiver. Saving the same id twice is a no-op.
func (s *Store) Save(ctx context.Context, a assessment.Assessment) error {
	var kitSource sql.NullString
	var kitJSON interface{}
	if a.Kit != nil {
		kitSource = sql.NullString{String: string(a.Kit.Origin), Valid: true}
		data, err := json.Marshal(a.Kit.Kit)
		if err != nil {
			return fmt.Errorf("encode brand kit: %w", err)
		}
		kitJSON = data
	}

	_, err := s.db.ExecContext(ctx, insertAssessment,
		a.ID,
		a.Form.BrandName,
		a.Form.Industry,
		a.Form.BrandDescription,
		a.Form.TargetAudience,
		a.Form.WebsiteLink,
		a.Scores.Overall,
		a.Scores.Awareness,
		a.Scores.Consistency,
		a.Scores.Engagement,
		string(a.Source),
		kitSource,
		kitJSON,
		a.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil
		}
		return fmt.Errorf("insert assessment %s: %w", a.ID, err)
	}
	return nil
}
