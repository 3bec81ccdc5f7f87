package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// Postgres backs both collections with pgvector tables (see scripts/schema.sql).
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, connString string) (*Postgres, error) {
	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// tuned for small pooled deployments (PgBouncer-style poolers)
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// transaction-mode poolers don't support prepared statements
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Close() {
	p.pool.Close()
}

// returns the document collection
func (p *Postgres) Documents() DocumentStore {
	return &postgresDocuments{pool: p.pool}
}

// returns the guideline collection
func (p *Postgres) Guidelines() GuidelineStore {
	return &postgresGuidelines{pool: p.pool}
}

type postgresDocuments struct {
	pool *pgxpool.Pool
}

func (s *postgresDocuments) Add(ctx context.Context, doc Document) error {
	query := `
		INSERT INTO documents (id, content, embedding, category, file_name, ingested_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.pool.Exec(ctx, query,
		doc.ID,
		doc.Text,
		pgvector.NewVector(doc.Embedding),
		doc.Category,
		doc.FileName,
		doc.IngestedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}

	return nil
}

func (s *postgresDocuments) Get(ctx context.Context, ids []string) ([]Document, error) {
	query := `
		SELECT id, content, category, file_name, ingested_at
		FROM documents
		WHERE id = ANY($1)
	`

	rows, err := s.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func (s *postgresDocuments) List(ctx context.Context) ([]Document, error) {
	query := `
		SELECT id, content, category, file_name, ingested_at
		FROM documents
		ORDER BY ingested_at, id
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func (s *postgresDocuments) Query(ctx context.Context, embedding []float32, k int) ([]SearchResult, error) {
	query := `
		SELECT id, content, category, file_name, ingested_at,
			1 - (embedding <=> $1) AS similarity
		FROM documents
		ORDER BY embedding <=> $1
		LIMIT $2
	`

	rows, err := s.pool.Query(ctx, query, pgvector.NewVector(embedding), k)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search query: %w", err)
	}
	defer rows.Close()

	var results []SearchResult

	for rows.Next() {
		var result SearchResult

		err := rows.Scan(
			&result.Document.ID,
			&result.Document.Text,
			&result.Document.Category,
			&result.Document.FileName,
			&result.Document.IngestedAt,
			&result.Similarity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return results, nil
}

func (s *postgresDocuments) Count(ctx context.Context) (int, error) {
	var count int

	err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM documents").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}

	return count, nil
}

func scanDocuments(rows pgx.Rows) ([]Document, error) {
	var docs []Document

	for rows.Next() {
		var doc Document

		err := rows.Scan(&doc.ID, &doc.Text, &doc.Category, &doc.FileName, &doc.IngestedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return docs, nil
}

type postgresGuidelines struct {
	pool *pgxpool.Pool
}

// inserts a guideline batch in a single transaction
func (s *postgresGuidelines) Add(ctx context.Context, guidelines []Guideline) error {
	if len(guidelines) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	batch := &pgx.Batch{}
	query := `
		INSERT INTO guidelines (id, content, embedding, source_id, position)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, g := range guidelines {
		batch.Queue(query, g.ID, g.Text, pgvector.NewVector(g.Embedding), g.SourceID, g.Position)
	}

	br := tx.SendBatch(ctx, batch)

	for i := 0; i < len(guidelines); i++ {
		if _, err := br.Exec(); err != nil {
			br.Close() //nolint:errcheck
			return fmt.Errorf("failed to insert guideline %d: %w", i, err)
		}
	}

	// must close batch results before committing, otherwise connection is still "busy"
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *postgresGuidelines) List(ctx context.Context) ([]Guideline, error) {
	query := `
		SELECT id, content, source_id, position
		FROM guidelines
		ORDER BY created_at, position
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list guidelines: %w", err)
	}
	defer rows.Close()

	var guidelines []Guideline

	for rows.Next() {
		var g Guideline

		if err := rows.Scan(&g.ID, &g.Text, &g.SourceID, &g.Position); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		guidelines = append(guidelines, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return guidelines, nil
}
