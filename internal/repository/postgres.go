package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"shortlink/internal/config"
	"shortlink/internal/domain"
)

const clickEventsSchema = `
CREATE TABLE IF NOT EXISTS click_events (
	id           BIGSERIAL PRIMARY KEY,
	short_url_id BIGINT NOT NULL REFERENCES short_links (id) ON DELETE CASCADE,
	referrer     TEXT,
	user_agent   TEXT,
	device       TEXT NOT NULL,
	timestamp    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_click_events_short_url_id ON click_events (short_url_id);
`

const eventColumns = "id, short_url_id, referrer, user_agent, device, timestamp"

// PostgresStore keeps links in short_links through gorm and appends click
// events to click_events over a pgx pool. Deleting a link cascades to its
// events in the database.
type PostgresStore struct {
	db   *gorm.DB
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, cfg *config.DatabaseConfig) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if cfg.MaxConns > 0 {
		sqlDB.SetMaxOpenConns(int(cfg.MaxConns))
	}

	if err := db.WithContext(ctx).AutoMigrate(&domain.ShortLink{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if _, err := pool.Exec(ctx, clickEventsSchema); err != nil {
		pool.Close()
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &PostgresStore{db: db, pool: pool}, nil
}

// Pool exposes the click event pool for stats export.
func (r *PostgresStore) Pool() *pgxpool.Pool {
	return r.pool
}

func (r *PostgresStore) Close() {
	r.pool.Close()
	if sqlDB, err := r.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (r *PostgresStore) NextID(ctx context.Context) (int64, error) {
	var id int64
	err := r.db.WithContext(ctx).Raw("SELECT nextval('short_links_id_seq')").Scan(&id).Error
	if err != nil {
		return 0, fmt.Errorf("failed to get next id: %w", err)
	}
	return id, nil
}

func (r *PostgresStore) Create(ctx context.Context, link *domain.ShortLink) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSlugTaken
		}
		return fmt.Errorf("failed to insert link: %w", err)
	}
	return nil
}

func (r *PostgresStore) FindByID(ctx context.Context, id int64) (*domain.ShortLink, error) {
	return r.findLink(ctx, "id = ?", id)
}

func (r *PostgresStore) FindBySlug(ctx context.Context, slug string) (*domain.ShortLink, error) {
	return r.findLink(ctx, "slug = ?", slug)
}

func (r *PostgresStore) List(ctx context.Context) ([]domain.ShortLink, error) {
	var links []domain.ShortLink
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

// IncrementClicks bumps the counter in a single UPDATE so concurrent
// visits are never lost.
func (r *PostgresStore) IncrementClicks(ctx context.Context, id int64) (*domain.ShortLink, error) {
	return r.updateLink(ctx, id, "clicks", gorm.Expr("clicks + 1"))
}

func (r *PostgresStore) SetActive(ctx context.Context, id int64, active bool) (*domain.ShortLink, error) {
	return r.updateLink(ctx, id, "active", active)
}

// Delete relies on ON DELETE CASCADE to drop the link's click events.
func (r *PostgresStore) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.ShortLink{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete link: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresStore) CreateClickEvent(ctx context.Context, event *domain.ClickEvent) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO click_events (short_url_id, referrer, user_agent, device, timestamp)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		event.ShortURLID, event.Referrer, event.UserAgent, string(event.Device), event.Timestamp,
	).Scan(&event.ID)
	if err != nil {
		return fmt.Errorf("failed to insert click event: %w", err)
	}
	return nil
}

func (r *PostgresStore) ListClickEvents(ctx context.Context) ([]domain.ClickEvent, error) {
	return r.queryEvents(ctx, `SELECT `+eventColumns+` FROM click_events`)
}

func (r *PostgresStore) ClickEventsByLinkID(ctx context.Context, linkID int64) ([]domain.ClickEvent, error) {
	return r.queryEvents(ctx,
		`SELECT `+eventColumns+` FROM click_events WHERE short_url_id = $1 ORDER BY timestamp DESC, id DESC`,
		linkID)
}

func (r *PostgresStore) findLink(ctx context.Context, query string, arg any) (*domain.ShortLink, error) {
	var link domain.ShortLink
	if err := r.db.WithContext(ctx).Where(query, arg).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get link: %w", err)
	}
	return &link, nil
}

func (r *PostgresStore) updateLink(ctx context.Context, id int64, column string, value any) (*domain.ShortLink, error) {
	var link domain.ShortLink
	res := r.db.WithContext(ctx).
		Model(&link).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		UpdateColumn(column, value)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update link: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &link, nil
}

func (r *PostgresStore) queryEvents(ctx context.Context, sql string, args ...any) ([]domain.ClickEvent, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query click events: %w", err)
	}
	events, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.ClickEvent])
	if err != nil {
		return nil, fmt.Errorf("failed to scan click events: %w", err)
	}
	return events, nil
}
