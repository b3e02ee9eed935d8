package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")

// errDebugRollback forces gorm to roll a successful transaction back when the
// store runs in debug mode. It never leaves this package.
var errDebugRollback = errors.New("debug rollback")

type PostgresDB struct {
	DB            *gorm.DB
	debugRollback bool
}

type Option func(*PostgresDB)

// WithDebugRollback makes every transaction roll back even on success, so test
// runs leave no rows behind.
func WithDebugRollback() Option {
	return func(p *PostgresDB) {
		p.debugRollback = true
	}
}

func NewPostgresDB(dsn string, opts ...Option) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	pg := &PostgresDB{
		DB: db,
	}
	for _, opt := range opts {
		opt(pg)
	}

	return pg, nil
}

func (p *PostgresDB) MigrateTable(tbl ...any) error {
	err := p.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Ping verifies the underlying connection is alive.
func (p *PostgresDB) Ping(ctx context.Context) error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	return nil
}

// InsertRecord creates a single record and fills its generated primary key.
func (p *PostgresDB) InsertRecord(ctx context.Context, record any) error {
	err := p.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

func (p *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := p.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (p *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entities any) error {
	tx := p.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value).Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

// UpdateRecord writes all fields of a record with a set primary key and
// reports how many rows matched, so a missing id is visible to the caller.
func (p *PostgresDB) UpdateRecord(ctx context.Context, record any) (int64, error) {
	tx := p.DB.WithContext(ctx).Save(record)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("update record: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (p *PostgresDB) DeleteBy(ctx context.Context, column string, value any, model any) (int64, error) {
	tx := p.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value).Delete(model)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting records by %q: %w", column, tx.Error)
	}
	return tx.RowsAffected, nil
}

// Transaction runs fn against a transactional handle. The transaction commits
// when fn returns nil and rolls back otherwise; either way the unit of work is
// released before Transaction returns.
func (p *PostgresDB) Transaction(ctx context.Context, fn func(tx *PostgresDB) error) error {
	err := p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := fn(&PostgresDB{DB: tx, debugRollback: p.debugRollback}); err != nil {
			return err
		}
		if p.debugRollback {
			return errDebugRollback
		}
		return nil
	})
	if errors.Is(err, errDebugRollback) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("transaction: %w", err)
	}
	return nil
}
