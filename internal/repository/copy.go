package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/gorm"
)

var ErrNotPgxConnection = errors.New("database connection is not backed by pgx")

// copyRows streams rows into table with the COPY protocol on a connection borrowed
// from the gorm pool.
func copyRows(ctx context.Context, db *gorm.DB, table string, columns []string, rows [][]any) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("get database instance: %w", err)
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return 0, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	var copied int64
	err = conn.Raw(func(driverConn any) error {
		pgxConn, ok := driverConn.(*stdlib.Conn)
		if !ok {
			return ErrNotPgxConnection
		}
		n, err := pgxConn.Conn().CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
		copied = n
		return err
	})
	if err != nil {
		return copied, fmt.Errorf("copy into %s: %w", table, err)
	}
	return copied, nil
}

func countRows(db *gorm.DB, model any) (int64, error) {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// nullableText maps empty strings to NULL, as COPY ... WITH CSV does for unquoted empty fields.
func nullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func timeOfDay(c entity.ClockTime) pgtype.Time {
	return pgtype.Time{Microseconds: c.SinceMidnight().Microseconds(), Valid: true}
}
