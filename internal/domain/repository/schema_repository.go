package repository

import (
	"context"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"

	"gorm.io/gorm"
)

// SchemaRepository inspects the database state the seeder depends on.
type SchemaRepository interface {
	Ping(ctx context.Context, db *gorm.DB) error
	TablesReady(db *gorm.DB) error
	Migrations(db *gorm.DB) ([]entity.SchemaMigration, error)
	FunctionExists(db *gorm.DB, schema, name string) (bool, error)
	TriggerExists(db *gorm.DB, name string) (bool, error)
}
