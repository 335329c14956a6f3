package repository

import (
	"context"

	"github.com/tanzhongyan/Singheatlh/internal/domain/entity"
	domainRepo "github.com/tanzhongyan/Singheatlh/internal/domain/repository"

	"gorm.io/gorm"
)

type schemaRepository struct{}

func NewSchemaRepository() domainRepo.SchemaRepository {
	return &schemaRepository{}
}

func (r *schemaRepository) Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// TablesReady fails until the backend migrations have created the clinic table.
func (r *schemaRepository) TablesReady(db *gorm.DB) error {
	return db.Exec("SELECT 1 FROM clinic LIMIT 1").Error
}

func (r *schemaRepository) Migrations(db *gorm.DB) ([]entity.SchemaMigration, error) {
	var migrations []entity.SchemaMigration
	err := db.Model(&entity.SchemaMigration{}).
		Select("installed_rank, COALESCE(version, '') AS version, description, success").
		Order("installed_rank").
		Find(&migrations).Error
	if err != nil {
		return nil, err
	}
	return migrations, nil
}

func (r *schemaRepository) FunctionExists(db *gorm.DB, schema, name string) (bool, error) {
	var exists bool
	err := db.Raw(`
		SELECT EXISTS(
			SELECT 1 FROM pg_proc p
			JOIN pg_namespace n ON p.pronamespace = n.oid
			WHERE p.proname = ? AND n.nspname = ?
		)`, name, schema).Scan(&exists).Error
	return exists, err
}

func (r *schemaRepository) TriggerExists(db *gorm.DB, name string) (bool, error) {
	var exists bool
	err := db.Raw("SELECT EXISTS(SELECT 1 FROM pg_trigger WHERE tgname = ?)", name).Scan(&exists).Error
	return exists, err
}
