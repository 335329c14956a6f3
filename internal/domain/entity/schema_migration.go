package entity

// SchemaMigration is one applied row of the Flyway history table owned by the backend.
type SchemaMigration struct {
	InstalledRank int
	Version       string
	Description   string
	Success       bool
}

func (SchemaMigration) TableName() string {
	return "flyway_schema_history"
}
