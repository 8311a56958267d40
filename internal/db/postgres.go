package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/platform/envutil"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/types"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := envutil.Str("POSTGRES_HOST", "localhost")
	postgresPort := envutil.Str("POSTGRES_PORT", "5432")
	postgresUser := envutil.Str("POSTGRES_USER", "postgres")
	postgresPassword := envutil.Str("POSTGRES_PASSWORD", "")
	postgresName := envutil.Str("POSTGRES_NAME", "careerpath")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	log.Info("Connecting to Postgres...", "host", postgresHost, "db", postgresName)
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	return &PostgresService{db: gormDB, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.UserProgress{},
		&types.Role{},
		&types.UserRole{},
		&types.Application{},
		&types.ConfidenceEntry{},
		&types.WaitlistEntry{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring foreign key relationships for postgres tables...")
	fks := []struct {
		name, table, column, refTable string
	}{
		{"fk_user_progress_user_id", "user_progress", "user_id", "user"},
		{"fk_user_role_user_id", "user_role", "user_id", "user"},
		{"fk_user_role_role_id", "user_role", "role_id", "role"},
		{"fk_application_user_id", "application", "user_id", "user"},
		{"fk_application_role_id", "application", "role_id", "role"},
		{"fk_confidence_entry_user_id", "confidence_entry", "user_id", "user"},
	}
	for _, fk := range fks {
		if err := s.addForeignKey(fk.name, fk.table, fk.column, fk.refTable); err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresService) addForeignKey(name, table, column, refTable string) error {
	var count int64
	if err := s.db.Raw(
		`SELECT COUNT(*) FROM information_schema.table_constraints WHERE constraint_name = ? AND table_name = ?`,
		name, table,
	).Scan(&count).Error; err != nil {
		return fmt.Errorf("check constraint %s: %w", name, err)
	}
	if count > 0 {
		return nil
	}

	stmt := fmt.Sprintf(
		`ALTER TABLE %q ADD CONSTRAINT %q FOREIGN KEY (%q) REFERENCES %q("id") ON DELETE CASCADE`,
		table, name, column, refTable,
	)
	if err := s.db.Exec(stmt).Error; err != nil {
		return fmt.Errorf("add constraint %s: %w", name, err)
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
