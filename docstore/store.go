package docstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tsawler/stlfield/field"
)

// ErrUnsupportedPath is returned for patches that do not address a whole
// top-level field
var ErrUnsupportedPath = errors.New("patch path must name a single field")

// FieldValue is one stored field of a document
type FieldValue struct {
	DocumentID string `gorm:"primaryKey"`
	Field      string `gorm:"primaryKey"`
	Value      string
	UpdatedAt  time.Time
}

// Options holds store configuration
type Options struct {
	Logger        *slog.Logger
	SlowThreshold time.Duration // Queries slower than this are logged; zero disables
}

// Store persists field values in SQLite
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

// Open opens or creates the database at dsn and migrates the schema
func Open(dsn string, opts Options) (*Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: newGormLogger(logger, opts.SlowThreshold),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.AutoMigrate(&FieldValue{}); err != nil {
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close closes the database
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Apply applies every patch of ev to the document in one transaction. Each
// patch path names the field; set with an empty value removes the field.
func (s *Store) Apply(ctx context.Context, docID string, ev field.PatchEvent) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range ev.Patches {
			if len(p.Path) != 1 {
				return fmt.Errorf("%w: %v", ErrUnsupportedPath, p.Path)
			}
			name := p.Path[0]

			value, present := p.Apply("", false)
			if !present || value == "" {
				if err := tx.Delete(&FieldValue{}, "document_id = ? AND field = ?", docID, name).Error; err != nil {
					return fmt.Errorf("unsetting %s.%s: %w", docID, name, err)
				}
				continue
			}

			row := FieldValue{DocumentID: docID, Field: name, Value: value}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "document_id"}, {Name: "field"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&row).Error
			if err != nil {
				return fmt.Errorf("setting %s.%s: %w", docID, name, err)
			}
		}
		return nil
	})
}

// Get returns the stored value of a field and whether one exists
func (s *Store) Get(ctx context.Context, docID, name string) (string, bool, error) {
	var row FieldValue
	err := s.db.WithContext(ctx).
		Where("document_id = ? AND field = ?", docID, name).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s.%s: %w", docID, name, err)
	}
	return row.Value, true, nil
}

// Document returns every stored field of a document
func (s *Store) Document(ctx context.Context, docID string) (map[string]string, error) {
	var rows []FieldValue
	if err := s.db.WithContext(ctx).Where("document_id = ?", docID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("reading %s: %w", docID, err)
	}
	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Field] = row.Value
	}
	return values, nil
}

// Channel returns a change handler for a field controller. Events are
// prefixed with the field name and applied to the document; failures are
// logged, since controllers expect the host to own persistence.
func (s *Store) Channel(ctx context.Context, docID, name string) func(field.PatchEvent) {
	return func(ev field.PatchEvent) {
		if err := s.Apply(ctx, docID, ev.Prefixed(name)); err != nil {
			s.logger.ErrorContext(ctx, "persisting field",
				"document_id", docID,
				"field", name,
				"err", err,
			)
		}
	}
}
