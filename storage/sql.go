package storage

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LedgerBlob is the single-row home of a named blob in Postgres. The
// ledger is still read and rewritten whole; the database only gives it
// durability beyond the host's filesystem.
type LedgerBlob struct {
	Name string `gorm:"primaryKey;type:varchar(64)"`
	Data []byte
}

// SQLStore keeps the blob in a Postgres row, for deployments that
// already run a database and don't want state on local disk.
type SQLStore struct {
	db   *gorm.DB
	name string
}

func NewSQLStore(dsn, name string) (*SQLStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("storage: connect postgres: %w", err)
	}
	if err := db.AutoMigrate(&LedgerBlob{}); err != nil {
		return nil, fmt.Errorf("storage: migrate: %w", err)
	}
	return &SQLStore{db: db, name: name}, nil
}

func (s *SQLStore) Read() ([]byte, error) {
	var blob LedgerBlob
	err := s.db.Where("name = ?", s.name).First(&blob).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read blob %s: %w", s.name, err)
	}
	return blob.Data, nil
}

func (s *SQLStore) Write(data []byte) error {
	blob := LedgerBlob{Name: s.name, Data: data}
	err := s.db.
		Where("name = ?", s.name).
		Assign(LedgerBlob{Data: data}).
		FirstOrCreate(&blob).Error
	if err != nil {
		return fmt.Errorf("storage: write blob %s: %w", s.name, err)
	}
	return nil
}
