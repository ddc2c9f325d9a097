package db

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AppDocument is one persisted JSON document stored under a fixed key.
type AppDocument struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Body      string    `gorm:"column:body;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (AppDocument) TableName() string { return "app_documents" }

type DocumentRepository struct {
	database *gorm.DB
}

func NewDocumentRepository(database *gorm.DB) *DocumentRepository {
	return &DocumentRepository{database: database}
}

// Load returns the document body for key, reporting absence without error.
func (repo *DocumentRepository) Load(key string) (string, bool, error) {
	var document AppDocument
	if err := repo.database.First(&document, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return document.Body, true, nil
}

// Save writes the document body under key, inserting or replacing in place.
func (repo *DocumentRepository) Save(key string, body string) error {
	document := AppDocument{
		Key:       key,
		Body:      body,
		UpdatedAt: time.Now().UTC(),
	}
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(&document).Error
}
