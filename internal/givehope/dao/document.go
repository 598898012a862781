// Хранение документов студии: метаданные и снимок дерева блоков в JSONB.
package dao

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/givehope/givehope.go/internal/givehope/export"
	"gorm.io/gorm"
)

// DocumentSnapshot - снимок дерева блоков документа, сериализуемый в JSONB.
type DocumentSnapshot struct {
	export.Snapshot
}

func (s DocumentSnapshot) Value() (driver.Value, error) {
	b, err := json.Marshal(s.Snapshot)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *DocumentSnapshot) Scan(value interface{}) error {
	if value == nil {
		*s = DocumentSnapshot{}
		return nil
	}

	var res []byte
	switch v := value.(type) {
	case []byte:
		res = v
	case string:
		res = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	return json.Unmarshal(res, &s.Snapshot)
}

type StudioDocument struct {
	// id uuid IS_NULL:NO
	Id string `json:"id" gorm:"primaryKey"`
	// name text IS_NULL:NO
	Name string `json:"name" gorm:"index"`

	Snapshot DocumentSnapshot `json:"snapshot" gorm:"type:jsonb"`

	// device text IS_NULL:NO
	Device string `json:"device" gorm:"default:desktop"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StudioDocument) TableName() string { return "studio_documents" }

func (d *StudioDocument) BeforeCreate(tx *gorm.DB) error {
	if d.Id == "" {
		d.Id = GenID()
	}
	return nil
}

// GetDocument возвращает документ по идентификатору.
func GetDocument(db *gorm.DB, id string) (StudioDocument, error) {
	var doc StudioDocument
	err := db.Where("id = ?", id).First(&doc).Error
	return doc, err
}
