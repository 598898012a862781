// Модели публикаций полевых сотрудников.
package dao

import (
	"time"

	"gorm.io/gorm"
)

type ContentPost struct {
	// id uuid IS_NULL:NO
	Id string `json:"id" gorm:"primaryKey"`

	Title string `json:"title" gorm:"index"`
	// sanitized html
	Body string `json:"body"`

	Author   string `json:"author"`
	Location string `json:"location"`

	Published   bool       `json:"published" gorm:"index"`
	PublishedAt *time.Time `json:"published_at,omitempty" extensions:"x-nullable"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ContentPost) TableName() string { return "content_posts" }

func (p *ContentPost) BeforeCreate(tx *gorm.DB) error {
	if p.Id == "" {
		p.Id = GenID()
	}
	return nil
}

// GetPost возвращает публикацию по идентификатору.
func GetPost(db *gorm.DB, id string) (ContentPost, error) {
	var post ContentPost
	err := db.Where("id = ?", id).First(&post).Error
	return post, err
}
