package model

import (
	"time"

	"gorm.io/gorm"
)

type Note struct {
	Id         uint           `gorm:"primaryKey;autoIncrement"`
	Content    string         `gorm:"type:text;not null"`
	NotebookId uint           `gorm:"not null;index"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Note) TableName() string {
	return "notes"
}
