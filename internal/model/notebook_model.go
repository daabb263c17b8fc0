package model

import (
	"time"

	"gorm.io/gorm"
)

type Notebook struct {
	Id        uint           `gorm:"primaryKey;autoIncrement"`
	Title     string         `gorm:"type:varchar(255);not null"`
	UserId    string         `gorm:"type:varchar(255);not null;index"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Notebook) TableName() string {
	return "notebooks"
}
