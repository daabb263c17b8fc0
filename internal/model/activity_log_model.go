package model

import (
	"time"

	"gorm.io/datatypes"
)

type ActivityLog struct {
	Id        uint           `gorm:"primaryKey;autoIncrement"`
	EventId   string         `gorm:"type:varchar(64);uniqueIndex"`
	Action    string         `gorm:"type:varchar(64);not null;index"`
	UserId    string         `gorm:"type:varchar(255);not null;index"`
	Payload   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
