package mapper

import (
	"encoding/json"

	"wisenotes-be/internal/entity"
	"wisenotes-be/internal/model"

	"gorm.io/datatypes"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.ActivityLog) *entity.ActivityEntry {
	if a == nil {
		return nil
	}

	payload := make(map[string]interface{})
	if len(a.Payload) > 0 {
		// Payload was marshalled by us; a decode failure leaves it empty.
		_ = json.Unmarshal(a.Payload, &payload)
	}

	return &entity.ActivityEntry{
		Id:        a.Id,
		EventId:   a.EventId,
		Action:    a.Action,
		UserId:    a.UserId,
		Payload:   payload,
		CreatedAt: a.CreatedAt,
	}
}

func (m *ActivityMapper) ToModel(a *entity.ActivityEntry) (*model.ActivityLog, error) {
	if a == nil {
		return nil, nil
	}

	payload, err := json.Marshal(a.Payload)
	if err != nil {
		return nil, err
	}

	return &model.ActivityLog{
		Id:        a.Id,
		EventId:   a.EventId,
		Action:    a.Action,
		UserId:    a.UserId,
		Payload:   datatypes.JSON(payload),
		CreatedAt: a.CreatedAt,
	}, nil
}

func (m *ActivityMapper) ToEntities(logs []*model.ActivityLog) []*entity.ActivityEntry {
	entities := make([]*entity.ActivityEntry, len(logs))
	for i, a := range logs {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
