package persistent

import (
	"campus-lost-found/internal/entity"
	"campus-lost-found/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:           m.ID,
		Status:       entity.PostStatus(m.Status),
		ItemName:     m.ItemName,
		Description:  m.Description,
		Location:     m.Location,
		ContactInfo:  m.ContactInfo,
		ContactPhone: m.ContactPhone,
		Image:        m.Image,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:           e.ID,
		Status:       string(e.Status),
		ItemName:     e.ItemName,
		Description:  e.Description,
		Location:     e.Location,
		ContactInfo:  e.ContactInfo,
		ContactPhone: e.ContactPhone,
		Image:        e.Image,
		IsActive:     e.IsActive,
		CreatedAt:    e.CreatedAt,
	}
}
