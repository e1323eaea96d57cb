package models

import (
	"time"

	"items_service/internal/domain/items"
)

// ItemModel is the GORM database model for items (infrastructure concern)
type ItemModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(100);not null;index"`
	Description string    `gorm:"type:varchar(300);not null"`
	Price       float64   `gorm:"not null"`
	Available   bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (ItemModel) TableName() string {
	return "items"
}

// ToDomain converts GORM model to domain entity
func (m *ItemModel) ToDomain() *items.Item {
	return &items.Item{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Available:   m.Available,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ItemModel) FromDomain(i *items.Item) {
	m.ID = i.ID
	m.Name = i.Name
	m.Description = i.Description
	m.Price = i.Price
	m.Available = i.Available
	m.CreatedAt = i.CreatedAt
	m.UpdatedAt = i.UpdatedAt
}
