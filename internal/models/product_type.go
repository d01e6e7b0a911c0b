package models

import "time"

// ProductType представляет категорию продуктов
type ProductType struct {
	ID             string    `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	ShelfLifeDays  *int      `json:"shelfLifeDays" db:"shelf_life_days"`
	ShelfLifeHours *int      `json:"shelfLifeHours" db:"shelf_life_hours"`
	Meta           *string   `json:"meta" db:"meta"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateProductTypeRequest представляет запрос на создание категории продуктов
type CreateProductTypeRequest struct {
	Name           string  `json:"name" binding:"required"`
	ShelfLifeDays  *int    `json:"shelfLifeDays" binding:"omitempty,min=0"`
	ShelfLifeHours *int    `json:"shelfLifeHours" binding:"omitempty,min=0"`
	Meta           *string `json:"meta"`
}

// UpdateProductTypeRequest представляет запрос на изменение категории продуктов
type UpdateProductTypeRequest struct {
	Name           string  `json:"name" binding:"required"`
	ShelfLifeDays  *int    `json:"shelfLifeDays" binding:"omitempty,min=0"`
	ShelfLifeHours *int    `json:"shelfLifeHours" binding:"omitempty,min=0"`
	Meta           *string `json:"meta"`
}
