package models

import "time"

// Product представляет продукт из каталога
type Product struct {
	ID              string    `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Description     *string   `json:"description" db:"description"`
	ProductTypeID   string    `json:"productTypeId" db:"product_type_id"`
	ProductTypeName string    `json:"productTypeName" db:"product_type_name"`
	ShelfLifeDays   *int      `json:"shelfLifeDays" db:"shelf_life_days"`
	ShelfLifeHours  *int      `json:"shelfLifeHours" db:"shelf_life_hours"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateProductRequest представляет запрос на создание продукта
type CreateProductRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    *string `json:"description"`
	ProductTypeID  string  `json:"productTypeId" binding:"required,uuid"`
	ShelfLifeDays  *int    `json:"shelfLifeDays" binding:"omitempty,min=0"`
	ShelfLifeHours *int    `json:"shelfLifeHours" binding:"omitempty,min=0"`
}

// UpdateProductRequest представляет запрос на изменение продукта
type UpdateProductRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    *string `json:"description"`
	ProductTypeID  string  `json:"productTypeId" binding:"required,uuid"`
	ShelfLifeDays  *int    `json:"shelfLifeDays" binding:"omitempty,min=0"`
	ShelfLifeHours *int    `json:"shelfLifeHours" binding:"omitempty,min=0"`
}
