package models

import "time"

// Container представляет тару (многоразовый контейнер)
type Container struct {
	ID                    int64      `json:"id" db:"id"`
	Code                  string     `json:"code" db:"code"`
	Name                  string     `json:"name" db:"name"`
	Volume                float64    `json:"volume" db:"volume"`
	Unit                  string     `json:"unit" db:"unit"`
	ContainerTypeID       string     `json:"containerTypeId" db:"container_type_id"`
	ContainerTypeName     string     `json:"containerTypeName" db:"container_type_name"`
	Status                string     `json:"status" db:"status"`
	Meta                  *string    `json:"meta" db:"meta"`
	CurrentProductID      *string    `json:"currentProductId" db:"current_product_id"`
	CurrentProductName    *string    `json:"currentProductName" db:"current_product_name"`
	CurrentQuantity       *float64   `json:"currentQuantity" db:"current_quantity"`
	CurrentUnit           *string    `json:"currentUnit" db:"current_unit"`
	CurrentProductionDate *time.Time `json:"currentProductionDate" db:"current_production_date"`
	CurrentExpirationDate *time.Time `json:"currentExpirationDate" db:"current_expiration_date"`
	CurrentFilledAt       *time.Time `json:"currentFilledAt" db:"current_filled_at"`
	CreatedAt             time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt             time.Time  `json:"updatedAt" db:"updated_at"`
}

// CreateContainerRequest представляет запрос на создание тары
type CreateContainerRequest struct {
	Code            *string `json:"code"`
	Name            string  `json:"name" binding:"required"`
	Volume          float64 `json:"volume" binding:"required,gt=0"`
	Unit            string  `json:"unit" binding:"required"`
	ContainerTypeID string  `json:"containerTypeId" binding:"required,uuid"`
	Meta            *string `json:"meta"`
}

// UpdateContainerRequest представляет запрос на изменение тары
type UpdateContainerRequest struct {
	Name            string  `json:"name" binding:"required"`
	Volume          float64 `json:"volume" binding:"required,gt=0"`
	Unit            string  `json:"unit" binding:"required"`
	ContainerTypeID string  `json:"containerTypeId" binding:"required,uuid"`
	Meta            *string `json:"meta"`
}
