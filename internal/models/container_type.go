package models

import (
	"time"

	"github.com/lib/pq"
)

// ContainerType представляет тип тары
type ContainerType struct {
	ID                    string         `json:"id" db:"id"`
	Name                  string         `json:"name" db:"name"`
	CodePrefix            string         `json:"codePrefix" db:"code_prefix"`
	DefaultUnit           string         `json:"defaultUnit" db:"default_unit"`
	Meta                  *string        `json:"meta" db:"meta"`
	AllowedProductTypeIDs pq.StringArray `json:"allowedProductTypeIds" db:"allowed_product_type_ids"`
	CreatedAt             time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt             time.Time      `json:"updatedAt" db:"updated_at"`
}

// CreateContainerTypeRequest представляет запрос на создание типа тары
type CreateContainerTypeRequest struct {
	Name                  string   `json:"name" binding:"required"`
	CodePrefix            string   `json:"codePrefix" binding:"required"`
	DefaultUnit           string   `json:"defaultUnit" binding:"required"`
	Meta                  *string  `json:"meta"`
	AllowedProductTypeIDs []string `json:"allowedProductTypeIds"`
}

// UpdateContainerTypeRequest представляет запрос на изменение типа тары
type UpdateContainerTypeRequest struct {
	Name                  string   `json:"name" binding:"required"`
	CodePrefix            string   `json:"codePrefix" binding:"required"`
	DefaultUnit           string   `json:"defaultUnit" binding:"required"`
	Meta                  *string  `json:"meta"`
	AllowedProductTypeIDs []string `json:"allowedProductTypeIds"`
}
