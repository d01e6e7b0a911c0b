package models

import "time"

// ContainerFill представляет эпизод заполнения тары (запись истории)
type ContainerFill struct {
	ID              string     `json:"id" db:"id"`
	ContainerID     int64      `json:"containerId" db:"container_id"`
	ProductID       string     `json:"productId" db:"product_id"`
	ProductName     string     `json:"productName" db:"product_name"`
	ProductTypeName string     `json:"productTypeName" db:"product_type_name"`
	Quantity        float64    `json:"quantity" db:"quantity"`
	Unit            string     `json:"unit" db:"unit"`
	ProductionDate  time.Time  `json:"productionDate" db:"production_date"`
	ExpirationDate  *time.Time `json:"expirationDate" db:"expiration_date"`
	FilledAt        time.Time  `json:"filledAt" db:"filled_at"`
	FilledBy        string     `json:"filledBy" db:"filled_by"`
	FilledByName    string     `json:"filledByUserName" db:"filled_by_name"`
	EmptiedAt       *time.Time `json:"emptiedAt" db:"emptied_at"`
	EmptiedBy       *string    `json:"emptiedBy" db:"emptied_by"`
	EmptiedByName   *string    `json:"emptiedByUserName" db:"emptied_by_name"`
}

// FillContainerRequest представляет данные заполнения или правки текущего
// заполнения. Семантическая проверка полей выполняется движком жизненного
// цикла, а не binding-тегами.
type FillContainerRequest struct {
	ProductID      string  `json:"productId"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	ProductionDate string  `json:"productionDate"`
	ExpirationDate *string `json:"expirationDate"`
}

// ContainerEvent представляет событие из ленты событий тары
type ContainerEvent struct {
	ID          string    `json:"id"`
	ContainerID int64     `json:"containerId"`
	Type        string    `json:"type"`
	UserName    string    `json:"userName"`
	Timestamp   time.Time `json:"timestamp"`
}

// Типы событий тары
const (
	EventFilled  = "filled"
	EventEmptied = "emptied"
)
