package models

import (
	"net/url"
	"strconv"
)

// SearchContainersParams представляет составной фильтр поиска тары.
// Имена ключей совпадают с параметрами запроса GET /containers/search.
type SearchContainersParams struct {
	SearchTerm           string `form:"SearchTerm"`
	ContainerTypeID      string `form:"ContainerTypeId"`
	Status               string `form:"Status" binding:"omitempty,oneof=Empty Full"`
	ProductionDate       string `form:"ProductionDate" binding:"omitempty,datetime=2006-01-02"`
	CurrentProductID     string `form:"CurrentProductId"`
	CurrentProductTypeID string `form:"CurrentProductTypeId"`
	LastProductID        string `form:"LastProductId"`
	ShowExpired          bool   `form:"ShowExpired"`
	FilledToday          bool   `form:"FilledToday"`
}

// Values кодирует фильтр в строку запроса. Пустые и ложные значения
// не передаются.
func (p SearchContainersParams) Values() url.Values {
	values := url.Values{}

	if p.SearchTerm != "" {
		values.Set("SearchTerm", p.SearchTerm)
	}
	if p.ContainerTypeID != "" {
		values.Set("ContainerTypeId", p.ContainerTypeID)
	}
	if p.Status != "" {
		values.Set("Status", p.Status)
	}
	if p.ProductionDate != "" {
		values.Set("ProductionDate", p.ProductionDate)
	}
	if p.CurrentProductID != "" {
		values.Set("CurrentProductId", p.CurrentProductID)
	}
	if p.CurrentProductTypeID != "" {
		values.Set("CurrentProductTypeId", p.CurrentProductTypeID)
	}
	if p.LastProductID != "" {
		values.Set("LastProductId", p.LastProductID)
	}
	if p.ShowExpired {
		values.Set("ShowExpired", strconv.FormatBool(p.ShowExpired))
	}
	if p.FilledToday {
		values.Set("FilledToday", strconv.FormatBool(p.FilledToday))
	}

	return values
}

// ParseSearchContainersParams восстанавливает фильтр из строки запроса
func ParseSearchContainersParams(values url.Values) SearchContainersParams {
	showExpired, _ := strconv.ParseBool(values.Get("ShowExpired"))
	filledToday, _ := strconv.ParseBool(values.Get("FilledToday"))

	return SearchContainersParams{
		SearchTerm:           values.Get("SearchTerm"),
		ContainerTypeID:      values.Get("ContainerTypeId"),
		Status:               values.Get("Status"),
		ProductionDate:       values.Get("ProductionDate"),
		CurrentProductID:     values.Get("CurrentProductId"),
		CurrentProductTypeID: values.Get("CurrentProductTypeId"),
		LastProductID:        values.Get("LastProductId"),
		ShowExpired:          showExpired,
		FilledToday:          filledToday,
	}
}

// IsEmpty сообщает, что в фильтре нет ни одного активного поля
func (p SearchContainersParams) IsEmpty() bool {
	return p == SearchContainersParams{}
}

// SearchContainerFillsParams представляет фильтр поиска по истории
// заполнений. Имена ключей совпадают с параметрами запроса
// GET /containers/fills/search.
type SearchContainerFillsParams struct {
	ProductID     string `form:"ProductId"`
	ProductTypeID string `form:"ProductTypeId"`
	ContainerID   int64  `form:"ContainerId"`
	FromDate      string `form:"FromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate        string `form:"ToDate" binding:"omitempty,datetime=2006-01-02"`
	OnlyActive    bool   `form:"OnlyActive"`
}

// Values кодирует фильтр заполнений в строку запроса
func (p SearchContainerFillsParams) Values() url.Values {
	values := url.Values{}

	if p.ProductID != "" {
		values.Set("ProductId", p.ProductID)
	}
	if p.ProductTypeID != "" {
		values.Set("ProductTypeId", p.ProductTypeID)
	}
	if p.ContainerID != 0 {
		values.Set("ContainerId", strconv.FormatInt(p.ContainerID, 10))
	}
	if p.FromDate != "" {
		values.Set("FromDate", p.FromDate)
	}
	if p.ToDate != "" {
		values.Set("ToDate", p.ToDate)
	}
	if p.OnlyActive {
		values.Set("OnlyActive", strconv.FormatBool(p.OnlyActive))
	}

	return values
}
