// Package lifecycle реализует бизнес-правила жизненного цикла тары:
// допустимость переходов Empty/Full, проверку данных заполнения и
// вычисление срока годности по сроку хранения продукта.
package lifecycle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cats-service/internal/models"
)

// DateLayout - формат календарной даты без времени
const DateLayout = "2006-01-02"

// Ошибки переходов между состояниями
var (
	ErrAlreadyFull  = errors.New("тара уже заполнена, сначала опустошите её или измените текущее заполнение")
	ErrAlreadyEmpty = errors.New("тара уже пуста")
	ErrNotFull      = errors.New("тара не заполнена, изменять нечего")
)

// Ошибки проверки данных заполнения
var (
	ErrProductRequired        = errors.New("не указан продукт")
	ErrQuantityNotPositive    = errors.New("количество должно быть больше нуля")
	ErrUnitRequired           = errors.New("не указана единица измерения")
	ErrProductionDateRequired = errors.New("не указана дата производства")
	ErrExpirationRequired     = errors.New("не указан срок годности")
	ErrProductNotAllowed      = errors.New("продукт этого типа нельзя помещать в данную тару")
)

// CanFill проверяет, можно ли заполнить тару в данном статусе
func CanFill(status string) error {
	switch status {
	case models.StatusEmpty:
		return nil
	case models.StatusFull:
		return ErrAlreadyFull
	default:
		return fmt.Errorf("неизвестный статус тары: %q", status)
	}
}

// CanEmpty проверяет, можно ли опустошить тару в данном статусе
func CanEmpty(status string) error {
	switch status {
	case models.StatusFull:
		return nil
	case models.StatusEmpty:
		return ErrAlreadyEmpty
	default:
		return fmt.Errorf("неизвестный статус тары: %q", status)
	}
}

// CanEditFill проверяет, можно ли изменить текущее заполнение тары
func CanEditFill(status string) error {
	switch status {
	case models.StatusFull:
		return nil
	case models.StatusEmpty:
		return ErrNotFull
	default:
		return fmt.Errorf("неизвестный статус тары: %q", status)
	}
}

// Fill - проверенные и нормализованные данные заполнения
type Fill struct {
	ProductID      string
	Quantity       float64
	Unit           string
	ProductionDate time.Time
	ExpirationDate *time.Time
}

// ValidateFill проверяет данные заполнения до обращения к хранилищу.
// При requireExpiration срок годности обязателен (правка текущего
// заполнения), при обычном заполнении он может отсутствовать.
func ValidateFill(req models.FillContainerRequest, requireExpiration bool) (*Fill, error) {
	if strings.TrimSpace(req.ProductID) == "" {
		return nil, ErrProductRequired
	}

	if req.Quantity <= 0 {
		return nil, ErrQuantityNotPositive
	}

	unit := strings.TrimSpace(req.Unit)
	if unit == "" {
		return nil, ErrUnitRequired
	}

	if strings.TrimSpace(req.ProductionDate) == "" {
		return nil, ErrProductionDateRequired
	}
	productionDate, err := time.ParseInLocation(DateLayout, req.ProductionDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("неверная дата производства: %w", err)
	}

	fill := &Fill{
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		Unit:           unit,
		ProductionDate: productionDate,
	}

	if req.ExpirationDate != nil && strings.TrimSpace(*req.ExpirationDate) != "" {
		expirationDate, err := time.ParseInLocation(DateLayout, *req.ExpirationDate, time.Local)
		if err != nil {
			return nil, fmt.Errorf("неверный срок годности: %w", err)
		}
		fill.ExpirationDate = &expirationDate
	} else if requireExpiration {
		return nil, ErrExpirationRequired
	}

	return fill, nil
}

// ShelfLife - срок хранения продукта в днях и часах
type ShelfLife struct {
	Days  int
	Hours int
}

// IsZero сообщает, что срок хранения не задан
func (s ShelfLife) IsZero() bool {
	return s.Days == 0 && s.Hours == 0
}

// ResolveShelfLife возвращает срок хранения продукта: собственное значение
// продукта, если оно задано, иначе значение его категории
func ResolveShelfLife(product *models.Product, productType *models.ProductType) ShelfLife {
	own := shelfLifeOf(product.ShelfLifeDays, product.ShelfLifeHours)
	if !own.IsZero() {
		return own
	}
	if productType == nil {
		return ShelfLife{}
	}
	return shelfLifeOf(productType.ShelfLifeDays, productType.ShelfLifeHours)
}

func shelfLifeOf(days, hours *int) ShelfLife {
	var s ShelfLife
	if days != nil {
		s.Days = *days
	}
	if hours != nil {
		s.Hours = *hours
	}
	return s
}

// DeriveExpiration вычисляет срок годности: дата производства плюс срок
// хранения в локальном календарном времени, усечённая до даты (часы
// отбрасываются вниз: 2024-01-01 + 12 часов остаётся 2024-01-01).
// Возвращает nil, если срок хранения не задан.
func DeriveExpiration(productionDate time.Time, shelfLife ShelfLife) *time.Time {
	if shelfLife.IsZero() {
		return nil
	}

	t := productionDate.AddDate(0, 0, shelfLife.Days).Add(time.Duration(shelfLife.Hours) * time.Hour)
	truncated := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	return &truncated
}

// DeriveExpirationIfEmpty подставляет вычисленный срок годности, если
// пользователь не указал его явно. Явно заданное значение не перезаписывается.
func (f *Fill) DeriveExpirationIfEmpty(shelfLife ShelfLife) {
	if f.ExpirationDate != nil {
		return
	}
	f.ExpirationDate = DeriveExpiration(f.ProductionDate, shelfLife)
}

// CheckProductAllowed проверяет, что тип продукта входит в список разрешённых
// для данного типа тары. Пустой список означает отсутствие ограничений.
func CheckProductAllowed(containerType *models.ContainerType, productTypeID string) error {
	if containerType == nil || len(containerType.AllowedProductTypeIDs) == 0 {
		return nil
	}
	for _, id := range containerType.AllowedProductTypeIDs {
		if id == productTypeID {
			return nil
		}
	}
	return ErrProductNotAllowed
}
