package lifecycle

import (
	"testing"
	"time"

	"cats-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

// TestValidateFillSuccess проверяет успешную проверку корректных данных
func TestValidateFillSuccess(t *testing.T) {
	req := models.FillContainerRequest{
		ProductID:      "a23e4567-e89b-12d3-a456-426614174000",
		Quantity:       50,
		Unit:           "л",
		ProductionDate: "2024-01-01",
	}

	fill, err := ValidateFill(req, false)
	assert.NoError(t, err)
	assert.Equal(t, req.ProductID, fill.ProductID)
	assert.Equal(t, 50.0, fill.Quantity)
	assert.Equal(t, "л", fill.Unit)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), fill.ProductionDate)
	assert.Nil(t, fill.ExpirationDate)
}

// TestValidateFillMissingProduct проверяет отказ при отсутствии продукта
func TestValidateFillMissingProduct(t *testing.T) {
	req := models.FillContainerRequest{
		Quantity:       50,
		Unit:           "л",
		ProductionDate: "2024-01-01",
	}

	_, err := ValidateFill(req, false)
	assert.ErrorIs(t, err, ErrProductRequired)
}

// TestValidateFillQuantityNotPositive проверяет отказ при неположительном количестве
func TestValidateFillQuantityNotPositive(t *testing.T) {
	for _, quantity := range []float64{0, -1, -0.5} {
		req := models.FillContainerRequest{
			ProductID:      "a23e4567-e89b-12d3-a456-426614174000",
			Quantity:       quantity,
			Unit:           "л",
			ProductionDate: "2024-01-01",
		}

		_, err := ValidateFill(req, false)
		assert.ErrorIs(t, err, ErrQuantityNotPositive)
	}
}

// TestValidateFillBlankUnit проверяет отказ при пустой единице измерения
func TestValidateFillBlankUnit(t *testing.T) {
	req := models.FillContainerRequest{
		ProductID:      "a23e4567-e89b-12d3-a456-426614174000",
		Quantity:       50,
		Unit:           "   ",
		ProductionDate: "2024-01-01",
	}

	_, err := ValidateFill(req, false)
	assert.ErrorIs(t, err, ErrUnitRequired)
}

// TestValidateFillMissingProductionDate проверяет отказ при отсутствии даты производства
func TestValidateFillMissingProductionDate(t *testing.T) {
	req := models.FillContainerRequest{
		ProductID: "a23e4567-e89b-12d3-a456-426614174000",
		Quantity:  50,
		Unit:      "л",
	}

	_, err := ValidateFill(req, false)
	assert.ErrorIs(t, err, ErrProductionDateRequired)
}

// TestValidateFillBadProductionDate проверяет отказ при некорректной дате
func TestValidateFillBadProductionDate(t *testing.T) {
	req := models.FillContainerRequest{
		ProductID:      "a23e4567-e89b-12d3-a456-426614174000",
		Quantity:       50,
		Unit:           "л",
		ProductionDate: "01.01.2024",
	}

	_, err := ValidateFill(req, false)
	assert.Error(t, err)
}

// TestValidateFillExpirationOptionalOnFill проверяет, что при заполнении
// срок годности можно не указывать
func TestValidateFillExpirationOptionalOnFill(t *testing.T) {
	req := models.FillContainerRequest{
		ProductID:      "a23e4567-e89b-12d3-a456-426614174000",
		Quantity:       50,
		Unit:           "л",
		ProductionDate: "2024-01-01",
	}

	fill, err := ValidateFill(req, false)
	assert.NoError(t, err)
	assert.Nil(t, fill.ExpirationDate)
}

// TestValidateFillExpirationRequiredOnEdit проверяет, что при правке
// заполнения срок годности обязателен
func TestValidateFillExpirationRequiredOnEdit(t *testing.T) {
	req := models.FillContainerRequest{
		ProductID:      "a23e4567-e89b-12d3-a456-426614174000",
		Quantity:       50,
		Unit:           "л",
		ProductionDate: "2024-01-01",
	}

	_, err := ValidateFill(req, true)
	assert.ErrorIs(t, err, ErrExpirationRequired)

	// Пустая строка равносильна отсутствию значения
	req.ExpirationDate = strPtr("  ")
	_, err = ValidateFill(req, true)
	assert.ErrorIs(t, err, ErrExpirationRequired)

	// С явным значением проверка проходит
	req.ExpirationDate = strPtr("2024-01-08")
	fill, err := ValidateFill(req, true)
	assert.NoError(t, err)
	assert.NotNil(t, fill.ExpirationDate)
}

// TestCanFill проверяет допустимость заполнения по статусу
func TestCanFill(t *testing.T) {
	assert.NoError(t, CanFill(models.StatusEmpty))
	assert.ErrorIs(t, CanFill(models.StatusFull), ErrAlreadyFull)
	assert.Error(t, CanFill("Broken"))
}

// TestCanEmpty проверяет допустимость опустошения по статусу
func TestCanEmpty(t *testing.T) {
	assert.NoError(t, CanEmpty(models.StatusFull))
	assert.ErrorIs(t, CanEmpty(models.StatusEmpty), ErrAlreadyEmpty)
	assert.Error(t, CanEmpty(""))
}

// TestCanEditFill проверяет допустимость правки заполнения по статусу
func TestCanEditFill(t *testing.T) {
	assert.NoError(t, CanEditFill(models.StatusFull))
	assert.ErrorIs(t, CanEditFill(models.StatusEmpty), ErrNotFull)
}

// TestDeriveExpirationDays проверяет вычисление срока годности по дням:
// 2024-01-01 + 7 дней = 2024-01-08
func TestDeriveExpirationDays(t *testing.T) {
	productionDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)

	expiration := DeriveExpiration(productionDate, ShelfLife{Days: 7})
	assert.NotNil(t, expiration)
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.Local), *expiration)
}

// TestDeriveExpirationHoursTruncated проверяет усечение часов: 12 часов
// не переносят дату на следующий день
func TestDeriveExpirationHoursTruncated(t *testing.T) {
	productionDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)

	expiration := DeriveExpiration(productionDate, ShelfLife{Hours: 12})
	assert.NotNil(t, expiration)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local), *expiration)

	// 36 часов перешагивают полночь и дают следующий день
	expiration = DeriveExpiration(productionDate, ShelfLife{Hours: 36})
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local), *expiration)
}

// TestDeriveExpirationDaysAndHours проверяет совместное применение дней и часов
func TestDeriveExpirationDaysAndHours(t *testing.T) {
	productionDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)

	expiration := DeriveExpiration(productionDate, ShelfLife{Days: 2, Hours: 30})
	assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.Local), *expiration)
}

// TestDeriveExpirationNoShelfLife проверяет, что без срока хранения
// срок годности не вычисляется
func TestDeriveExpirationNoShelfLife(t *testing.T) {
	productionDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)

	assert.Nil(t, DeriveExpiration(productionDate, ShelfLife{}))
}

// TestDeriveExpirationIfEmpty проверяет, что явное значение пользователя
// не перезаписывается вычисленным
func TestDeriveExpirationIfEmpty(t *testing.T) {
	manual := time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)

	fill := &Fill{
		ProductionDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		ExpirationDate: &manual,
	}
	fill.DeriveExpirationIfEmpty(ShelfLife{Days: 7})
	assert.Equal(t, manual, *fill.ExpirationDate)

	fill.ExpirationDate = nil
	fill.DeriveExpirationIfEmpty(ShelfLife{Days: 7})
	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.Local), *fill.ExpirationDate)
}

// TestResolveShelfLife проверяет выбор срока хранения: продукт
// перекрывает категорию, иначе берется значение категории
func TestResolveShelfLife(t *testing.T) {
	productType := &models.ProductType{
		ShelfLifeDays:  intPtr(30),
		ShelfLifeHours: intPtr(0),
	}

	// Продукт со своим сроком хранения
	product := &models.Product{ShelfLifeDays: intPtr(7)}
	assert.Equal(t, ShelfLife{Days: 7}, ResolveShelfLife(product, productType))

	// Продукт без своего срока - берем срок категории
	product = &models.Product{}
	assert.Equal(t, ShelfLife{Days: 30}, ResolveShelfLife(product, productType))

	// Нулевой срок продукта равносилен отсутствию
	product = &models.Product{ShelfLifeDays: intPtr(0), ShelfLifeHours: intPtr(0)}
	assert.Equal(t, ShelfLife{Days: 30}, ResolveShelfLife(product, productType))

	// Ни продукт, ни категория не задают срок
	assert.True(t, ResolveShelfLife(&models.Product{}, &models.ProductType{}).IsZero())
	assert.True(t, ResolveShelfLife(&models.Product{}, nil).IsZero())
}

// TestCheckProductAllowed проверяет ограничение типов продуктов для типа тары
func TestCheckProductAllowed(t *testing.T) {
	containerType := &models.ContainerType{
		AllowedProductTypeIDs: []string{"pt-1", "pt-2"},
	}

	assert.NoError(t, CheckProductAllowed(containerType, "pt-1"))
	assert.ErrorIs(t, CheckProductAllowed(containerType, "pt-3"), ErrProductNotAllowed)

	// Пустой список - без ограничений
	assert.NoError(t, CheckProductAllowed(&models.ContainerType{}, "pt-3"))
	assert.NoError(t, CheckProductAllowed(nil, "pt-3"))
}
