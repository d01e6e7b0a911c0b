package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"cats-service/internal/db"
	"cats-service/internal/lifecycle"
	"cats-service/internal/models"
)

func setupFillQueriesTest(t *testing.T) (*FillQueries, sqlmock.Sqlmock) {
	mockDB, mock, _ := sqlmock.New()
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	dbInstance := &db.Database{DB: sqlxDB}

	return &FillQueries{
		db: dbInstance,
		sq: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, mock
}

func fillFixture() (*models.Product, *lifecycle.Fill) {
	product := &models.Product{
		ID:              "223e4567-e89b-12d3-a456-426614174000",
		Name:            "Сметана",
		ProductTypeName: "Молочные продукты",
	}
	expiration := time.Date(2024, 1, 8, 0, 0, 0, 0, time.Local)
	fill := &lifecycle.Fill{
		ProductID:      product.ID,
		Quantity:       5,
		Unit:           "л",
		ProductionDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		ExpirationDate: &expiration,
	}
	return product, fill
}

func TestFillQueries_FillContainer(t *testing.T) {
	product, fill := fillFixture()

	t.Run("Заполнение одной транзакцией", func(t *testing.T) {
		q, mock := setupFillQueriesTest(t)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO container_fills`).
			WithArgs(sqlmock.AnyArg(), int64(42), product.ID, product.Name, product.ProductTypeName,
				fill.Quantity, fill.Unit, fill.ProductionDate, fill.ExpirationDate,
				sqlmock.AnyArg(), "user-1", "Иван Петров").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE containers SET status = \$1`).
			WithArgs(models.StatusFull, product.ID, product.Name, fill.Quantity, fill.Unit,
				fill.ProductionDate, fill.ExpirationDate, sqlmock.AnyArg(), sqlmock.AnyArg(), int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := q.FillContainer(context.Background(), 42, product, fill, "user-1", "Иван Петров")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка записи истории откатывает транзакцию", func(t *testing.T) {
		q, mock := setupFillQueriesTest(t)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO container_fills`).
			WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		err := q.FillContainer(context.Background(), 42, product, fill, "user-1", "Иван Петров")

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка обновления тары откатывает транзакцию", func(t *testing.T) {
		q, mock := setupFillQueriesTest(t)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO container_fills`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE containers`).
			WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		err := q.FillContainer(context.Background(), 42, product, fill, "user-1", "Иван Петров")

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFillQueries_EmptyContainer(t *testing.T) {
	t.Run("Опустошение одной транзакцией", func(t *testing.T) {
		q, mock := setupFillQueriesTest(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE container_fills SET emptied_at = \$1, emptied_by = \$2, emptied_by_name = \$3 WHERE container_id = \$4 AND emptied_at IS NULL`).
			WithArgs(sqlmock.AnyArg(), "user-1", "Иван Петров", int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE containers SET status = \$1`).
			WithArgs(models.StatusEmpty, nil, nil, nil, nil, nil, nil, nil, sqlmock.AnyArg(), int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := q.EmptyContainer(context.Background(), 42, "user-1", "Иван Петров")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка закрытия записи откатывает транзакцию", func(t *testing.T) {
		q, mock := setupFillQueriesTest(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE container_fills`).
			WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		err := q.EmptyContainer(context.Background(), 42, "user-1", "Иван Петров")

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFillQueries_UpdateCurrentFill(t *testing.T) {
	product, fill := fillFixture()

	t.Run("Правка открытой записи истории", func(t *testing.T) {
		q, mock := setupFillQueriesTest(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE container_fills SET product_id = \$1.+WHERE container_id = \$8 AND emptied_at IS NULL`).
			WithArgs(product.ID, product.Name, product.ProductTypeName,
				fill.Quantity, fill.Unit, fill.ProductionDate, fill.ExpirationDate, int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE containers SET current_product_id = \$1`).
			WithArgs(product.ID, product.Name, fill.Quantity, fill.Unit,
				fill.ProductionDate, fill.ExpirationDate, sqlmock.AnyArg(), int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := q.UpdateCurrentFill(context.Background(), 42, product, fill)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFillQueries_GetContainerHistory(t *testing.T) {
	q, mock := setupFillQueriesTest(t)

	expectedSQL := `SELECT .+ FROM container_fills WHERE container_id = \$1 ORDER BY filled_at DESC`
	t.Run("История, новые записи первыми", func(t *testing.T) {
		filledAt := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "container_id", "product_id", "product_name", "product_type_name",
			"quantity", "unit", "production_date", "expiration_date",
			"filled_at", "filled_by", "filled_by_name",
			"emptied_at", "emptied_by", "emptied_by_name",
		}).AddRow(
			"fill-1", int64(42), "223e4567-e89b-12d3-a456-426614174000", "Сметана", "Молочные продукты",
			5.0, "л", filledAt, nil,
			filledAt, "user-1", "Иван Петров",
			nil, nil, nil,
		)

		mock.ExpectQuery(expectedSQL).
			WithArgs(int64(42)).
			WillReturnRows(rows)

		fills, err := q.GetContainerHistory(context.Background(), 42)

		assert.NoError(t, err)
		assert.Len(t, fills, 1)
		assert.Equal(t, "Сметана", fills[0].ProductName)
		assert.Nil(t, fills[0].EmptiedAt)
	})

	t.Run("Ошибка выполнения запроса", func(t *testing.T) {
		mock.ExpectQuery(expectedSQL).
			WithArgs(int64(42)).
			WillReturnError(errors.New("database error"))

		fills, err := q.GetContainerHistory(context.Background(), 42)

		assert.Error(t, err)
		assert.Nil(t, fills)
	})
}

func fillHistoryRows() *sqlmock.Rows {
	filledAt := time.Now()
	return sqlmock.NewRows([]string{
		"id", "container_id", "product_id", "product_name", "product_type_name",
		"quantity", "unit", "production_date", "expiration_date",
		"filled_at", "filled_by", "filled_by_name",
		"emptied_at", "emptied_by", "emptied_by_name",
	}).AddRow(
		"fill-1", int64(42), "223e4567-e89b-12d3-a456-426614174000", "Сметана", "Молочные продукты",
		5.0, "л", filledAt, nil,
		filledAt, "user-1", "Иван Петров",
		nil, nil, nil,
	)
}

func TestFillQueries_SearchFills(t *testing.T) {
	t.Run("Фильтр по продукту и активным заполнениям", func(t *testing.T) {
		q, mock := setupFillQueriesTest(t)

		expectedSQL := `SELECT .+ FROM container_fills cf WHERE cf.product_id = \$1 AND cf.emptied_at IS NULL ORDER BY cf.filled_at DESC`
		mock.ExpectQuery(expectedSQL).
			WithArgs("223e4567-e89b-12d3-a456-426614174000").
			WillReturnRows(fillHistoryRows())

		fills, err := q.SearchFills(context.Background(), models.SearchContainerFillsParams{
			ProductID:  "223e4567-e89b-12d3-a456-426614174000",
			OnlyActive: true,
		})

		assert.NoError(t, err)
		assert.Len(t, fills, 1)
		assert.Equal(t, "Сметана", fills[0].ProductName)
	})

	t.Run("Фильтр по категории продукта добавляет соединение", func(t *testing.T) {
		q, mock := setupFillQueriesTest(t)

		expectedSQL := `SELECT .+ FROM container_fills cf JOIN products p ON p.id = cf.product_id WHERE p.product_type_id = \$1`
		mock.ExpectQuery(expectedSQL).
			WithArgs("323e4567-e89b-12d3-a456-426614174000").
			WillReturnRows(fillHistoryRows())

		fills, err := q.SearchFills(context.Background(), models.SearchContainerFillsParams{
			ProductTypeID: "323e4567-e89b-12d3-a456-426614174000",
		})

		assert.NoError(t, err)
		assert.Len(t, fills, 1)
	})

	t.Run("Границы периода включают последний день", func(t *testing.T) {
		q, mock := setupFillQueriesTest(t)

		expectedSQL := `SELECT .+ WHERE cf.filled_at >= \$1::date AND cf.filled_at < \$2::date \+ INTERVAL '1 day' ORDER BY cf.filled_at DESC`
		mock.ExpectQuery(expectedSQL).
			WithArgs("2024-01-01", "2024-01-31").
			WillReturnRows(fillHistoryRows())

		_, err := q.SearchFills(context.Background(), models.SearchContainerFillsParams{
			FromDate: "2024-01-01",
			ToDate:   "2024-01-31",
		})

		assert.NoError(t, err)
	})

	t.Run("Пустой фильтр возвращает всю историю", func(t *testing.T) {
		q, mock := setupFillQueriesTest(t)

		expectedSQL := `SELECT .+ FROM container_fills cf ORDER BY cf.filled_at DESC`
		mock.ExpectQuery(expectedSQL).
			WillReturnRows(fillHistoryRows())

		fills, err := q.SearchFills(context.Background(), models.SearchContainerFillsParams{})

		assert.NoError(t, err)
		assert.Len(t, fills, 1)
	})
}
