package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BassamElsayed2/e-commerceCp/models"
)

func newMockGorm(t *testing.T) (sqlmock.Sqlmock, *gorm.DB) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to open gorm over sqlmock")

	return mock, gormDB
}

type fakeImageStore struct {
	removed   []string
	failKeys  map[string]bool
	uploadURL string
	uploadErr error
}

func (f *fakeImageStore) UploadFile(_ context.Context, _ multipart.File, _, _ string) (string, error) {
	return f.uploadURL, f.uploadErr
}

func (f *fakeImageStore) UploadBase64(_ context.Context, _, _, _ string) (string, error) {
	return f.uploadURL, f.uploadErr
}

func (f *fakeImageStore) Remove(_ context.Context, publicID string) error {
	if f.failKeys[publicID] {
		return errors.New("storage unavailable")
	}
	f.removed = append(f.removed, publicID)
	return nil
}

func TestProductService_Create_AttributeFailureIsWarning(t *testing.T) {
	mock, db := newMockGorm(t)
	svc := NewProductService(db, &fakeImageStore{})

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "product_attributes"`).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	req := models.ProductRequest{
		NameAr:     "حذاء",
		NameEn:     "Shoe",
		Price:      99.99,
		CategoryID: uuid.New(),
		Attributes: []models.AttributeInput{{Name: "اللون", Value: "أسود"}},
	}

	product, warnings, err := svc.Create(context.Background(), req)

	require.NoError(t, err, "attribute failure must not fail the create")
	require.NotNil(t, product)
	assert.Equal(t, "حذاء", product.NameAr)
	assert.Empty(t, product.Attributes)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "attributes were not saved")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductService_Create_WithAttributes(t *testing.T) {
	mock, db := newMockGorm(t)
	svc := NewProductService(db, &fakeImageStore{})

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "product_attributes"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	req := models.ProductRequest{
		NameAr:     "حذاء",
		NameEn:     "Shoe",
		Price:      50,
		CategoryID: uuid.New(),
		Attributes: []models.AttributeInput{
			{Name: "اللون", Value: "أسود"},
			{Name: "المقاس", Value: "42"},
		},
	}

	product, warnings, err := svc.Create(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Empty(t, warnings)
	require.Len(t, product.Attributes, 2)
	assert.Equal(t, product.ID, product.Attributes[0].ProductID)
	assert.Equal(t, "اللون", product.Attributes[0].Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductService_Create_RowInsertFailureAborts(t *testing.T) {
	mock, db := newMockGorm(t)
	svc := NewProductService(db, &fakeImageStore{})

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "products"`).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	req := models.ProductRequest{
		NameAr:     "حذاء",
		NameEn:     "Shoe",
		Price:      50,
		CategoryID: uuid.New(),
		Attributes: []models.AttributeInput{{Name: "اللون", Value: "أسود"}},
	}

	product, warnings, err := svc.Create(context.Background(), req)

	require.Error(t, err)
	assert.Nil(t, product)
	assert.Empty(t, warnings)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductService_Update_AttributeStepFailureIsWarning(t *testing.T) {
	mock, db := newMockGorm(t)
	svc := NewProductService(db, &fakeImageStore{})

	productID := uuid.New()
	categoryID := uuid.New()
	productRow := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "name_ar", "name_en", "price", "category_id", "images"}).
			AddRow(productID, "قديم", "Old", 10.0, categoryID, []byte(`[]`))
	}

	mock.ExpectQuery(`SELECT \* FROM "products"`).WillReturnRows(productRow())

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "products" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "product_attributes"`).
		WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	mock.ExpectQuery(`SELECT \* FROM "products"`).WillReturnRows(productRow())
	mock.ExpectQuery(`SELECT \* FROM "product_attributes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "name", "value"}))

	newName := "جديد"
	attrs := []models.AttributeInput{{Name: "اللون", Value: "أحمر"}}
	product, warnings, err := svc.Update(context.Background(), productID, models.UpdateProductRequest{
		NameAr:     &newName,
		Attributes: &attrs,
	})

	require.NoError(t, err, "attribute delete failure must not fail the update")
	require.NotNil(t, product)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "old attributes were not removed")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductService_Update_NotFound(t *testing.T) {
	mock, db := newMockGorm(t)
	svc := NewProductService(db, &fakeImageStore{})

	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnError(gorm.ErrRecordNotFound)

	newName := "جديد"
	product, warnings, err := svc.Update(context.Background(), uuid.New(), models.UpdateProductRequest{NameAr: &newName})

	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	assert.Nil(t, product)
	assert.Empty(t, warnings)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductService_Delete_ImageFetchFailureAborts(t *testing.T) {
	mock, db := newMockGorm(t)
	store := &fakeImageStore{}
	svc := NewProductService(db, store)

	mock.ExpectQuery(`SELECT "id","images" FROM "products"`).
		WillReturnError(errors.New("connection refused"))

	warnings, err := svc.Delete(context.Background(), uuid.New())

	require.Error(t, err, "image list fetch failure must abort the deletion")
	assert.Empty(t, warnings)
	assert.Empty(t, store.removed, "no image removal may run when the fetch fails")

	require.NoError(t, mock.ExpectationsWereMet(), "the row delete must never be issued")
}

func TestProductService_Delete_PartialImageRemoval(t *testing.T) {
	mock, db := newMockGorm(t)
	store := &fakeImageStore{failKeys: map[string]bool{"products/2-bbb": true}}
	svc := NewProductService(db, store)

	productID := uuid.New()
	images := []byte(`["https://res.cloudinary.com/demo/image/upload/v1/products/1-aaa.jpg",` +
		`"https://res.cloudinary.com/demo/image/upload/v1/products/2-bbb.jpg",` +
		`"https://res.cloudinary.com/demo/image/upload/v1/products/3-ccc.jpg"]`)

	mock.ExpectQuery(`SELECT "id","images" FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "images"}).AddRow(productID, images))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "products"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	warnings, err := svc.Delete(context.Background(), productID)

	require.NoError(t, err, "a single image removal failure must not stop the deletion")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "products/2-bbb")
	assert.Equal(t, []string{"products/1-aaa", "products/3-ccc"}, store.removed)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductService_List_WithFilters(t *testing.T) {
	mock, db := newMockGorm(t)
	svc := NewProductService(db, &fakeImageStore{})

	categoryID := uuid.New()
	productID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery(`SELECT \* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name_ar", "name_en", "price", "category_id", "images"}).
			AddRow(productID, "حذاء", "Shoe", 99.99, categoryID, []byte(`[]`)))
	mock.ExpectQuery(`SELECT \* FROM "product_attributes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "product_id", "name", "value"}).
			AddRow(uuid.New(), productID, "اللون", "أسود"))

	bestSeller := true
	products, total, err := svc.List(context.Background(), 1, 10, models.ProductFilters{
		CategoryID:   &categoryID,
		Search:       "حذاء",
		IsBestSeller: &bestSeller,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
	require.Len(t, products, 1)
	assert.Equal(t, "حذاء", products[0].NameAr)
	require.Len(t, products[0].Attributes, 1)
	assert.Equal(t, "اللون", products[0].Attributes[0].Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDateWindowCutoff(t *testing.T) {
	now := time.Date(2024, time.May, 15, 14, 30, 0, 0, time.UTC)

	cutoff, ok := dateWindowCutoff(now, "today")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC), cutoff)

	cutoff, ok = dateWindowCutoff(now, "7days")
	require.True(t, ok)
	assert.Equal(t, now.AddDate(0, 0, -7), cutoff)

	cutoff, ok = dateWindowCutoff(now, "month")
	require.True(t, ok)
	assert.Equal(t, now.AddDate(0, -1, 0), cutoff)

	cutoff, ok = dateWindowCutoff(now, "year")
	require.True(t, ok)
	assert.Equal(t, now.AddDate(-1, 0, 0), cutoff)

	_, ok = dateWindowCutoff(now, "")
	assert.False(t, ok)

	_, ok = dateWindowCutoff(now, "fortnight")
	assert.False(t, ok)
}
