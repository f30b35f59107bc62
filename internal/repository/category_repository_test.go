package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
)

func TestCategoryRepositoryList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT id, name, description, created_at\s+FROM categories\s+ORDER BY name`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_at"}).
			AddRow("k1", "Bệnh viện", "", now).
			AddRow("k2", "Trẻ em", "", now))

	list, err := NewCategoryRepository(db).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].ID != "k1" {
		t.Fatalf("unexpected categories %+v", list)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCategoryRepositoryGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`FROM categories\s+WHERE id = \$1`).WithArgs("k1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_at"}).
			AddRow("k1", "Trẻ em", "Bữa ăn cho trẻ em vùng cao", now))
	mock.ExpectQuery(`FROM categories\s+WHERE id = \$1`).WithArgs("k2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "created_at"}))

	repo := NewCategoryRepository(db)
	c, err := repo.GetByID(context.Background(), "k1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if c.Name != "Trẻ em" {
		t.Fatalf("unexpected category %+v", c)
	}
	if _, err := repo.GetByID(context.Background(), "k2"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
