package employee

import (
	"context"
	"errors"
	"testing"

	"employees/inner/common"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var employeeRows = []string{"id", "name", "email", "mobile", "birth_date", "address"}

func newMockRepository(t *testing.T, driverName string) (*Repository, sqlmock.Sqlmock) {
	db, sqlMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, sqlMock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewRepository(sqlx.NewDb(db, driverName)), sqlMock
}

func TestRepository_FindMany(t *testing.T) {
	t.Run("postgres placeholders", func(t *testing.T) {
		repo, sqlMock := newMockRepository(t, "postgres")
		query, err := BuildListQuery(ListRequest{Keyword: "jo", SortByField: "name", ValueSort: "desc", Page: "2", Limit: "5"})
		require.NoError(t, err)

		sqlMock.ExpectQuery("SELECT id, name, email, mobile, birth_date, address FROM employees " +
			"WHERE (id LIKE $1 OR name LIKE $2 OR email LIKE $3) ORDER BY name DESC LIMIT 5 OFFSET 5").
			WithArgs("%jo%", "%jo%", "%jo%").
			WillReturnRows(sqlmock.NewRows(employeeRows).
				AddRow("24070001", "John", "john@example.com", "0800", "1990-01-01", "Street 1"))

		employees, err := repo.FindMany(context.Background(), query)

		require.NoError(t, err)
		require.Len(t, employees, 1)
		assert.Equal(t, "24070001", employees[0].Id)
		assert.Equal(t, "1990-01-01", employees[0].BirthDate)
	})

	t.Run("mysql placeholders", func(t *testing.T) {
		repo, sqlMock := newMockRepository(t, "mysql")
		query, err := BuildListQuery(ListRequest{})
		require.NoError(t, err)

		sqlMock.ExpectQuery("SELECT id, name, email, mobile, birth_date, address FROM employees ORDER BY id ASC LIMIT 10 OFFSET 0").
			WillReturnRows(sqlmock.NewRows(employeeRows))

		employees, err := repo.FindMany(context.Background(), query)

		require.NoError(t, err)
		assert.Empty(t, employees)
	})
}

func TestRepository_Count(t *testing.T) {
	repo, sqlMock := newMockRepository(t, "pgx")
	query, err := BuildListQuery(ListRequest{Keyword: "jo"})
	require.NoError(t, err)

	sqlMock.ExpectQuery("SELECT COUNT(*) FROM employees WHERE (id LIKE $1 OR name LIKE $2 OR email LIKE $3)").
		WithArgs("%jo%", "%jo%", "%jo%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.Count(context.Background(), query)

	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestRepository_FindById(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, sqlMock := newMockRepository(t, "postgres")
		sqlMock.ExpectQuery("SELECT id, name, email, mobile, birth_date, address FROM employees WHERE id = $1").
			WithArgs("24070001").
			WillReturnRows(sqlmock.NewRows(employeeRows).
				AddRow("24070001", "John", "john@example.com", "0800", "1990-01-01", "Street 1"))

		employee, err := repo.FindById(context.Background(), "24070001")

		require.NoError(t, err)
		assert.Equal(t, "John", employee.Name)
	})

	t.Run("not found", func(t *testing.T) {
		repo, sqlMock := newMockRepository(t, "postgres")
		sqlMock.ExpectQuery("SELECT id, name, email, mobile, birth_date, address FROM employees WHERE id = $1").
			WithArgs("24070002").
			WillReturnRows(sqlmock.NewRows(employeeRows))

		_, err := repo.FindById(context.Background(), "24070002")

		var notFound common.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "Employee with id: 24070002 not found!", notFound.Message)
	})
}

func TestRepository_TxQueries(t *testing.T) {
	repo, sqlMock := newMockRepository(t, "postgres")
	entity := &Entity{Id: "24070002", Name: "Jane", Email: "jane@example.com", Mobile: "0811", BirthDate: "1991-02-02", Address: "Street 2"}

	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery("SELECT COUNT(*) FROM employees WHERE (email = $1 AND id <> $2)").
		WithArgs("jane@example.com", "24070001").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	sqlMock.ExpectQuery("SELECT MAX(id) FROM employees WHERE id LIKE $1").
		WithArgs("2407%").
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow("24070001"))
	sqlMock.ExpectExec("INSERT INTO employees (id,name,email,mobile,birth_date,address) VALUES ($1,$2,$3,$4,$5,$6)").
		WithArgs("24070002", "Jane", "jane@example.com", "0811", "1991-02-02", "Street 2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectQuery("SELECT id, name, email, mobile, birth_date, address FROM employees WHERE id = $1 FOR UPDATE").
		WithArgs("24070002").
		WillReturnRows(sqlmock.NewRows(employeeRows).
			AddRow("24070002", "Jane", "jane@example.com", "0811", "1991-02-02", "Street 2"))
	sqlMock.ExpectExec("UPDATE employees SET name = $1, email = $2, mobile = $3, birth_date = $4, address = $5 WHERE id = $6").
		WithArgs("Jane", "jane@example.com", "0811", "1991-02-02", "Street 2", "24070002").
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectCommit()

	ctx := context.Background()
	tx, err := repo.BeginTransaction(ctx)
	require.NoError(t, err)

	exists, err := repo.ExistsByEmailTx(ctx, tx, "jane@example.com", "24070001")
	require.NoError(t, err)
	assert.False(t, exists)

	lastId, err := repo.FindLastIdTx(ctx, tx, "2407")
	require.NoError(t, err)
	assert.Equal(t, "24070001", lastId)

	require.NoError(t, repo.AddTx(ctx, tx, entity))

	found, err := repo.FindByIdTx(ctx, tx, "24070002")
	require.NoError(t, err)
	assert.Equal(t, *entity, found)

	require.NoError(t, repo.UpdateTx(ctx, tx, entity))
	require.NoError(t, tx.Commit())
}

func TestRepository_FindLastIdTx_EmptyMonth(t *testing.T) {
	repo, sqlMock := newMockRepository(t, "mysql")

	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery("SELECT MAX(id) FROM employees WHERE id LIKE ?").
		WithArgs("2408%").
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))
	sqlMock.ExpectRollback()

	tx, err := repo.BeginTransaction(context.Background())
	require.NoError(t, err)

	lastId, err := repo.FindLastIdTx(context.Background(), tx, "2408")
	require.NoError(t, err)
	assert.Equal(t, "", lastId)
	require.NoError(t, tx.Rollback())
}

func TestRepository_ExistsByEmailTx_WithoutExclusion(t *testing.T) {
	repo, sqlMock := newMockRepository(t, "postgres")

	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery("SELECT COUNT(*) FROM employees WHERE (email = $1)").
		WithArgs("john@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	sqlMock.ExpectRollback()

	tx, err := repo.BeginTransaction(context.Background())
	require.NoError(t, err)

	exists, err := repo.ExistsByEmailTx(context.Background(), tx, "john@example.com", "")
	require.NoError(t, err)
	assert.True(t, exists)
	require.NoError(t, tx.Rollback())
}

func TestRepository_DeleteById(t *testing.T) {
	repo, sqlMock := newMockRepository(t, "postgres")
	sqlMock.ExpectExec("DELETE FROM employees WHERE id = $1").
		WithArgs("24070001").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.DeleteById(context.Background(), "24070001"))
}

func TestRepository_AddTx_DuplicateKey(t *testing.T) {
	repo, sqlMock := newMockRepository(t, "postgres")

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO employees (id,name,email,mobile,birth_date,address) VALUES ($1,$2,$3,$4,$5,$6)").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "employees_pkey"})
	sqlMock.ExpectRollback()

	tx, err := repo.BeginTransaction(context.Background())
	require.NoError(t, err)

	err = repo.AddTx(context.Background(), tx, &Entity{Id: "24070001"})
	assert.Equal(t, common.DuplicateKeyError{Field: "id"}, err)
	require.NoError(t, tx.Rollback())
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "pq email", err: &pq.Error{Code: "23505", Constraint: "employees_email_key"}, want: common.DuplicateKeyError{Field: "email"}},
		{name: "pq primary key", err: &pq.Error{Code: "23505", Constraint: "employees_pkey"}, want: common.DuplicateKeyError{Field: "id"}},
		{name: "pgx email", err: &pgconn.PgError{Code: "23505", ConstraintName: "employees_email_key"}, want: common.DuplicateKeyError{Field: "email"}},
		{name: "mysql email", err: &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@b.co' for key 'employees.email'"}, want: common.DuplicateKeyError{Field: "email"}},
		{name: "mysql primary", err: &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '24070001' for key 'PRIMARY'"}, want: common.DuplicateKeyError{Field: "id"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translateError(tt.err))
		})
	}

	other := errors.New("connection reset")
	assert.Equal(t, other, translateError(other))

	notUnique := &pq.Error{Code: "23502"}
	assert.Equal(t, error(notUnique), translateError(notUnique))
}
