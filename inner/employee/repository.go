package employee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"employees/inner/common"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	tableName = "employees"

	pgUniqueViolation    = "23505"
	mysqlDuplicateEntry  = 1062
	notFoundMessageByIdF = "Employee with id: %s not found!"
)

var columns = []string{"id", "name", "email", "mobile", "birth_date", "address"}

type Repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) *Repository {
	return &Repository{db: database}
}

// запросы строятся с плейсхолдерами "?" и переписываются под драйвер
func (r *Repository) build(builder sq.Sqlizer) (string, []any, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("error building query: %w", err)
	}
	return r.db.Rebind(query), args, nil
}

func (r *Repository) BeginTransaction(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, nil)
}

func (r *Repository) FindMany(ctx context.Context, query ListQuery) ([]Entity, error) {
	builder := sq.Select(columns...).From(tableName)
	if query.Where != nil {
		builder = builder.Where(query.Where)
	}
	if query.OrderBy != "" {
		builder = builder.OrderBy(query.OrderBy)
	}
	if query.Limit > 0 {
		builder = builder.Limit(query.Limit).Offset(query.Offset)
	}

	sqlQuery, args, err := r.build(builder)
	if err != nil {
		return nil, err
	}
	var employees []Entity
	err = r.db.SelectContext(ctx, &employees, sqlQuery, args...)
	return employees, err
}

func (r *Repository) Count(ctx context.Context, query ListQuery) (count int64, err error) {
	builder := sq.Select("COUNT(*)").From(tableName)
	if query.Where != nil {
		builder = builder.Where(query.Where)
	}

	sqlQuery, args, err := r.build(builder)
	if err != nil {
		return 0, err
	}
	err = r.db.GetContext(ctx, &count, sqlQuery, args...)
	return count, err
}

func (r *Repository) FindById(ctx context.Context, id string) (employee Entity, err error) {
	sqlQuery, args, err := r.build(sq.Select(columns...).From(tableName).Where(sq.Eq{"id": id}))
	if err != nil {
		return Entity{}, err
	}
	err = r.db.GetContext(ctx, &employee, sqlQuery, args...)
	return employee, notFoundOr(err, id)
}

// FindByIdTx читает запись с блокировкой строки до конца транзакции
func (r *Repository) FindByIdTx(ctx context.Context, tx *sqlx.Tx, id string) (employee Entity, err error) {
	sqlQuery, args, err := r.build(sq.Select(columns...).From(tableName).Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"))
	if err != nil {
		return Entity{}, err
	}
	err = tx.GetContext(ctx, &employee, sqlQuery, args...)
	return employee, notFoundOr(err, id)
}

// ExistsByEmailTx проверяет, занят ли email; excludeId исключает запись из проверки
func (r *Repository) ExistsByEmailTx(ctx context.Context, tx *sqlx.Tx, email, excludeId string) (bool, error) {
	predicate := sq.And{sq.Eq{"email": email}}
	if excludeId != "" {
		predicate = append(predicate, sq.NotEq{"id": excludeId})
	}
	sqlQuery, args, err := r.build(sq.Select("COUNT(*)").From(tableName).Where(predicate))
	if err != nil {
		return false, err
	}
	var count int64
	if err = tx.GetContext(ctx, &count, sqlQuery, args...); err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindLastIdTx наибольший идентификатор с префиксом prefix, пустая строка если таких нет
func (r *Repository) FindLastIdTx(ctx context.Context, tx *sqlx.Tx, prefix string) (string, error) {
	sqlQuery, args, err := r.build(sq.Select("MAX(id)").From(tableName).Where(sq.Like{"id": prefix + "%"}))
	if err != nil {
		return "", err
	}
	var lastId sql.NullString
	if err = tx.GetContext(ctx, &lastId, sqlQuery, args...); err != nil {
		return "", err
	}
	return lastId.String, nil
}

func (r *Repository) AddTx(ctx context.Context, tx *sqlx.Tx, employee *Entity) error {
	sqlQuery, args, err := r.build(sq.Insert(tableName).Columns(columns...).Values(
		employee.Id, employee.Name, employee.Email, employee.Mobile, employee.BirthDate, employee.Address,
	))
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, sqlQuery, args...)
	return translateError(err)
}

func (r *Repository) UpdateTx(ctx context.Context, tx *sqlx.Tx, employee *Entity) error {
	sqlQuery, args, err := r.build(sq.Update(tableName).
		Set("name", employee.Name).
		Set("email", employee.Email).
		Set("mobile", employee.Mobile).
		Set("birth_date", employee.BirthDate).
		Set("address", employee.Address).
		Where(sq.Eq{"id": employee.Id}))
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, sqlQuery, args...)
	return translateError(err)
}

func (r *Repository) DeleteById(ctx context.Context, id string) error {
	sqlQuery, args, err := r.build(sq.Delete(tableName).Where(sq.Eq{"id": id}))
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, sqlQuery, args...)
	return err
}

func notFoundOr(err error, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFoundError(id)
	}
	return err
}

func notFoundError(id string) error {
	return common.NewNotFoundError(fmt.Sprintf(notFoundMessageByIdF, id))
}

// translateError приводит нарушение уникальности любого из драйверов к DuplicateKeyError
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
		return common.DuplicateKeyError{Field: constraintField(pqErr.Constraint)}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return common.DuplicateKeyError{Field: constraintField(pgErr.ConstraintName)}
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		// Duplicate entry 'x' for key 'employees.email'
		_, key, _ := strings.Cut(mysqlErr.Message, "for key ")
		return common.DuplicateKeyError{Field: constraintField(strings.Trim(key, "'"))}
	}

	return err
}

func constraintField(constraint string) string {
	name := strings.ToLower(constraint)
	switch {
	case strings.Contains(name, "email"):
		return "email"
	case strings.Contains(name, "pkey"), name == "primary", strings.HasSuffix(name, ".primary"):
		return "id"
	default:
		return constraint
	}
}
