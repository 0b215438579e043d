package employee

import (
	"fmt"
	"strconv"
	"strings"

	"employees/inner/common"

	sq "github.com/Masterminds/squirrel"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	defaultOrder = "id ASC"
)

// поля, по которым разрешена сортировка: имя в JSON -> колонка
var sortColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"email":     "email",
	"mobile":    "mobile",
	"birthDate": "birth_date",
	"address":   "address",
}

// ListQuery готовые к передаче в хранилище предикат, сортировка и пагинация
type ListQuery struct {
	Where   sq.Sqlizer
	OrderBy string
	Page    int
	Limit   uint64
	Offset  uint64
}

// BuildListQuery разбирает параметры запроса списка
func BuildListQuery(request ListRequest) (ListQuery, error) {
	page, err := parsePositive(request.Page, defaultPage)
	if err != nil {
		return ListQuery{}, common.NewBadRequestError("Invalid page parameter")
	}
	limit, err := parsePositive(request.Limit, defaultLimit)
	if err != nil {
		return ListQuery{}, common.NewBadRequestError("Invalid limit parameter")
	}

	orderBy, err := buildOrderBy(request.SortByField, request.ValueSort)
	if err != nil {
		return ListQuery{}, err
	}

	return ListQuery{
		Where:   keywordPredicate(request.Keyword),
		OrderBy: orderBy,
		Page:    page,
		Limit:   uint64(limit),
		Offset:  uint64(limit) * uint64(page-1),
	}, nil
}

// keywordPredicate подстрока keyword в id, name или email; nil - без фильтра
func keywordPredicate(keyword string) sq.Sqlizer {
	if keyword == "" {
		return nil
	}
	pattern := "%" + keyword + "%"
	return sq.Or{
		sq.Like{"id": pattern},
		sq.Like{"name": pattern},
		sq.Like{"email": pattern},
	}
}

// buildOrderBy допускает только поля из sortColumns и направления ASC/DESC.
// Неизвестное значение отклоняется с 400 и не передаётся в базу, где оно закончилось бы ошибкой 500
func buildOrderBy(field, direction string) (string, error) {
	if field == "" {
		return defaultOrder, nil
	}
	column, ok := sortColumns[field]
	if !ok {
		return "", common.NewBadRequestError(fmt.Sprintf("Invalid sortByField parameter: %s", field))
	}
	switch dir := strings.ToUpper(direction); dir {
	case "":
		return column + " ASC", nil
	case "ASC", "DESC":
		return column + " " + dir, nil
	default:
		return "", common.NewBadRequestError(fmt.Sprintf("Invalid valueSort parameter: %s", direction))
	}
}

// пустое значение заменяется значением по умолчанию, остальное должно быть целым >= 1
func parsePositive(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if value < 1 {
		return 0, fmt.Errorf("value %d is less than 1", value)
	}
	return value, nil
}

// TotalPage количество страниц для total записей
func TotalPage(total int64, limit uint64) int {
	if limit == 0 {
		return 0
	}
	return int((uint64(total) + limit - 1) / limit)
}
