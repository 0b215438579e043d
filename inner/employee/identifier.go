package employee

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

const (
	idLength     = 8
	prefixLength = 4
	maxSequence  = 9999
)

// ErrSequenceExhausted за месяц выдано 9999 идентификаторов
var ErrSequenceExhausted = errors.New("employee id sequence exhausted for the current month")

// IdPrefix возвращает префикс YYMM для момента now
func IdPrefix(now time.Time) string {
	return fmt.Sprintf("%02d%02d", now.Year()%100, int(now.Month()))
}

// NextId выдаёт следующий идентификатор YYMMNNNN.
// lastId - наибольший идентификатор текущего месяца или пустая строка.
// Если префикс lastId не совпадает с текущим месяцем, нумерация начинается с 0001
func NextId(now time.Time, lastId string) (string, error) {
	prefix := IdPrefix(now)
	if len(lastId) != idLength || lastId[:prefixLength] != prefix {
		return prefix + "0001", nil
	}

	sequence, err := strconv.Atoi(lastId[prefixLength:])
	if err != nil {
		return "", fmt.Errorf("malformed employee id %q: %w", lastId, err)
	}
	sequence++
	if sequence > maxSequence {
		return "", ErrSequenceExhausted
	}
	return fmt.Sprintf("%s%04d", prefix, sequence), nil
}

// IsValidId проверяет формат идентификатора: ровно 8 цифр
func IsValidId(id string) bool {
	if len(id) != idLength {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
