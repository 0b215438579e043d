package employee

import (
	"encoding/json"
	"strings"

	"employees/inner/common"
)

const invalidAddressMessage = "Address must be a JSON array of strings!"

// NormalizeAddress превращает JSON-массив строк в одну строку через ", "
func NormalizeAddress(raw string) (string, error) {
	var parts []string
	if err := json.Unmarshal([]byte(raw), &parts); err != nil {
		return "", common.NewBadRequestError(invalidAddressMessage)
	}
	if parts == nil {
		return "", common.NewBadRequestError(invalidAddressMessage)
	}
	return strings.Join(parts, ", "), nil
}
