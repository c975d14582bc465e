package req

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode Разбирает JSON-тело запроса в структуру типа T
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return payload, fmt.Errorf("failed to decode request body: %w", err)
	}
	return payload, nil
}
