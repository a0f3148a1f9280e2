package utilities

import (
	"encoding/json"
	"fmt"
)

// Serializable is anything that can be published as a message body.
type Serializable interface {
	Serialize() ([]byte, error)
}

func Serialize[T any](content T) ([]byte, error) {
	body, err := json.Marshal(content)
	if err != nil {
		return nil, fmt.Errorf("serialize %T: %w", content, err)
	}
	return body, nil
}
