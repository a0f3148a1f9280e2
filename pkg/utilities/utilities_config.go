package utilities

import (
	"encoding/json"
	"os"
)

type JsonConfigObj[T any] interface {
	ConvertToDomain() T
}

// ReadConfig decodes the JSON file into T and converts it to its domain form.
// A missing file is reported with an error wrapping os.ErrNotExist so callers
// can fall back to ReadEmptyConfig.
func ReadConfig[T JsonConfigObj[U], U any](file string) (U, error) {
	var empty U

	fileContent, err := os.ReadFile(file)
	if err != nil {
		return empty, err
	}

	var config T
	err = json.Unmarshal(fileContent, &config)
	if err != nil {
		return empty, err
	}

	return config.ConvertToDomain(), nil
}

// ReadEmptyConfig converts the zero JSON object, leaving defaults to ConvertToDomain.
func ReadEmptyConfig[T JsonConfigObj[U], U any]() U {
	var config T
	return config.ConvertToDomain()
}
