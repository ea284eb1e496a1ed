package utils

import (
	"encoding/json"
	"os"
)

// Marshal generic struct to JSON
func MarshalToJSON[T any](input T) (string, error) {
	jsonData, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

// WriteJSONFile marshals the input to pretty JSON and writes it to path.
func WriteJSONFile[T any](path string, input T) error {
	jsonData, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// Write the JSON data to the file
	if _, err = file.Write(jsonData); err != nil {
		return err
	}
	return nil
}
