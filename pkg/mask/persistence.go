package mask

import (
	"encoding/gob"
	"fmt"
	"os"
)

// SaveToFile saves the mask to a binary file
func (m *Mask) SaveToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := gob.NewEncoder(file)
	if err := encoder.Encode(m); err != nil {
		return fmt.Errorf("failed to encode mask: %w", err)
	}

	return nil
}

// LoadFromFile loads a mask from a binary file
func LoadFromFile(filename string) (*Mask, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var m Mask
	decoder := gob.NewDecoder(file)
	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode mask: %w", err)
	}

	if len(m.Data) != m.Width*m.Height {
		return nil, fmt.Errorf("mask data has %d bytes, want %d", len(m.Data), m.Width*m.Height)
	}

	return &m, nil
}
