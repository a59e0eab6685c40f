package ticket

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	yamlv3 "gopkg.in/yaml.v3"
)

// LoadFile reads a batch of tickets from a JSON or YAML file. The file must
// contain an array of ticket objects; tickets without an ID are assigned one.
func LoadFile(path string) ([]Ticket, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var tickets []Ticket
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := yamlv3.Unmarshal(data, &tickets); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &tickets); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	for i := range tickets {
		if tickets[i].ID == uuid.Nil {
			tickets[i].ID = uuid.New()
		}
	}
	return tickets, nil
}
