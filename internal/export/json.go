package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sadopc/pomo/internal/store"
)

func ToJSON(tasks []string, intervals []store.Interval, path string) error {
	data, err := json.MarshalIndent(newDocument(tasks, intervals), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
