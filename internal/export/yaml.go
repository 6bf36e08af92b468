package export

import (
	"fmt"
	"os"

	"github.com/sadopc/pomo/internal/store"
	"gopkg.in/yaml.v3"
)

func ToYAML(tasks []string, intervals []store.Interval, path string) error {
	data, err := yaml.Marshal(newDocument(tasks, intervals))
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write yaml file: %w", err)
	}
	return nil
}
