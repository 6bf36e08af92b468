package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sadopc/pomo/internal/store"
)

// ToCSV writes one row per task followed by one row per interval. Task IDs
// are 1-based list positions.
func ToCSV(tasks []string, intervals []store.Interval, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"Type", "ID", "Mode", "Duration (s)", "Duration", "Completed", "Text"}); err != nil {
		return err
	}

	for i, task := range tasks {
		if err := w.Write([]string{"task", strconv.Itoa(i + 1), "", "", "", "", task}); err != nil {
			return err
		}
	}

	for _, iv := range intervals {
		row := []string{
			"interval",
			strconv.FormatInt(iv.ID, 10),
			iv.Mode,
			strconv.FormatInt(iv.Duration, 10),
			FormatDuration(iv.Duration),
			iv.CompletedAt.Local().Format(time.RFC3339),
			"",
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
