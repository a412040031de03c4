package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/akyairhashvil/okrt/internal/models"
	"gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Export writes the document in format. JSON output matches the persisted
// document; YAML output adds derived values for reading.
func Export(w io.Writer, objs []models.Objective, format string, now time.Time) error {
	switch strings.ToLower(format) {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(objs)
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(exportDocument(objs, now)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

type exportObjective struct {
	ID          string            `yaml:"id"`
	Title       string            `yaml:"title"`
	Description string            `yaml:"description,omitempty"`
	Icon        string            `yaml:"icon"`
	StartDate   time.Time         `yaml:"startDate"`
	DueDate     time.Time         `yaml:"dueDate"`
	IsCompleted bool              `yaml:"isCompleted"`
	IsArchived  bool              `yaml:"isArchived"`
	Progress    float64           `yaml:"progress"`
	Health      string            `yaml:"health"`
	KeyResults  []exportKeyResult `yaml:"keyResults"`
}

type exportKeyResult struct {
	ID           string               `yaml:"id"`
	Title        string               `yaml:"title"`
	Type         string               `yaml:"type"`
	CurrentValue float64              `yaml:"currentValue"`
	TargetValue  float64              `yaml:"targetValue"`
	Unit         string               `yaml:"unit"`
	Weight       float64              `yaml:"weight"`
	Progress     float64              `yaml:"progress"`
	Tasks        []models.Task        `yaml:"tasks,omitempty"`
	Logs         []models.ActivityLog `yaml:"logs,omitempty"`
}

func exportDocument(objs []models.Objective, now time.Time) []exportObjective {
	out := make([]exportObjective, 0, len(objs))
	for _, o := range objs {
		eo := exportObjective{
			ID:          o.ID,
			Title:       o.Title,
			Description: o.Description,
			Icon:        o.Icon,
			StartDate:   o.StartDate,
			DueDate:     o.DueDate,
			IsCompleted: o.IsCompleted,
			IsArchived:  o.IsArchived,
			Progress:    o.Progress(),
			Health:      string(o.HealthAt(now)),
		}
		for _, kr := range o.KeyResults {
			eo.KeyResults = append(eo.KeyResults, exportKeyResult{
				ID:           kr.ID,
				Title:        kr.Title,
				Type:         string(kr.Type),
				CurrentValue: kr.CurrentValue,
				TargetValue:  kr.TargetValue,
				Unit:         kr.Unit,
				Weight:       kr.Weight,
				Progress:     kr.Progress(),
				Tasks:        kr.Tasks,
				Logs:         kr.Logs,
			})
		}
		out = append(out, eo)
	}
	return out
}
