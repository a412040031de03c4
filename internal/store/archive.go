package store

import "github.com/akyairhashvil/okrt/internal/models"

// ArchiveCompleted marks every objective at or above full progress as
// archived. It never unarchives, and applying it twice equals applying it
// once. The input slice is not modified.
func ArchiveCompleted(objs []models.Objective) []models.Objective {
	out := make([]models.Objective, len(objs))
	copy(out, objs)
	for i := range out {
		if !out[i].IsArchived && out[i].Progress() >= 1 {
			out[i].IsArchived = true
		}
	}
	return out
}
