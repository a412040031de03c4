package store

import (
	"testing"

	"github.com/akyairhashvil/okrt/internal/models"
	"github.com/akyairhashvil/okrt/internal/testutil"
)

func TestAgendaPendingFirstAndSkipsArchived(t *testing.T) {
	today := testutil.Epoch
	done := testutil.NewTask().WithTitle("done").WithRecurrence(models.RecurDaily).CompletedOn(today).Build()
	pending := testutil.NewTask().WithTitle("pending").WithRecurrence(models.RecurDaily).Build()
	tomorrow := testutil.NewTask().WithTitle("tomorrow").WithDate(today.AddDate(0, 0, 1)).Build()
	kr := testutil.NewKeyResult().WithTasks(done, pending, tomorrow).Build()
	active := testutil.NewObjective().WithTitle("Active").WithKeyResults(kr).Build()

	hidden := testutil.NewTask().WithTitle("hidden").WithRecurrence(models.RecurDaily).Build()
	archived := testutil.NewObjective().Archived().
		WithKeyResults(testutil.NewKeyResult().WithTasks(hidden).Build()).Build()

	items := Agenda([]models.Objective{archived, active}, today, today)
	if len(items) != 2 {
		t.Fatalf("expected 2 agenda items, got %d", len(items))
	}
	if items[0].Task.Title != "pending" || items[0].Completed {
		t.Fatalf("expected pending first, got %+v", items[0])
	}
	if items[1].Task.Title != "done" || !items[1].Completed {
		t.Fatalf("expected completed last, got %+v", items[1])
	}
	if items[0].ObjectiveTitle != "Active" {
		t.Fatalf("unexpected objective title %q", items[0].ObjectiveTitle)
	}
}
