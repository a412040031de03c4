package store

import (
	"context"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/akyairhashvil/okrt/internal/models"
	"github.com/akyairhashvil/okrt/internal/testutil"
)

func setupTestStore(t *testing.T, objs ...models.Objective) (*Store, *MemoryBackend, *time.Time) {
	t.Helper()
	now := testutil.Epoch
	var data []byte
	if len(objs) > 0 {
		var err error
		data, err = json.Marshal(objs)
		if err != nil {
			t.Fatalf("marshal fixture failed: %v", err)
		}
	}
	backend := NewMemoryBackend(data)
	s := Open(context.Background(), backend, WithClock(testutil.Clock(&now)), WithSeed(nil))
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Logf("store close failed: %v", err)
		}
	})
	return s, backend, &now
}

func decodeSaved(t *testing.T, b *MemoryBackend) []models.Objective {
	t.Helper()
	var objs []models.Objective
	if err := json.Unmarshal(b.Data(), &objs); err != nil {
		t.Fatalf("decode saved document failed: %v", err)
	}
	return objs
}

func TestOpenSeedsWhenEmpty(t *testing.T) {
	backend := NewMemoryBackend(nil)
	s := Open(context.Background(), backend, WithClock(func() time.Time { return testutil.Epoch }))
	if got := len(s.Objectives()); got != 3 {
		t.Fatalf("expected 3 sample objectives, got %d", got)
	}
	if backend.Saves() != 1 {
		t.Fatalf("expected seeded document to be saved once, got %d", backend.Saves())
	}
}

func TestOpenSeedsOnCorruptDocument(t *testing.T) {
	backend := NewMemoryBackend([]byte("{not json"))
	s := Open(context.Background(), backend)
	if got := len(s.Objectives()); got != 3 {
		t.Fatalf("expected sample data after corrupt document, got %d", got)
	}
}

func TestOpenLoadsDocument(t *testing.T) {
	o := testutil.NewObjective().WithTitle("Read more").Build()
	s, _, _ := setupTestStore(t, o)
	got, ok := s.Objective(o.ID)
	if !ok || got.Title != "Read more" {
		t.Fatalf("Objective() = %+v, %v", got, ok)
	}
}

func TestOpenArchivesCompletedDocument(t *testing.T) {
	kr := testutil.NewKeyResult().WithValues(10, 10).Build()
	o := testutil.NewObjective().WithKeyResults(kr).Build()
	s, backend, _ := setupTestStore(t, o)
	got, _ := s.Objective(o.ID)
	if !got.IsArchived {
		t.Fatalf("expected completed objective archived on load")
	}
	if saved := decodeSaved(t, backend); !saved[0].IsArchived {
		t.Fatalf("expected archive flag persisted")
	}
}

func TestAddAndDelete(t *testing.T) {
	ctx := context.Background()
	s, backend, _ := setupTestStore(t)
	a := testutil.NewObjective().WithTitle("A").Build()
	b := testutil.NewObjective().WithTitle("B").Build()
	c := testutil.NewObjective().WithTitle("C").Build()
	s.Add(ctx, a)
	s.Add(ctx, b)
	s.Add(ctx, c)
	if got := len(decodeSaved(t, backend)); got != 3 {
		t.Fatalf("expected 3 saved objectives, got %d", got)
	}
	if !s.Delete(ctx, b.ID) {
		t.Fatalf("Delete() reported nothing removed")
	}
	if s.Delete(ctx, "missing") {
		t.Fatalf("Delete(missing) reported a change")
	}
	if !s.DeleteAt(ctx, 0, 0, 9) {
		t.Fatalf("DeleteAt() reported nothing removed")
	}
	objs := s.Objectives()
	if len(objs) != 1 || objs[0].ID != c.ID {
		t.Fatalf("unexpected remaining objectives %+v", objs)
	}
}

func TestObjectivesReturnsCopies(t *testing.T) {
	kr := testutil.NewKeyResult().WithValues(1, 10).Build()
	o := testutil.NewObjective().WithKeyResults(kr).Build()
	s, _, _ := setupTestStore(t, o)
	objs := s.Objectives()
	objs[0].KeyResults[0].CurrentValue = 99
	got, _ := s.Objective(o.ID)
	if got.KeyResults[0].CurrentValue != 1 {
		t.Fatalf("store state changed through a returned copy")
	}
}

func TestUpdateKeyResultValueLogging(t *testing.T) {
	ctx := context.Background()
	kr := testutil.NewKeyResult().WithValues(1, 10).Build()
	o := testutil.NewObjective().WithKeyResults(kr).Build()
	s, _, _ := setupTestStore(t, o)

	s.UpdateKeyResultValue(ctx, o.ID, kr.ID, 1.0005, "")
	got, _ := s.Objective(o.ID)
	if n := len(got.KeyResults[0].Logs); n != 0 {
		t.Fatalf("sub-threshold change logged %d entries", n)
	}
	if got.KeyResults[0].CurrentValue != 1.0005 {
		t.Fatalf("sub-threshold change not applied")
	}

	s.UpdateKeyResultValue(ctx, o.ID, kr.ID, 4, "")
	s.UpdateKeyResultValue(ctx, o.ID, kr.ID, 4, "Read chapter")
	got, _ = s.Objective(o.ID)
	logs := got.KeyResults[0].Logs
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs))
	}
	if logs[0].Message != "Read chapter" || logs[1].Message != UpdateProgressMessage {
		t.Fatalf("logs not newest first: %q, %q", logs[0].Message, logs[1].Message)
	}
	if logs[1].PreviousValue != 1.0005 || logs[1].NewValue != 4 {
		t.Fatalf("unexpected auto log %+v", logs[1])
	}
}

func TestMutationsUnknownIDsAreNoops(t *testing.T) {
	ctx := context.Background()
	kr := testutil.NewKeyResult().Build()
	o := testutil.NewObjective().WithKeyResults(kr).Build()
	s, backend, _ := setupTestStore(t, o)
	saves := backend.Saves()

	if s.UpdateKeyResultValue(ctx, "nope", kr.ID, 3, "") {
		t.Fatalf("expected unknown objective to be a no-op")
	}
	if s.UpdateKeyResultValue(ctx, o.ID, "nope", 3, "") {
		t.Fatalf("expected unknown key result to be a no-op")
	}
	if s.ToggleTask(ctx, o.ID, kr.ID, "nope", testutil.Epoch) {
		t.Fatalf("expected unknown task to be a no-op")
	}
	if s.Edit(ctx, "nope", func(*models.Objective) {}) {
		t.Fatalf("expected unknown edit to be a no-op")
	}
	if backend.Saves() != saves {
		t.Fatalf("no-op mutations must not persist")
	}
}

func TestToggleTaskThroughStore(t *testing.T) {
	ctx := context.Background()
	task := testutil.NewTask().WithTitle("Jog").WithRecurrence(models.RecurDaily).WithWeight(1).Build()
	kr := testutil.NewKeyResult().WithValues(0, 3).WithTasks(task).Build()
	o := testutil.NewObjective().WithKeyResults(kr).Build()
	s, _, now := setupTestStore(t, o)

	occurrence := now.AddDate(0, 0, 1)
	s.ToggleTask(ctx, o.ID, kr.ID, task.ID, occurrence)
	got, _ := s.Objective(o.ID)
	if got.KeyResults[0].CurrentValue != 1 || !got.KeyResults[0].Tasks[0].CompletedOn(occurrence) {
		t.Fatalf("toggle on did not apply: %+v", got.KeyResults[0])
	}
	s.ToggleTask(ctx, o.ID, kr.ID, task.ID, occurrence)
	got, _ = s.Objective(o.ID)
	if math.Abs(got.KeyResults[0].CurrentValue) > 1e-9 || len(got.KeyResults[0].Logs) != 0 {
		t.Fatalf("toggle off did not roll back: %+v", got.KeyResults[0])
	}
}

func TestArchiveCompletedIdempotent(t *testing.T) {
	done := testutil.NewObjective().WithKeyResults(testutil.NewKeyResult().WithValues(5, 5).Build()).Build()
	partial := testutil.NewObjective().WithKeyResults(testutil.NewKeyResult().WithValues(2, 5).Build()).Build()
	in := []models.Objective{done, partial}

	once := ArchiveCompleted(in)
	twice := ArchiveCompleted(once)
	if in[0].IsArchived {
		t.Fatalf("ArchiveCompleted modified its input")
	}
	for i := range once {
		if once[i].IsArchived != twice[i].IsArchived {
			t.Fatalf("archive pass not idempotent at %d", i)
		}
	}
	if !once[0].IsArchived || once[1].IsArchived {
		t.Fatalf("unexpected archive flags %v %v", once[0].IsArchived, once[1].IsArchived)
	}
}

func TestArchiveIsOneWay(t *testing.T) {
	ctx := context.Background()
	kr := testutil.NewKeyResult().WithValues(4, 5).Build()
	o := testutil.NewObjective().WithKeyResults(kr).Build()
	s, _, _ := setupTestStore(t, o)

	s.UpdateKeyResultValue(ctx, o.ID, kr.ID, 5, "")
	got, _ := s.Objective(o.ID)
	if !got.IsArchived {
		t.Fatalf("expected auto archive at 100%%")
	}
	s.UpdateKeyResultValue(ctx, o.ID, kr.ID, 1, "")
	got, _ = s.Objective(o.ID)
	if !got.IsArchived {
		t.Fatalf("archived objective was unarchived automatically")
	}
	s.SetArchived(ctx, o.ID, false)
	got, _ = s.Objective(o.ID)
	if got.IsArchived {
		t.Fatalf("manual unarchive below 100%% should stick")
	}
}

func TestLogProgressionArchivesObjective(t *testing.T) {
	ctx := context.Background()
	kr := testutil.NewKeyResult().WithValues(0, 5).WithWeight(100).Build()
	o := testutil.NewObjective().WithKeyResults(kr).Build()
	s, _, now := setupTestStore(t, o)

	for i, v := range []float64{0, 2, 5} {
		*now = testutil.Epoch.AddDate(0, 0, i+1)
		s.UpdateKeyResultValue(ctx, o.ID, kr.ID, v, "step")
	}
	got, _ := s.Objective(o.ID)
	if got.Progress() != 1 {
		t.Fatalf("Progress() = %v, want 1", got.Progress())
	}
	if !got.IsArchived {
		t.Fatalf("expected objective archived after the mutation pass")
	}
	if len(got.KeyResults[0].Logs) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(got.KeyResults[0].Logs))
	}
}

func TestKeyResultAndTaskEdits(t *testing.T) {
	ctx := context.Background()
	o := testutil.NewObjective().Build()
	s, _, _ := setupTestStore(t, o)

	kr := models.NewKeyResult("Pages", models.TypeNumber, 100, "pages")
	if !s.AddKeyResult(ctx, o.ID, kr) {
		t.Fatalf("AddKeyResult failed")
	}
	task := testutil.NewTask().Build()
	if !s.AddTask(ctx, o.ID, kr.ID, task) {
		t.Fatalf("AddTask failed")
	}
	if !s.UpdateTask(ctx, o.ID, kr.ID, task.ID, func(t *models.Task) { t.Recurrence = models.RecurWeekly }) {
		t.Fatalf("UpdateTask failed")
	}
	got, _ := s.Objective(o.ID)
	if got.KeyResults[0].Tasks[0].Recurrence != models.RecurWeekly {
		t.Fatalf("task edit not applied")
	}
	if !s.RemoveTask(ctx, o.ID, kr.ID, task.ID) || !s.RemoveKeyResult(ctx, o.ID, kr.ID) {
		t.Fatalf("remove failed")
	}
	got, _ = s.Objective(o.ID)
	if len(got.KeyResults) != 0 {
		t.Fatalf("expected key result removed")
	}
}

func TestActiveAndArchivedFilters(t *testing.T) {
	a := testutil.NewObjective().Build()
	b := testutil.NewObjective().Archived().Build()
	c := testutil.NewObjective().Build()
	c.IsCompleted = true
	s, _, _ := setupTestStore(t, a, b, c)
	if got := s.Active(); len(got) != 1 || got[0].ID != a.ID {
		t.Fatalf("Active() = %+v", got)
	}
	if got := s.Archived(); len(got) != 1 || got[0].ID != b.ID {
		t.Fatalf("Archived() = %+v", got)
	}
}
