package pipeline

import (
	"testing"
	"time"
)

func TestContentHashHexDeterministic(t *testing.T) {
	a := ContentHashHex([]byte("datasheet bytes"))
	b := ContentHashHex([]byte("datasheet bytes"))
	if a != b {
		t.Errorf("hash not deterministic: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
	if ContentHashHex([]byte("other")) == a {
		t.Error("different content produced same hash")
	}
}

func TestNewJobID(t *testing.T) {
	now := time.Now()
	id := NewJobID("widget.pdf", now)
	if len(id) != 20 {
		t.Errorf("expected 20-char job id, got %d", len(id))
	}
	if NewJobID("widget.pdf", now.Add(time.Nanosecond)) == id {
		t.Error("ids for different submission times should differ")
	}
}

func TestJobStateTransitions(t *testing.T) {
	job := &Job{ID: "j1", Filename: "widget.pdf", Status: StatusQueued}

	transitions := []struct {
		status JobStatus
		phase  string
	}{
		{StatusExtracting, "extracting text"},
		{StatusChunking, "splitting content"},
		{StatusWriting, "writing files"},
		{StatusCompleted, "done"},
	}
	for _, tr := range transitions {
		job.SetStatus(tr.status, tr.phase)
		snap := job.Snapshot()
		if snap.Status != tr.status {
			t.Errorf("status = %s, want %s", snap.Status, tr.status)
		}
		if snap.Phase != tr.phase {
			t.Errorf("phase = %q, want %q", snap.Phase, tr.phase)
		}
	}
}

func TestJobProgress(t *testing.T) {
	job := &Job{ID: "j1"}

	job.SetExtraction(120, 50, 14)
	job.SetChunks(15)
	job.AddError("page 7 yielded no text")

	snap := job.Snapshot()
	if snap.Progress.TotalPages != 120 || snap.Progress.PagesProcessed != 50 {
		t.Errorf("pages = %d/%d, want 50/120", snap.Progress.PagesProcessed, snap.Progress.TotalPages)
	}
	if snap.Progress.HeadersFound != 14 || snap.Progress.ContentChunks != 15 {
		t.Errorf("counts = %d headers, %d chunks", snap.Progress.HeadersFound, snap.Progress.ContentChunks)
	}
	if len(snap.Progress.Errors) != 1 || snap.Progress.Errors[0] != "page 7 yielded no text" {
		t.Errorf("errors = %v", snap.Progress.Errors)
	}
}

func TestJobSnapshotErrorsNeverNil(t *testing.T) {
	job := &Job{ID: "j1"}
	if job.Snapshot().Progress.Errors == nil {
		t.Error("snapshot errors should marshal as [], not null")
	}
}

func TestJobFileData(t *testing.T) {
	job := &Job{ID: "j1"}
	job.SetFileData([]byte{0x25, 0x50, 0x44, 0x46})
	if got := job.FileData(); len(got) != 4 || got[0] != 0x25 {
		t.Errorf("FileData = %v", got)
	}
}

func TestJobStore(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := &Job{ID: "j1", UpdatedAt: time.Now()}

	store.Put(job)
	if store.Get("j1") != job {
		t.Error("expected stored job back")
	}
	if store.Get("missing") != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestJobStoreCleanup(t *testing.T) {
	store := NewJobStore(50 * time.Millisecond)

	stale := &Job{ID: "stale", UpdatedAt: time.Now().Add(-time.Second)}
	fresh := &Job{ID: "fresh", UpdatedAt: time.Now()}
	store.Put(stale)
	store.Put(fresh)

	store.Cleanup()

	if store.Get("stale") != nil {
		t.Error("expected stale job evicted")
	}
	if store.Get("fresh") == nil {
		t.Error("fresh job should survive cleanup")
	}
}
