package history

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"shutterplan/pkg/model"
)

func tempStore(t *testing.T, keep int) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "history.json"), keep)
}

func TestLoadMissingFile(t *testing.T) {
	s := tempStore(t, 7)
	if got := s.Load(); len(got) != 0 {
		t.Errorf("missing file: got %d tasks, want 0", len(got))
	}
}

func TestLoadMalformedFile(t *testing.T) {
	s := tempStore(t, 7)
	if err := os.WriteFile(s.path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := s.Load(); len(got) != 0 {
		t.Errorf("malformed file: got %d tasks, want 0", len(got))
	}
	// A save after corruption must still work.
	if err := s.Append(model.Task{Title: "recovered"}); err != nil {
		t.Fatalf("append after corruption: %v", err)
	}
	if got := s.Load(); len(got) != 1 || got[0].Title != "recovered" {
		t.Errorf("after recovery: %+v", got)
	}
}

func TestAppendRoundTrip(t *testing.T) {
	s := tempStore(t, 7)
	task := model.Task{
		ID:       "t1",
		Title:    "Golden Hour Street @ Melbourne CBD",
		Steps:    []string{"one", "two"},
		POINames: []string{"Hosier Lane"},
	}
	if err := s.Append(task); err != nil {
		t.Fatal(err)
	}
	got := s.Load()
	if len(got) != 1 {
		t.Fatalf("got %d tasks, want 1", len(got))
	}
	if got[0].Title != task.Title || len(got[0].Steps) != 2 || got[0].POINames[0] != "Hosier Lane" {
		t.Errorf("round trip lost data: %+v", got[0])
	}
}

func TestRollingCap(t *testing.T) {
	s := tempStore(t, 7)
	for i := 0; i < 12; i++ {
		if err := s.Append(model.Task{Title: fmt.Sprintf("task %d", i)}); err != nil {
			t.Fatal(err)
		}
	}
	got := s.Load()
	if len(got) != 7 {
		t.Fatalf("after 12 saves: %d entries, want 7", len(got))
	}
	// The 7 most recent, in original save order.
	for i, task := range got {
		want := fmt.Sprintf("task %d", i+5)
		if task.Title != want {
			t.Errorf("entry %d = %q, want %q", i, task.Title, want)
		}
	}
}

func TestCustomKeep(t *testing.T) {
	s := tempStore(t, 3)
	for i := 0; i < 5; i++ {
		if err := s.Append(model.Task{Title: fmt.Sprintf("task %d", i)}); err != nil {
			t.Fatal(err)
		}
	}
	if got := s.Load(); len(got) != 3 {
		t.Errorf("keep=3: got %d entries", len(got))
	}
}

func TestZeroKeepDefaults(t *testing.T) {
	s := New("x.json", 0)
	if s.keep != DefaultKeep {
		t.Errorf("keep = %d, want %d", s.keep, DefaultKeep)
	}
}
