package form

import (
	"testing"

	"github.com/devcell/portal/internal/model"
)

func TestSubList_AppendAssignsStableIDs(t *testing.T) {
	t.Parallel()

	l := NewSubList[model.SkillEntry]()
	a := l.Append(model.SkillEntry{Name: "Go"})
	b := l.Append(model.SkillEntry{Name: "Rust"})

	if a.ID == "" || b.ID == "" {
		t.Fatal("expected non-empty row IDs")
	}
	if a.ID == b.ID {
		t.Fatal("expected distinct row IDs")
	}
	if l.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", l.Len())
	}
}

func TestSubList_AppendThenRemoveRestoresList(t *testing.T) {
	t.Parallel()

	l := NewSubList[model.LanguageEntry]()
	l.Append(model.LanguageEntry{Name: "Go", Fluency: model.FluencyExpert})
	before := l.Rows()

	l.Append(model.LanguageEntry{})
	l.RemoveAt(1)

	after := l.Rows()
	if len(after) != len(before) {
		t.Fatalf("expected length %d, got %d", len(before), len(after))
	}
	for i := range before {
		if after[i].ID != before[i].ID || after[i].Entry != before[i].Entry {
			t.Errorf("row %d changed: %+v != %+v", i, after[i], before[i])
		}
	}
}

func TestSubList_RemoveAtShiftsTail(t *testing.T) {
	t.Parallel()

	l := NewSubList[model.AchievementEntry]()
	var ids []string
	for _, name := range []string{"first", "second", "third", "fourth"} {
		ids = append(ids, l.Append(model.AchievementEntry{Name: name}).ID)
	}

	l.RemoveAt(1)

	rows := l.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	wantIDs := []string{ids[0], ids[2], ids[3]}
	wantNames := []string{"first", "third", "fourth"}
	for i, row := range rows {
		if row.ID != wantIDs[i] {
			t.Errorf("row %d: expected ID of %q, got a different row", i, wantNames[i])
		}
		if row.Entry.Name != wantNames[i] {
			t.Errorf("row %d: expected %q, got %q", i, wantNames[i], row.Entry.Name)
		}
	}
}

func TestSubList_RemoveToEmpty(t *testing.T) {
	t.Parallel()

	l := NewSubList[model.ProjectEntry]()
	l.Append(model.ProjectEntry{Name: "only"})
	l.RemoveAt(0)

	if l.Len() != 0 {
		t.Fatalf("expected empty list, got %d rows", l.Len())
	}
	if entries := l.Entries(); len(entries) != 0 {
		t.Fatalf("expected no entries, got %v", entries)
	}
}

func TestSubList_UpdateAtKeepsIdentity(t *testing.T) {
	t.Parallel()

	l := NewSubList[model.SkillEntry]()
	row := l.Append(model.SkillEntry{Name: "Docker", Fluency: model.FluencyBeginner})

	updated := l.UpdateAt(0, model.SkillEntry{Name: "Docker", Fluency: model.FluencyAdvanced})
	if updated.ID != row.ID {
		t.Error("expected update to preserve row ID")
	}
	if updated.Entry.Fluency != model.FluencyAdvanced {
		t.Errorf("expected updated fluency, got %q", updated.Entry.Fluency)
	}
}

func TestSubList_RemoveAtOutOfRangePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range index")
		}
	}()

	l := NewSubList[model.SkillEntry]()
	l.RemoveAt(0)
}

func TestSubList_RowsIsACopy(t *testing.T) {
	t.Parallel()

	l := NewSubList[model.SkillEntry]()
	l.Append(model.SkillEntry{Name: "Go"})

	rows := l.Rows()
	rows[0].Entry.Name = "mutated"

	if l.Rows()[0].Entry.Name != "Go" {
		t.Error("expected Rows to return a copy")
	}
}
