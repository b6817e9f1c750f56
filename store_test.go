package neraca

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hpratama/neraca/date"
)

func TestLoadBook_MissingFile(t *testing.T) {
	b, err := LoadBook(filepath.Join(t.TempDir(), "nowhere", "book.csv"))
	if err != nil {
		t.Fatalf("a missing backing file must be an empty store, got error: %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "financial_data.csv")

	in := NewBook()
	in.Upsert(date.MustParse("2024-01-31"), values(map[Field]float64{Revenue: 100.25}), RejectDuplicate)
	in.Upsert(date.MustParse("2024-02-29"), values(map[Field]float64{Revenue: 200}), RejectDuplicate)

	// the data directory does not exist yet, SaveBook creates it
	if err := SaveBook(path, in); err != nil {
		t.Fatalf("SaveBook: %v", err)
	}

	out, err := LoadBook(path)
	if err != nil {
		t.Fatalf("LoadBook: %v", err)
	}
	if out.Len() != in.Len() {
		t.Fatalf("round trip changed row count: got %d, want %d", out.Len(), in.Len())
	}
	for i, want := range in.Snapshots() {
		if got := out.Snapshots()[i]; !got.Equal(want) {
			t.Errorf("snapshot %s differs after round trip", want.On())
		}
	}
}

func TestSaveBook_LeavesNoTemporaryFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.csv")
	if err := SaveBook(path, NewBook()); err != nil {
		t.Fatalf("SaveBook: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "book.csv" {
		t.Errorf("directory holds %d entries, want only book.csv", len(entries))
	}
}

// TestScenario walks the full path: empty store, one recorded month, reload,
// derived ratio.
func TestScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.csv")

	book, err := LoadBook(path)
	if err != nil {
		t.Fatalf("LoadBook: %v", err)
	}
	if book.Len() != 0 {
		t.Fatalf("fresh store is not empty: %d rows", book.Len())
	}

	on := date.EndOfMonth(2024, 1)
	outcome := book.Upsert(on, values(map[Field]float64{
		CurrentAsset:       1_000_000,
		CurrentLiabilities: 500_000,
	}), RejectDuplicate)
	if outcome != Created {
		t.Fatalf("Upsert = %s, want %s", outcome, Created)
	}
	if err := SaveBook(path, book); err != nil {
		t.Fatalf("SaveBook: %v", err)
	}

	reloaded, err := LoadBook(path)
	if err != nil {
		t.Fatalf("LoadBook: %v", err)
	}
	snapshots := reloaded.Snapshots()
	if len(snapshots) != 1 {
		t.Fatalf("reloaded %d snapshots, want 1", len(snapshots))
	}
	if snapshots[0].On().String() != "2024-01-31" {
		t.Errorf("snapshot date = %s, want 2024-01-31", snapshots[0].On())
	}

	currentRatio := StandardRatios[0]
	if got := currentRatio.Format(snapshots[0]); got != "2.00" {
		t.Errorf("%s = %q, want %q", currentRatio.Name, got, "2.00")
	}
}
