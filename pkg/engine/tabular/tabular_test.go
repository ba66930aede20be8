package tabular

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadRows_KeepsEmptyFields(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "room.csv"), []byte("3,3\n,,\n,G:1,\n,,\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	rows, err := Dir{Root: dir}.ReadRows("room.csv")
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("len(rows) = %d, want 4", len(rows))
	}
	for i, row := range rows[1:] {
		if len(row) != 3 {
			t.Errorf("row %d has %d fields, want 3 (%q)", i+1, len(row), row)
		}
	}
	if rows[2][1] != "G:1" {
		t.Errorf("rows[2][1] = %q, want %q", rows[2][1], "G:1")
	}
}

func TestReadRows_StripsCarriageReturn(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "r.csv"), []byte("1,2\r\na,b\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rows, err := Dir{Root: dir}.ReadRows("r.csv")
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if rows[1][1] != "b" {
		t.Errorf("rows[1][1] = %q, want %q", rows[1][1], "b")
	}
}

func TestReadRows_NotFound(t *testing.T) {
	_, err := Dir{Root: t.TempDir()}.ReadRows("missing.csv")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ReadRows(missing) error = %v, want ErrNotFound", err)
	}
}

func TestWriteRows_RoundTrip(t *testing.T) {
	d := Dir{Root: filepath.Join(t.TempDir(), "nested"), Delimiter: ";"}
	in := [][]string{{"2", "2"}, {"", "d:room2.csv"}, {"G:4", ""}}

	if err := d.WriteRows("room.csv", in); err != nil {
		t.Fatalf("WriteRows: %v", err)
	}
	out, err := d.ReadRows("room.csv")
	if err != nil {
		t.Fatalf("ReadRows: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(in))
	}
	for r := range in {
		for c := range in[r] {
			if out[r][c] != in[r][c] {
				t.Errorf("out[%d][%d] = %q, want %q", r, c, out[r][c], in[r][c])
			}
		}
	}
}

func TestPath_RedirectsToRoot(t *testing.T) {
	d := Dir{Root: "sessions/active"}
	got := d.Path("rooms/deep/room3.csv")
	want := filepath.Join("sessions/active", "room3.csv")
	if got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}

func TestWriteRows_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := (Dir{Root: dir}).WriteRows("a.csv", [][]string{{"1", "1"}, {""}}); err != nil {
		t.Fatalf("WriteRows: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "a.csv" {
		t.Errorf("directory entries = %v, want only a.csv", entries)
	}
}
