package db

import (
	"testing"
	"testing/fstest"
)

func TestPendingFilesOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"0002_more.sql":   {Data: []byte("SELECT 2")},
		"0001_init.sql":   {Data: []byte("SELECT 1")},
		"README.md":       {Data: []byte("notes")},
		"nested/0003.sql": {Data: []byte("SELECT 3")},
	}
	files, err := PendingFiles(fsys)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(files) != 2 || files[0] != "0001_init.sql" || files[1] != "0002_more.sql" {
		t.Fatalf("unexpected order: %v", files)
	}
}

func TestValidID(t *testing.T) {
	if !ValidID("8a9d2c4e-7a7c-4b55-9c35-1f1f0b0c7d21") {
		t.Fatal("expected uuid to be valid")
	}
	for _, id := range []string{"", "1", "not-a-uuid"} {
		if ValidID(id) {
			t.Fatalf("expected %q to be invalid", id)
		}
	}
}
