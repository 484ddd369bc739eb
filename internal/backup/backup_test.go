package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func setup(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	storagePath := filepath.Join(dir, "stride.json")
	if err := os.WriteFile(storagePath, []byte(`{"version":1}`), 0600); err != nil {
		t.Fatal(err)
	}
	return NewManager(storagePath), storagePath
}

func TestCreateBackup(t *testing.T) {
	m, _ := setup(t)

	dest, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("backup unreadable: %v", err)
	}
	if string(data) != `{"version":1}` {
		t.Errorf("backup content = %q", data)
	}
	if filepath.Ext(dest) != ".json" {
		t.Errorf("backup keeps the storage extension, got %q", dest)
	}
}

func TestCreateBackup_MissingStorage(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent.json"))
	if _, err := m.CreateBackup(); err == nil {
		t.Error("expected error for missing storage file")
	}
}

func TestListBackups_NewestFirst(t *testing.T) {
	m, _ := setup(t)
	if err := os.MkdirAll(m.BackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		"stride-20260301-120000.json",
		"stride-20260305-090000.json",
		"stride-20260303-150000.json",
		"unrelated.txt",
	} {
		if err := os.WriteFile(filepath.Join(m.BackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	infos, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups: %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("ListBackups = %d entries, want 3", len(infos))
	}
	if filepath.Base(infos[0].Path) != "stride-20260305-090000.json" {
		t.Errorf("first = %q, want the newest", infos[0].Path)
	}
	if filepath.Base(infos[2].Path) != "stride-20260301-120000.json" {
		t.Errorf("last = %q, want the oldest", infos[2].Path)
	}
}

func TestListBackups_NoDirectory(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "stride.json"))
	infos, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups: %v", err)
	}
	if infos != nil {
		t.Errorf("ListBackups = %v, want nil", infos)
	}
}

func TestRotate(t *testing.T) {
	m, _ := setup(t)
	if err := os.MkdirAll(m.BackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	// MaxBackups plus five older ones that rotation must remove.
	for i := 0; i < MaxBackups+5; i++ {
		name := fmt.Sprintf("stride-202602%02d-120000.json", i+1)
		if err := os.WriteFile(filepath.Join(m.BackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	if err := m.rotate(); err != nil {
		t.Fatalf("rotate: %v", err)
	}
	infos, err := m.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(infos) != MaxBackups {
		t.Errorf("after rotation %d backups remain, want %d", len(infos), MaxBackups)
	}
	// The oldest were removed, not the newest.
	if filepath.Base(infos[0].Path) != fmt.Sprintf("stride-202602%02d-120000.json", MaxBackups+5) {
		t.Errorf("newest = %q", infos[0].Path)
	}
}

func TestRestoreBackup(t *testing.T) {
	m, storagePath := setup(t)

	if err := os.MkdirAll(m.BackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	dest := filepath.Join(m.BackupDir(), "stride-20260301-120000.json")
	if err := os.WriteFile(dest, []byte(`{"version":1}`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(storagePath, []byte(`{"version":2}`), 0600); err != nil {
		t.Fatal(err)
	}

	if err := m.RestoreBackup(dest); err != nil {
		t.Fatalf("RestoreBackup: %v", err)
	}
	data, err := os.ReadFile(storagePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"version":1}` {
		t.Errorf("restored content = %q", data)
	}
}

func TestRestoreBackup_Missing(t *testing.T) {
	m, _ := setup(t)
	if err := m.RestoreBackup(filepath.Join(m.BackupDir(), "nope.json")); err == nil {
		t.Error("expected error for missing backup")
	}
}
