// Package backup snapshots the storage file before risky operations and on
// demand. Backups are plain copies: the app is single-process and writes
// whole snapshots, so a file copy is always consistent.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/stride-cli/stride/internal/constants"
)

const (
	// MaxBackups is the number of backups retained after rotation
	MaxBackups = 14
	// BackupDirName is created next to the storage file
	BackupDirName = "backups"
)

// Info describes one backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles backup operations for a storage file.
type Manager struct {
	storagePath string
	backupDir   string
}

func NewManager(storagePath string) *Manager {
	return &Manager{
		storagePath: storagePath,
		backupDir:   filepath.Join(filepath.Dir(storagePath), BackupDirName),
	}
}

func (m *Manager) BackupDir() string {
	return m.backupDir
}

// CreateBackup copies the storage file into the backup dir and rotates old
// backups beyond MaxBackups.
func (m *Manager) CreateBackup() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.storagePath); os.IsNotExist(err) {
		return "", fmt.Errorf("storage does not exist: %s", m.storagePath)
	}

	name := fmt.Sprintf("%s-%s%s", constants.AppName,
		time.Now().Format("20060102-150405"), filepath.Ext(m.storagePath))
	dest := filepath.Join(m.backupDir, name)

	if err := copyFile(m.storagePath, dest); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if err := m.rotate(); err != nil {
		return dest, fmt.Errorf("backup created but rotation failed: %w", err)
	}
	return dest, nil
}

// ListBackups returns available backups, newest first.
func (m *Manager) ListBackups() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var infos []Info
	prefix := constants.AppName + "-"
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		ts, err := time.ParseInLocation("20060102-150405",
			strings.TrimSuffix(strings.TrimPrefix(e.Name(), prefix), filepath.Ext(e.Name())), time.Local)
		if err != nil {
			continue
		}
		infos = append(infos, Info{
			Path:      filepath.Join(m.backupDir, e.Name()),
			Timestamp: ts,
			Size:      fi.Size(),
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Timestamp.After(infos[j].Timestamp) })
	return infos, nil
}

// RestoreBackup replaces the storage file with a backup, snapshotting the
// current file first so a bad restore is itself recoverable.
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return fmt.Errorf("backup not found: %w", err)
	}

	if _, err := os.Stat(m.storagePath); err == nil {
		if _, err := m.CreateBackup(); err != nil {
			return fmt.Errorf("failed to snapshot current storage before restore: %w", err)
		}
	}

	if err := copyFile(backupPath, m.storagePath); err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}
	return nil
}

func (m *Manager) rotate() error {
	infos, err := m.ListBackups()
	if err != nil {
		return err
	}
	for _, old := range infos[min(len(infos), MaxBackups):] {
		if err := os.Remove(old.Path); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
