package app_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tana/internal/adapters/logger"
	"go.trai.ch/tana/internal/adapters/notify"
	"go.trai.ch/tana/internal/app"
	"go.trai.ch/tana/internal/core/domain"
	"go.trai.ch/tana/internal/core/ports"
	"go.trai.ch/tana/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newApp(t *testing.T, settings domain.Settings) (*app.App, ports.Logger) {
	t.Helper()

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(settings, nil).AnyTimes()

	lg := logger.New()
	return app.New(lg, loader, notify.NewHub(lg)), lg
}

func libraryFixture(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "one-piece"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "one-piece", "c001.cbz"), []byte("zip"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "one-piece", "c002.cbz"), []byte("zip"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "berserk"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "berserk", "c364.cbz"), []byte("zip"), 0o644))
	return root
}

func testSettings(root string) domain.Settings {
	s := domain.DefaultSettings()
	s.Root = root
	s.IndexPath = domain.DefaultIndexPath(root)
	s.FlushWindow = 50 * time.Millisecond
	s.RenameWindow = 20 * time.Millisecond
	return s
}

func readIndex(t *testing.T, path string) domain.Snapshot {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	return snap
}

func TestApp_Scan(t *testing.T) {
	root := libraryFixture(t)
	a, _ := newApp(t, testSettings(root))

	require.NoError(t, a.Scan(context.Background(), app.ScanOptions{}))

	snap := readIndex(t, domain.DefaultIndexPath(root))
	require.Len(t, snap, 2)
	assert.Equal(t, []string{"c001.cbz", "c002.cbz"}, snap["one-piece"].CBZFiles)
	assert.Equal(t, 1, snap["berserk"].TotalChapters)
}

func TestApp_ScanInvalidRoot(t *testing.T) {
	settings := testSettings(filepath.Join(t.TempDir(), "missing"))
	a, _ := newApp(t, settings)

	err := a.Scan(context.Background(), app.ScanOptions{})

	require.ErrorIs(t, err, domain.ErrInvalidRoot)
}

func TestApp_ScanPreservesCreatedAt(t *testing.T) {
	root := libraryFixture(t)
	a, _ := newApp(t, testSettings(root))

	require.NoError(t, a.Scan(context.Background(), app.ScanOptions{}))
	first := readIndex(t, domain.DefaultIndexPath(root))

	// Add a chapter and rescan.
	require.NoError(t, os.WriteFile(filepath.Join(root, "berserk", "c365.cbz"), []byte("zip"), 0o644))
	require.NoError(t, a.Scan(context.Background(), app.ScanOptions{}))
	second := readIndex(t, domain.DefaultIndexPath(root))

	assert.True(t, first["berserk"].CreatedAt.Equal(second["berserk"].CreatedAt))
	assert.Equal(t, 2, second["berserk"].TotalChapters)
}

func TestApp_Clean(t *testing.T) {
	root := libraryFixture(t)
	a, _ := newApp(t, testSettings(root))

	require.NoError(t, a.Scan(context.Background(), app.ScanOptions{}))
	require.FileExists(t, domain.DefaultIndexPath(root))

	require.NoError(t, a.Clean(context.Background(), ""))
	assert.NoFileExists(t, domain.DefaultIndexPath(root))

	// Cleaning an already clean library is a no-op.
	require.NoError(t, a.Clean(context.Background(), ""))
}

func TestApp_RootNotConfigured(t *testing.T) {
	a, _ := newApp(t, domain.DefaultSettings())

	err := a.Scan(context.Background(), app.ScanOptions{})

	require.ErrorIs(t, err, domain.ErrRootNotConfigured)
}

func TestApp_WatchPicksUpChanges(t *testing.T) {
	root := libraryFixture(t)
	a, _ := newApp(t, testSettings(root))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- a.Watch(ctx, app.WatchOptions{Output: "plain", NoServe: true})
	}()

	// Let the initial scan and watch registration settle, then add a
	// collection on disk.
	time.Sleep(300 * time.Millisecond)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "naruto"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "naruto", "c001.cbz"), []byte("zip"), 0o644))

	require.Eventually(t, func() bool {
		data, err := os.ReadFile(domain.DefaultIndexPath(root))
		if err != nil {
			return false
		}
		var snap domain.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			return false
		}
		rec, ok := snap["naruto"]
		return ok && rec.TotalChapters == 1
	}, 10*time.Second, 50*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("watch did not shut down")
	}

	// Final flush on close left the index consistent.
	snap := readIndex(t, domain.DefaultIndexPath(root))
	assert.Len(t, snap, 3)
}
