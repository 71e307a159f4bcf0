package commands_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tana/cmd/tana/commands"
	"go.trai.ch/tana/internal/adapters/config"
	"go.trai.ch/tana/internal/adapters/logger"
	"go.trai.ch/tana/internal/adapters/notify"
	"go.trai.ch/tana/internal/app"
	"go.trai.ch/tana/internal/core/domain"
)

func newCLI() *commands.CLI {
	lg := logger.New()
	return commands.New(app.New(lg, config.NewLoader(lg), notify.NewHub(lg)))
}

func libraryFixture(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "one-piece"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "one-piece", "c001.cbz"), []byte("zip"), 0o644))
	return root
}

func TestVersionCommand(t *testing.T) {
	cli := newCLI()
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
}

func TestScanCommand(t *testing.T) {
	root := libraryFixture(t)

	cli := newCLI()
	cli.SetArgs([]string{"scan", "--root", root})

	require.NoError(t, cli.Execute(context.Background()))

	data, err := os.ReadFile(domain.DefaultIndexPath(root))
	require.NoError(t, err)

	var snap domain.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	assert.Contains(t, snap, "one-piece")
}

func TestScanCommand_NoRoot(t *testing.T) {
	// No config file and no --root flag: scanning has nothing to work on.
	t.Chdir(t.TempDir())

	cli := newCLI()
	cli.SetArgs([]string{"scan"})

	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrRootNotConfigured)
}

func TestCleanCommand(t *testing.T) {
	root := libraryFixture(t)

	cli := newCLI()
	cli.SetArgs([]string{"scan", "--root", root})
	require.NoError(t, cli.Execute(context.Background()))
	require.FileExists(t, domain.DefaultIndexPath(root))

	cli = newCLI()
	cli.SetArgs([]string{"clean", "--root", root})
	require.NoError(t, cli.Execute(context.Background()))

	assert.NoFileExists(t, domain.DefaultIndexPath(root))
}

func TestUnknownCommand(t *testing.T) {
	cli := newCLI()
	cli.SetArgs([]string{"bogus"})

	err := cli.Execute(context.Background())
	require.Error(t, err)
}

func TestRootHelp(t *testing.T) {
	cli := newCLI()
	cli.SetArgs([]string{"--help"})

	require.NoError(t, cli.Execute(context.Background()))
}
