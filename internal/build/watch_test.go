package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dooosp/agent-showcase/internal/emit"
)

// saveAtomically replaces path the way editors do: write a temp file in
// the same directory, then rename it over the target.
func saveAtomically(t *testing.T, path, content string) {
	t.Helper()
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0o644))
	require.NoError(t, os.Rename(tmp, path))
}

func catalogSource(n int) string {
	var b strings.Builder
	b.WriteString("const AGENTS = [\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "    { id: 'agent-%d', name: 'Agent %d', category: 'Automation' },\n", i, i)
	}
	b.WriteString("];\n")
	return b.String()
}

func requireAgentCount(t *testing.T, config Config, want int) {
	t.Helper()
	path := filepath.Join(config.OutputDir, emit.DataFileName)
	require.Eventually(t, func() bool {
		data, err := emit.ReadBack(path)
		return err == nil && len(data.Agents) == want
	}, 10*time.Second, 50*time.Millisecond, "rebuild did not produce %d agents", want)
}

func TestWatchSurvivesAtomicSaves(t *testing.T) {
	config := writePipelineFixtures(t)
	pipeline := NewPipeline(config)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- pipeline.Watch(ctx) }()

	// Give the watcher time to register before the first save.
	time.Sleep(200 * time.Millisecond)

	saveAtomically(t, config.CatalogPath, catalogSource(3))
	requireAgentCount(t, config, 3)

	// A rename-style save replaces the file's inode, so a second save
	// must still be seen and rebuilt.
	saveAtomically(t, config.CatalogPath, catalogSource(4))
	requireAgentCount(t, config, 4)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}
