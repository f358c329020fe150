package engine

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/layeranim/internal/animation"
	"github.com/ivlev/layeranim/internal/codeview"
	"github.com/ivlev/layeranim/internal/config"
	"github.com/ivlev/layeranim/internal/host"
	"github.com/ivlev/layeranim/internal/watch"
)

func newTestProject(t *testing.T, cfg *config.Config) (*Project, *bytes.Buffer) {
	t.Helper()
	c, err := animation.New([]animation.Preset{
		animation.Keyframe("opacity", animation.Numbers(0.1, 0.5, 0.1)...).WithDuration(0.7),
		animation.Basic("lineDashPhase", animation.Numbers(0, 25)...).WithDuration(0.9).HideImage(),
		animation.Keyframe("transform.rotation.z", animation.Numbers(0, 1, 0)...).Repeat(animation.Forever),
	})
	require.NoError(t, err)
	var out bytes.Buffer
	return NewProject(cfg, c, &out), &out
}

func TestList(t *testing.T) {
	p, out := newTestProject(t, &config.Config{Command: "list"})
	require.NoError(t, p.Run(context.Background()))

	assert.Contains(t, out.String(), "  0  opacity")
	assert.Contains(t, out.String(), "lineDashPhase")
	assert.Contains(t, out.String(), "shape")
}

func TestShow(t *testing.T) {
	p, out := newTestProject(t, &config.Config{Command: "show", Name: "lineDashPhase"})
	require.NoError(t, p.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "from:          0")
	assert.Contains(t, s, "to:            25")
	assert.Contains(t, s, "duration:      0.9s")
	assert.Contains(t, s, "showsImage:    false")
}

func TestShowForever(t *testing.T) {
	p, out := newTestProject(t, &config.Config{Command: "show", Index: 2})
	require.NoError(t, p.Run(context.Background()))
	assert.Contains(t, out.String(), "repeatCount:   forever")
}

func TestShowOutOfRange(t *testing.T) {
	p, _ := newTestProject(t, &config.Config{Command: "show", Index: 9})
	assert.ErrorIs(t, p.Run(context.Background()), host.ErrNoAnimation)
}

func TestCode(t *testing.T) {
	p, out := newTestProject(t, &config.Config{Command: "code", Index: 0, Style: codeview.NoStyle})
	require.NoError(t, p.Run(context.Background()))
	assert.Equal(t, p.Catalog.CodeAt(0), out.String())

	p, out = newTestProject(t, &config.Config{Command: "code", Index: 5, Style: codeview.NoStyle})
	require.NoError(t, p.Run(context.Background()))
	assert.Contains(t, out.String(), "No animation found at index 5")
}

func TestUnknownName(t *testing.T) {
	p, _ := newTestProject(t, &config.Config{Command: "code", Name: "missing"})
	assert.Error(t, p.Run(context.Background()))
}

func TestPlay(t *testing.T) {
	p, out := newTestProject(t, &config.Config{Command: "play", Index: 1})
	require.NoError(t, p.Run(context.Background()))

	assert.Contains(t, out.String(), "lineDashPhase на слое shape")
	assert.True(t, p.Host.Layer(animation.FamilyImage).Hidden)
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	p, out := newTestProject(t, &config.Config{Command: "export", OutputDir: dir, Workers: 2})
	require.NoError(t, p.Run(context.Background()))
	assert.Contains(t, out.String(), "Экспортировано 3")

	for i := 0; i < p.Catalog.Count(); i++ {
		params := SnippetParams(p.Catalog, i, dir)
		data, err := os.ReadFile(params.Path)
		require.NoError(t, err)
		assert.Equal(t, p.Catalog.CodeAt(i), string(data))
	}
	assert.FileExists(t, filepath.Join(dir, "02_transform_rotation_z.swift"))

	read, err := animation.ReadCatalog(filepath.Join(dir, "catalog.yaml"))
	require.NoError(t, err)
	assert.Equal(t, p.Catalog.Presets(), read.Presets())
}

func TestExportCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p, _ := newTestProject(t, &config.Config{Command: "export", OutputDir: t.TempDir(), Workers: 1})
	assert.ErrorIs(t, p.Run(ctx), context.Canceled)
}

func TestQR(t *testing.T) {
	out := filepath.Join(t.TempDir(), "opacity.png")
	p, _ := newTestProject(t, &config.Config{Command: "qr", Name: "opacity", OutputFile: out, QRSize: 128})
	require.NoError(t, p.Run(context.Background()))
	assert.FileExists(t, out)
}

func TestWatchNeedsCatalogFile(t *testing.T) {
	p, _ := newTestProject(t, &config.Config{Command: "watch"})
	assert.Error(t, p.Run(context.Background()))
}

func TestUnknownCommand(t *testing.T) {
	p, _ := newTestProject(t, &config.Config{Command: "render"})
	assert.Error(t, p.Run(context.Background()))
}

func TestDescribeShortKeyTimes(t *testing.T) {
	s := Describe(&animation.KeyframeAnimation{
		KeyPath:  "opacity",
		Values:   animation.Numbers(0, 1, 0),
		KeyTimes: []float64{0},
		Duration: 1,
	})
	assert.Contains(t, s, "  0.000  0\n")
	assert.Contains(t, s, "      -  1\n")
}

// lockedBuffer lets the test read output while Run is still writing it.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchReloadsFinalWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("presets:\n  - keyPath: opacity\n    values: [0, 1]\n"), 0644))
	cat, err := animation.ReadCatalog(path)
	require.NoError(t, err)

	var out lockedBuffer
	p := NewProject(&config.Config{Command: "watch", CatalogPath: path}, cat, &out)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	waitFor := func(text string) {
		t.Helper()
		require.Eventually(t, func() bool { return strings.Contains(out.String(), text) },
			5*time.Second, 10*time.Millisecond, "output never contained %q:\n%s", text, out.String())
	}
	waitFor("[*] Слежение за")

	// A save split into two writes: the first leaves a preset without values.
	require.NoError(t, os.WriteFile(path, []byte("presets:\n  - keyPath: opacity\n"), 0644))
	time.Sleep(watch.Debounce / 3)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("    values: [0, 1]\n  - keyPath: position\n    values: [{x: 0, y: 0}, {x: 5, y: 5}]\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	waitFor("Каталог перезагружен: 2 анимаций")

	require.NoError(t, os.WriteFile(path, []byte("presets: [:"), 0644))
	waitFor("[!] Каталог не загружен")

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, 2, p.Catalog.Count())
	assert.NotContains(t, out.String(), "Каталог перезагружен: 1")
}
