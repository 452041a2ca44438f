package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/service"
)

func newStore(t *testing.T, name string) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), name), nil)
	require.NoError(t, err)
	return s
}

func TestNew_EmptyPath(t *testing.T) {
	_, err := New("  ", nil)
	require.Error(t, err)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFor("tasks.json"))
	assert.Equal(t, FormatJSON, FormatFor("tasks"))
	assert.Equal(t, FormatYAML, FormatFor("tasks.yaml"))
	assert.Equal(t, FormatYAML, FormatFor("TASKS.YML"))
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	s := newStore(t, "tasks.json")

	tasks, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestLoad_BlankFileIsEmpty(t *testing.T) {
	s := newStore(t, "tasks.json")
	require.NoError(t, os.WriteFile(s.Path(), []byte(" \n"), 0o644))

	tasks, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestRoundTrip(t *testing.T) {
	cases := map[string][]service.Task{
		"empty":  {},
		"single": {{Title: "Buy milk"}},
		"mixed": {
			{Title: "Buy milk", Done: true},
			{Title: "Pay bills"},
			{Title: "Call \"mom\"\nlater", Done: true},
			{Title: "ünïcödé ✅"},
		},
	}

	for _, file := range []string{"tasks.json", "tasks.yaml"} {
		for name, tasks := range cases {
			t.Run(file+"/"+name, func(t *testing.T) {
				s := newStore(t, file)
				ctx := context.Background()

				require.NoError(t, s.Save(ctx, tasks))
				got, err := s.Load(ctx)
				require.NoError(t, err)
				assert.Equal(t, tasks, got)
			})
		}
	}
}

func TestSave_JSONLayout(t *testing.T) {
	s := newStore(t, "tasks.json")

	err := s.Save(context.Background(), []service.Task{{Title: "Buy milk"}, {Title: "Pay bills", Done: true}})
	require.NoError(t, err)

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	want := `[
    {
        "title": "Buy milk",
        "done": false
    },
    {
        "title": "Pay bills",
        "done": true
    }
]
`
	assert.Equal(t, want, string(data))
}

func TestSave_EmptyListWritesArray(t *testing.T) {
	s := newStore(t, "tasks.json")

	require.NoError(t, s.Save(context.Background(), nil))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestSave_CreatesParentDirAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deeper", "tasks.json")
	s, err := New(path, nil)
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), []service.Task{{Title: "a"}}))
	require.NoError(t, s.Save(context.Background(), []service.Task{{Title: "b"}}))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tasks.json", entries[0].Name())
}

func TestSave_KeepsFileMode(t *testing.T) {
	s := newStore(t, "tasks.json")
	require.NoError(t, os.WriteFile(s.Path(), []byte("[]\n"), 0o600))
	require.NoError(t, os.Chmod(s.Path(), 0o600))

	require.NoError(t, s.Save(context.Background(), []service.Task{{Title: "private"}}))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSave_NewFileMode(t *testing.T) {
	s := newStore(t, "tasks.json")

	require.NoError(t, s.Save(context.Background(), []service.Task{{Title: "a"}}))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestSave_WritesThroughSymlink(t *testing.T) {
	dir := t.TempDir()
	realDir := filepath.Join(dir, "dotfiles")
	require.NoError(t, os.MkdirAll(realDir, 0o755))
	realPath := filepath.Join(realDir, "real.json")
	require.NoError(t, os.WriteFile(realPath, []byte("[]\n"), 0o600))
	link := filepath.Join(dir, "tasks.json")
	if err := os.Symlink(realPath, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	s, err := New(link, nil)
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), []service.Task{{Title: "Buy milk"}}))

	fi, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, fi.Mode()&os.ModeSymlink, "link was replaced by a regular file")

	data, err := os.ReadFile(realPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Buy milk")

	info, err := os.Stat(realPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(realDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	tasks, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []service.Task{{Title: "Buy milk"}}, tasks)
}

func TestLoad_YAMLCommentsOnlyIsEmpty(t *testing.T) {
	s := newStore(t, "tasks.yaml")
	require.NoError(t, os.WriteFile(s.Path(), []byte("# my tasks\n"), 0o644))

	tasks, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestLoad_MissingDoneDefaultsFalse(t *testing.T) {
	s := newStore(t, "tasks.json")
	doc := `[{"title": "legacy"}, {"title": "new", "done": true, "note": "extra keys are fine"}]`
	require.NoError(t, os.WriteFile(s.Path(), []byte(doc), 0o644))

	tasks, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []service.Task{{Title: "legacy"}, {Title: "new", Done: true}}, tasks)
}

func TestLoad_YAMLMissingDone(t *testing.T) {
	s := newStore(t, "tasks.yml")
	doc := "- title: legacy\n- title: new\n  done: true\n"
	require.NoError(t, os.WriteFile(s.Path(), []byte(doc), 0o644))

	tasks, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []service.Task{{Title: "legacy"}, {Title: "new", Done: true}}, tasks)
}

func TestLoad_Corrupt(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		doc     string
		contain string
	}{
		{"syntax", "tasks.json", `[{"title": "a",`, ""},
		{"object root", "tasks.json", `{"title": "a"}`, "expected array"},
		{"null root", "tasks.json", `null`, "expected array"},
		{"missing title", "tasks.json", `[{"done": true}]`, "[0]"},
		{"title not string", "tasks.json", `[{"title": "a"}, {"title": 42}]`, "[1].title"},
		{"done not bool", "tasks.json", `[{"title": "a", "done": "yes"}]`, "[0].done"},
		{"yaml syntax", "tasks.yaml", "- title: [unclosed\n", ""},
		{"yaml mapping root", "tasks.yaml", "title: a\n", "expected array"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newStore(t, tc.file)
			require.NoError(t, os.WriteFile(s.Path(), []byte(tc.doc), 0o644))

			_, err := s.Load(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, service.ErrCorruptData)
			assert.Contains(t, err.Error(), s.Path())
			if tc.contain != "" {
				assert.Contains(t, err.Error(), tc.contain)
			}

			// The document must be left untouched.
			data, readErr := os.ReadFile(s.Path())
			require.NoError(t, readErr)
			assert.Equal(t, tc.doc, string(data))
		})
	}
}

func TestLoad_CanceledContext(t *testing.T) {
	s := newStore(t, "tasks.json")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Save(ctx, nil), context.Canceled)
}

func TestJSONPointerToPath(t *testing.T) {
	assert.Equal(t, "", jsonPointerToPath(""))
	assert.Equal(t, "", jsonPointerToPath("#"))
	assert.Equal(t, "[2].title", jsonPointerToPath("/2/title"))
	assert.Equal(t, "[0].a/b", jsonPointerToPath("#/0/a~1b"))
}
