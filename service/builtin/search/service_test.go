package search

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/termsh/engine"
)

func newTestService(t *testing.T) (*Service, *engine.Session) {
	t.Helper()
	session, err := engine.NewSessionAt(t.TempDir())
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	return New(session), session
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	assert.Nil(t, os.MkdirAll(filepath.Dir(path), 0o755))
	assert.Nil(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestService_Grep(t *testing.T) {
	service, session := newTestService(t)
	ctx := context.Background()
	root := session.Directory()

	writeFile(t, filepath.Join(root, "log.txt"), "info: started\nwarn: low disk\ninfo: done\n")
	writeFile(t, filepath.Join(root, "other.txt"), "  warn: indented\n")

	testCases := []struct {
		description string
		args        []string
		expect      string
	}{
		{
			description: "matches with file, 1-based line number and trimmed content",
			args:        []string{"warn", "log.txt"},
			expect:      "log.txt:2:warn: low disk",
		},
		{
			description: "multiple files searched in order",
			args:        []string{"warn", "log.txt", "other.txt"},
			expect:      "log.txt:2:warn: low disk\nother.txt:1:warn: indented",
		},
		{
			description: "regular expression pattern",
			args:        []string{"^info.*done$", "log.txt"},
			expect:      "log.txt:3:info: done",
		},
		{
			description: "no match yields empty output",
			args:        []string{"fatal", "log.txt"},
			expect:      "",
		},
		{
			description: "missing arguments",
			args:        []string{"warn"},
			expect:      "grep: missing arguments",
		},
	}
	for _, testCase := range testCases {
		output, err := service.grep(ctx, testCase.args)
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.expect, output, testCase.description)
	}

	output, _ := service.grep(ctx, []string{"warn", "ghost.txt", "log.txt"})
	lines := strings.Split(output, "\n")
	if assert.Equal(t, 2, len(lines), "unreadable file becomes a line, the rest is still searched") {
		assert.Contains(t, lines[0], "grep: ghost.txt:")
		assert.Equal(t, "log.txt:2:warn: low disk", lines[1])
	}

	output, _ = service.grep(ctx, []string{"[", "log.txt"})
	assert.Contains(t, output, "grep: invalid pattern:")
}

func TestService_Find(t *testing.T) {
	service, session := newTestService(t)
	ctx := context.Background()
	root := session.Directory()

	writeFile(t, filepath.Join(root, "notes.txt"), "x")
	writeFile(t, filepath.Join(root, "docs", "readme.md"), "x")
	writeFile(t, filepath.Join(root, "docs", "deep", "notes.md"), "x")

	asSet := func(output string) []string {
		if output == "" {
			return nil
		}
		items := strings.Split(output, "\n")
		sort.Strings(items)
		return items
	}

	output, err := service.find(ctx, nil)
	assert.Nil(t, err)
	assert.EqualValues(t,
		[]string{"docs", "docs/deep", "docs/deep/notes.md", "docs/readme.md", "notes.txt"},
		asSet(output), "default walks the whole tree")

	output, _ = service.find(ctx, []string{".", "notes"})
	assert.EqualValues(t, []string{"docs/deep/notes.md", "notes.txt"}, asSet(output))

	output, _ = service.find(ctx, []string{"docs", "readme"})
	assert.EqualValues(t, []string{"docs/readme.md"}, asSet(output))

	output, _ = service.find(ctx, []string{".", "nosuchname"})
	assert.Equal(t, "", output)
}
