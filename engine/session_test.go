package engine

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionAt(t *testing.T) {
	dir := t.TempDir()

	session, err := NewSessionAt(dir)
	if assert.Nil(t, err) {
		assert.Equal(t, dir, session.Directory())
	}

	_, err = NewSessionAt(filepath.Join(dir, "missing"))
	assert.NotNil(t, err)

	file := filepath.Join(dir, "plain.txt")
	assert.Nil(t, os.WriteFile(file, []byte("x"), 0o644))
	_, err = NewSessionAt(file)
	assert.NotNil(t, err, "a regular file is not a valid session root")
}

func TestSession_ChangeDirectory(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	assert.Nil(t, os.Mkdir(sub, 0o755))

	session, err := NewSessionAt(root)
	if !assert.Nil(t, err) {
		t.FailNow()
	}

	assert.Nil(t, session.ChangeDirectory("sub"))
	assert.Equal(t, sub, session.Directory())

	err = session.ChangeDirectory("no-such-dir")
	assert.NotNil(t, err)
	assert.Equal(t, sub, session.Directory(), "directory is unchanged after a failed cd")
	assert.Contains(t, err.Error(), "No such file or directory")

	assert.Nil(t, session.ChangeDirectory(root))
	assert.Equal(t, root, session.Directory())
}

func TestSession_Resolve(t *testing.T) {
	root := t.TempDir()
	session, err := NewSessionAt(root)
	if !assert.Nil(t, err) {
		t.FailNow()
	}

	testCases := []struct {
		description string
		target      string
		expect      string
	}{
		{description: "relative", target: "a/b", expect: filepath.Join(root, "a", "b")},
		{description: "dot segments", target: "a/../b", expect: filepath.Join(root, "b")},
		{description: "absolute", target: "/tmp/x/../y", expect: "/tmp/y"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, session.Resolve(testCase.target), testCase.description)
	}
}

func TestSession_Env(t *testing.T) {
	t.Setenv("TERMSH_TEST_VAR", "original")
	session, err := NewSessionAt(t.TempDir())
	if !assert.Nil(t, err) {
		t.FailNow()
	}

	value, ok := session.LookupEnv("TERMSH_TEST_VAR")
	assert.True(t, ok)
	assert.Equal(t, "original", value)

	session.SetEnv("TERMSH_TEST_VAR", "changed")
	value, _ = session.LookupEnv("TERMSH_TEST_VAR")
	assert.Equal(t, "changed", value)
	assert.Equal(t, "original", os.Getenv("TERMSH_TEST_VAR"), "the session snapshot never leaks into the process environment")

	pairs := session.Environ()
	assert.Contains(t, pairs, "TERMSH_TEST_VAR=changed")
	assert.True(t, sortedStrings(pairs))
}

func sortedStrings(values []string) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}
