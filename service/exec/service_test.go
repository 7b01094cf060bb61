package exec

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/termsh/engine"
)

func newTestService(t *testing.T) (*Service, *engine.Session) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	session, err := engine.NewSessionAt(t.TempDir())
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	return New(session), session
}

func TestService_Run(t *testing.T) {
	service, _ := newTestService(t)
	defer service.Close()

	result := service.Run(context.Background(), "echo external")
	assert.Equal(t, "external", result.Output)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "", result.Error)
}

func TestService_RunInSessionDirectory(t *testing.T) {
	service, session := newTestService(t)
	defer service.Close()

	assert.Nil(t, os.WriteFile(filepath.Join(session.Directory(), "marker.txt"), []byte("x"), 0o644))
	result := service.Run(context.Background(), "ls marker.txt")
	assert.Equal(t, 0, result.ExitCode)
	assert.Contains(t, result.Output, "marker.txt", "commands run in the virtual working directory")
}

func TestService_RunExitCode(t *testing.T) {
	service, _ := newTestService(t)
	defer service.Close()

	result := service.Run(context.Background(), "sh -c 'exit 3'")
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "", result.Error, "a non-zero child exit is not a spawn failure")
}
