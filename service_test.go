package termsh

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestTerminal(t *testing.T) *Terminal {
	t.Helper()
	config := DefaultConfig()
	config.Workdir = t.TempDir()
	service := New(WithConfig(config), WithCollector(nil))
	terminal, err := service.NewTerminal()
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	return terminal
}

func TestService_NewTerminal(t *testing.T) {
	terminal := newTestTerminal(t)
	defer terminal.Close()
	ctx := context.Background()

	testCases := []struct {
		description string
		commandLine string
		expectIn    string
	}{
		{description: "file built-in", commandLine: "pwd", expectIn: ""},
		{description: "sysinfo built-in", commandLine: "echo wired", expectIn: "wired"},
		{description: "help covers externals", commandLine: "help ping", expectIn: "ping: Test network connectivity"},
		{description: "metrics degrade without a collector", commandLine: "cpu", expectIn: "system metrics unavailable"},
	}
	for _, testCase := range testCases {
		result := terminal.Engine.Execute(ctx, testCase.commandLine)
		assert.False(t, result.Failed(), testCase.description)
		assert.Contains(t, result.Output, testCase.expectIn, testCase.description)
	}

	advice := terminal.Advisor.Suggest("list files")
	assert.Contains(t, advice.Suggestions, "ls")
}

func TestService_TerminalsAreIsolated(t *testing.T) {
	config := DefaultConfig()
	config.Workdir = t.TempDir()
	service := New(WithConfig(config), WithCollector(nil))
	ctx := context.Background()

	first, err := service.NewTerminal()
	assert.Nil(t, err)
	defer first.Close()
	second, err := service.NewTerminal()
	assert.Nil(t, err)
	defer second.Close()

	first.Engine.Execute(ctx, "mkdir private")
	result := first.Engine.Execute(ctx, "cd private")
	assert.False(t, result.Failed())

	assert.NotEqual(t,
		first.Engine.Session().Directory(),
		second.Engine.Session().Directory(),
		"each terminal owns its working directory")
	assert.Equal(t, 0, second.Engine.Session().History().Len())
}

func TestService_ConfigThreadsThrough(t *testing.T) {
	config := DefaultConfig()
	config.Workdir = t.TempDir()
	config.History.DisplaySize = 2
	service := New(WithConfig(config), WithCollector(nil))
	terminal, err := service.NewTerminal()
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	defer terminal.Close()
	ctx := context.Background()

	for _, commandLine := range []string{"echo a", "echo b", "echo c"} {
		terminal.Engine.Execute(ctx, commandLine)
	}
	history := terminal.Engine.Execute(ctx, "history")
	assert.NotContains(t, history.Output, "echo a", "display window honours the configured size")
	assert.Contains(t, history.Output, "echo c")
}
