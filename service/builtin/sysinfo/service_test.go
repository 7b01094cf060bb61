package sysinfo

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/termsh/engine"
	"github.com/viant/termsh/internal/clock"
)

func newTestService(t *testing.T) (*Service, *engine.Session) {
	t.Helper()
	session, err := engine.NewSessionAt(t.TempDir())
	if !assert.Nil(t, err) {
		t.FailNow()
	}
	return New(session), session
}

func TestService_Echo(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	testCases := []struct {
		description string
		args        []string
		expect      string
	}{
		{description: "joins arguments with spaces", args: []string{"hello", "wide", "world"}, expect: "hello wide world"},
		{description: "no arguments", args: nil, expect: ""},
	}
	for _, testCase := range testCases {
		output, err := service.echo(ctx, testCase.args)
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.expect, output, testCase.description)
	}
}

func TestService_Date(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	previous := clock.NowFunc
	clock.NowFunc = func() time.Time { return fixed }
	defer func() { clock.NowFunc = previous }()

	service, _ := newTestService(t)
	ctx := context.Background()

	output, err := service.date(ctx, nil)
	assert.Nil(t, err)
	assert.Equal(t, "Fri Mar 01 10:30:00 UTC 2024", output)

	output, _ = service.date(ctx, []string{"2006-01-02"})
	assert.Equal(t, "2024-03-01", output)
}

func TestService_Env(t *testing.T) {
	service, session := newTestService(t)
	ctx := context.Background()

	session.SetEnv("TERMSH_A", "first")
	session.SetEnv("TERMSH_B", "second")

	output, err := service.env(ctx, nil)
	assert.Nil(t, err)
	assert.Contains(t, output, "TERMSH_A=first")
	assert.Contains(t, output, "TERMSH_B=second")

	output, _ = service.env(ctx, []string{"TERMSH_A", "TERMSH_MISSING"})
	lines := strings.Split(output, "\n")
	if assert.Equal(t, 2, len(lines)) {
		assert.Equal(t, "first", lines[0])
		assert.Equal(t, "TERMSH_MISSING: undefined variable", lines[1])
	}
}

func TestService_WhoamiAndHostname(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	name, err := service.whoami(ctx, nil)
	assert.Nil(t, err)
	assert.NotEqual(t, "", name)

	host, err := service.hostname(ctx, nil)
	assert.Nil(t, err)
	expected, _ := os.Hostname()
	assert.Equal(t, expected, host)
}
