package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	testCases := []struct {
		value  uint64
		expect string
	}{
		{value: 0, expect: "0 B"},
		{value: 1024, expect: "1.0 KiB"},
		{value: 16 * 1024 * 1024 * 1024, expect: "16 GiB"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, FormatBytes(testCase.value))
	}
}

func TestFormatUptime(t *testing.T) {
	testCases := []struct {
		description string
		uptime      time.Duration
		expect      string
	}{
		{description: "zero", uptime: 0, expect: "0s"},
		{description: "seconds only", uptime: 42 * time.Second, expect: "42s"},
		{description: "full units", uptime: 26*time.Hour + 3*time.Minute + 4*time.Second, expect: "1d 2h 3m 4s"},
		{description: "leading zero units omitted", uptime: 5 * time.Minute, expect: "5m"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, FormatUptime(testCase.uptime), testCase.description)
	}
}
