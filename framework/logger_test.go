package framework

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCapturingLoggerKeepsMessagesInOrder(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 30, 45, int(123*time.Millisecond), time.UTC)
	l := CapturingLogger{now: func() time.Time { return fixed }}
	l.Printf("a %d", 1)
	l.Printf("b")

	out := l.Output()
	assert.Equal(t, CapturedOutput{
		{Time: fixed, Message: "a 1"},
		{Time: fixed, Message: "b"},
	}, out)
}

func TestCapturedOutputIsACopy(t *testing.T) {
	var l CapturingLogger
	l.Printf("a")
	out := l.Output()
	l.Printf("b")
	assert.Len(t, out, 1)
}

func TestDumpPrefixesEveryLine(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 30, 45, int(123*time.Millisecond), time.UTC)
	output := CapturedOutput{
		{Time: fixed, Message: "single"},
		{Time: fixed, Message: "first\nsecond\n"},
	}
	var buf strings.Builder
	output.Dump(&buf, "  DEBUG ")

	assert.Equal(t,
		"  DEBUG [2024-03-01 12:30:45.123] single\n"+
			"  DEBUG [2024-03-01 12:30:45.123] first\n"+
			"  DEBUG "+strings.Repeat(" ", len("[2024-03-01 12:30:45.123] "))+"second\n",
		buf.String())
}

func TestNullLoggerDiscards(t *testing.T) {
	NullLogger().Printf("nothing %s", "here")
}
