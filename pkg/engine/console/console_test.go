package console_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/luuyiran/lvenw/pkg/engine"
	"github.com/luuyiran/lvenw/pkg/engine/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(out <-chan string) []string {
	var lines []string
	for line := range out {
		lines = append(lines, line)
	}
	return lines
}

func TestDriverQuit(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "lvenw", "test", engine.WithDepthLimit(1))

	in := make(chan string, 2)
	in <- "quit"
	close(in)

	driver, out := console.NewDriver(ctx, e, in)
	lines := drain(out)

	select {
	case <-driver.Closed():
	case <-time.After(5 * time.Second):
		t.Fatal("driver did not close")
	}

	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "engine lvenw")
	assert.False(t, driver.GameOverSeen())
}

func TestDriverMoveExchange(t *testing.T) {
	ctx := context.Background()
	e := engine.New(ctx, "lvenw", "test",
		engine.WithDepthLimit(1),
		engine.WithMoveTime(10*time.Millisecond),
	)

	in := make(chan string, 4)
	in <- "bogus"
	in <- "h2e2"
	in <- "quit"
	close(in)

	driver, out := console.NewDriver(ctx, e, in)
	lines := drain(out)
	<-driver.Closed()

	assert.Contains(t, strings.Join(lines, "\n"), "invalid move: 'bogus'")
	assert.Contains(t, strings.Join(lines, "\n"), "move h2e2")
}
