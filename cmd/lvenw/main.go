// lvenw is a console Xiangqi program: the human plays Red, the engine
// answers for Black.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/luuyiran/lvenw/pkg/engine"
	"github.com/luuyiran/lvenw/pkg/engine/console"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Uint("depth", 0, "Search depth limit (zero if no limit)")
	movetime = flag.Duration("movetime", 0, "Wall-clock budget per engine turn (default 1s)")
	noise    = flag.Int("noise", 0, "Evaluation noise limit (zero for deterministic play)")
	seed     = flag.Int64("seed", 0, "Evaluation noise seed")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: lvenw [options]

lvenw is a console Xiangqi program. Enter moves in coordinate form, files
'a'..'i' and ranks '0' (Red back rank) to '9', e.g. "h2e2". 'quit' exits.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	logw.Infof(ctx, "lvenw Xiangqi engine")

	var opts []engine.Option
	if *depth > 0 {
		opts = append(opts, engine.WithDepthLimit(*depth))
	}
	if *movetime > 0 {
		opts = append(opts, engine.WithMoveTime(*movetime))
	}
	if *noise > 0 {
		s := *seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		opts = append(opts, engine.WithNoise(*noise, s))
	}

	e := engine.New(ctx, "lvenw", "luuyiran", opts...)

	in := engine.ReadStdinLines(ctx)
	driver, out := console.NewDriver(ctx, e, in)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
}
