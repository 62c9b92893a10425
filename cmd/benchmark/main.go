package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/slotparty/slotparty/fanout"
	"github.com/slotparty/slotparty/slot"
)

var (
	ww    = []int{1, 10, 100, 1_000}
	iters = 100
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkSlot(true)
	benchmarkFanout(true)
}

func benchmarkSlot(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Slot Signals")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		s := slot.New[int]()
		sink := 0
		for i := 0; i < w; i++ {
			s.Connect(func(v int) { sink += v })
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			s.Emit(1)
			tach.AddTime(time.Since(start))
		}
		appendCalc(tbl, fmt.Sprintf("emit: %d conns", w), tach)

		// Churn: one connection removes itself each pass and a
		// replacement joins at the back, the hot path of reentrant
		// dispatch.
		tach = tachymeter.New(&tachymeter.Config{Size: iters})
		var churn *slot.Connection[int]
		reconnect := func() {
			churn = s.Connect(func(v int) {
				sink += v
				churn.Disconnect()
			})
		}
		reconnect()
		for i := 0; i < iters; i++ {
			start := time.Now()
			s.Emit(1)
			reconnect()
			tach.AddTime(time.Since(start))
		}
		appendCalc(tbl, fmt.Sprintf("churn: %d conns", w), tach)
		s.Close()
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkFanout(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Fanout Baseline")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		var e fanout.Emitter[int]
		sink := 0
		for i := 0; i < w; i++ {
			e.On(func(v int) { sink += v })
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			e.Emit(1)
			tach.AddTime(time.Since(start))
		}
		appendCalc(tbl, fmt.Sprintf("emit: %d handlers", w), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}

func appendCalc(tbl table.Writer, name string, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRows([]table.Row{
		{
			name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		},
	})
}
