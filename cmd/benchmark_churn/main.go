package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/slotparty/slotparty/fanout"
	"github.com/slotparty/slotparty/slot"
)

type churnTestConfig struct {
	name       string // friendly name for the test, should be unique
	handlers   int64  // live handlers during the run
	iterations int64  // emit passes per run
	reconnects int64  // handlers torn down and re-registered per pass
}

func main() {
	cfgs := []churnTestConfig{
		{name: "steady small", handlers: 10, iterations: 100_000, reconnects: 0},
		{name: "steady wide", handlers: 1_000, iterations: 2_000, reconnects: 0},
		{name: "churny small", handlers: 10, iterations: 50_000, reconnects: 5},
		{name: "churny wide", handlers: 1_000, iterations: 1_000, reconnects: 500},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"impl", "handlers", "nTimes", "reconnects", "test", "time", "callRate",
	})

	testRepeats := 5
	for _, cfg := range cfgs {
		log.Printf("Running '%s' config", cfg.name)

		appendBest(table, "slot", cfg, testRepeats, func() int64 {
			return runSlot(cfg)
		})
		appendBest(table, "fanout", cfg, testRepeats, func() int64 {
			return runFanout(cfg)
		})
	}
	table.Render()
}

func appendBest(table *tablewriter.Table, impl string, cfg churnTestConfig, repeats int, runOnce func() int64) {
	// warm up
	runOnce()

	best := time.Hour
	var calls int64
	for i := 0; i < repeats; i++ {
		start := time.Now()
		calls = runOnce()
		if d := time.Since(start); d < best {
			best = d
		}
	}

	callRate := float64(calls) / (float64(best) / float64(time.Millisecond))
	table.Append([]string{
		impl,
		humanize.Comma(cfg.handlers),
		humanize.Comma(cfg.iterations),
		humanize.Comma(cfg.reconnects),
		cfg.name,
		fmt.Sprint(best),
		humanize.Comma(int64(callRate)),
	})
}

func runSlot(cfg churnTestConfig) int64 {
	s := slot.New[int]()
	defer s.Close()

	var calls int64
	handler := func(int) { calls++ }

	conns := make([]*slot.Connection[int], cfg.handlers)
	for i := range conns {
		conns[i] = s.Connect(handler)
	}

	for i := int64(0); i < cfg.iterations; i++ {
		for j := int64(0); j < cfg.reconnects; j++ {
			conns[j].Disconnect()
			conns[j] = s.Connect(handler)
		}
		s.Emit(1)
	}
	return calls
}

func runFanout(cfg churnTestConfig) int64 {
	var e fanout.Emitter[int]

	var calls int64
	handler := func(int) { calls++ }

	offs := make([]func(), cfg.handlers)
	for i := range offs {
		offs[i] = e.On(handler)
	}

	for i := int64(0); i < cfg.iterations; i++ {
		for j := int64(0); j < cfg.reconnects; j++ {
			offs[j]()
			offs[j] = e.On(handler)
		}
		e.Emit(1)
	}
	return calls
}
