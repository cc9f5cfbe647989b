package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tchw/lftree/future"
)

var (
	widths = []int{1, 10, 100, 1_000}
	depths = []int{1, 10, 100, 1_000}
	iters  = 100
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

	benchmarkFanout(true)
	benchmarkChain(true)
	benchmarkSieve(true)
}

// benchmarkFanout measures a single delivery resolving w independent
// pending receives.
func benchmarkFanout(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Deliver fan-out")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range widths {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		for i := 0; i < iters; i++ {
			handles := make([]future.Future[int], w)
			for j := 0; j < w; j++ {
				handles[j] = future.Receive[int]()
			}

			start := time.Now()
			if n := future.Deliver(i); n != w {
				log.Fatalf("fan-out %d: delivered %d", w, n)
			}
			tach.AddTime(time.Since(start))

			for _, h := range handles {
				if !h.Ready() {
					log.Fatal("fan-out: unresolved handle")
				}
			}
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("deliver to %s receives", humanize.Comma(int64(w))),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkChain measures a delivery propagating through a bind chain of
// depth h.
func benchmarkChain(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Bind chain propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, h := range depths {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		for i := 0; i < iters; i++ {
			last := future.Receive[int]()
			for j := 0; j < h; j++ {
				last = future.Bind1[int](last, func(v int) future.Future[int] {
					return future.Resolved(v + 1)
				})
			}

			start := time.Now()
			if n := future.Deliver(i); n != 1 {
				log.Fatalf("chain %d: delivered %d", h, n)
			}
			tach.AddTime(time.Since(start))

			if !last.Ready() || last.Get() != i+h {
				log.Fatalf("chain %d: got %d, want %d", h, last.Get(), i+h)
			}
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("chain depth %s", humanize.Comma(int64(h))),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkSieve measures per-delivery latency of a predicate receive that
// rejects n values before accepting, regrafting its output each round.
func benchmarkSieve(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Predicate receive regraft")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, n := range []int{10, 100, 1_000, 10_000} {
		tach := tachymeter.New(&tachymeter.Config{Size: n + 1})

		x := future.ReceiveWhen(func(i int) bool { return i == n })
		for i := 0; i <= n; i++ {
			start := time.Now()
			if got := future.Deliver(i); got != 1 {
				log.Fatalf("sieve %d: delivered %d", n, got)
			}
			tach.AddTime(time.Since(start))
		}
		if !x.Ready() || x.Get() != n {
			log.Fatalf("sieve %d: got %d", n, x.Get())
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("reject %s values", humanize.Comma(int64(n))),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
