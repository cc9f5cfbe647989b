package main

import (
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/tchw/lftree/future"
)

type stressConfig struct {
	name               string
	run                func() int
	expectedDeliveries int
}

func main() {
	log.Print("Starting lftree stress run, please wait...")
	defer log.Print("Finished lftree stress run")

	configs := []stressConfig{
		{
			name:               "predicate sieve",
			run:                predicateSieve(100_000),
			expectedDeliveries: 100_001,
		},
		{
			name:               "fan-out",
			run:                fanOut(1_000, 500),
			expectedDeliveries: 500_000,
		},
		{
			name:               "alt churn",
			run:                altChurn(100_000),
			expectedDeliveries: 100_000,
		},
		{
			name:               "nested regraft",
			run:                nestedRegraft(50_000),
			expectedDeliveries: 150_000,
		},
	}

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"scenario", "deliveries", "elapsed", "deliveries/sec"})

	for _, cfg := range configs {
		start := time.Now()
		deliveries := cfg.run()
		elapsed := time.Since(start)

		if deliveries != cfg.expectedDeliveries {
			log.Fatalf("%s: %d deliveries, expected %d", cfg.name, deliveries, cfg.expectedDeliveries)
		}

		perSec := float64(deliveries) / elapsed.Seconds()
		tbl.Append([]string{
			cfg.name,
			humanize.Comma(int64(deliveries)),
			elapsed.Round(time.Millisecond).String(),
			humanize.CommafWithDigits(perSec, 0),
		})
	}

	tbl.Render()
}

// predicateSieve drives a predicate receive through n rejections and one
// acceptance; every delivery must reach exactly one live receive.
func predicateSieve(n int) func() int {
	return func() int {
		x := future.ReceiveWhen(func(i int) bool { return i == n })
		total := 0
		for i := 0; i <= n; i++ {
			total += future.Deliver(i)
		}
		if !x.Ready() || x.Get() != n {
			log.Fatalf("predicate sieve: got %d, want %d", x.Get(), n)
		}
		return total
	}
}

// fanOut registers width receives per round and resolves them with a single
// delivery.
func fanOut(width, rounds int) func() int {
	return func() int {
		total := 0
		for r := 0; r < rounds; r++ {
			handles := make([]future.Future[int], width)
			for i := range handles {
				handles[i] = future.Receive[int]()
			}
			total += future.Deliver(r)
			for _, h := range handles {
				if h.Get() != r {
					log.Fatalf("fan-out: got %d, want %d", h.Get(), r)
				}
			}
		}
		return total
	}
}

// altChurn resolves an alt per round and then delivers to the losing branch,
// which must no longer count.
func altChurn(rounds int) func() int {
	return func() int {
		total := 0
		for r := 0; r < rounds; r++ {
			x := future.Alt2[int](future.Receive[int](), future.Receive[string](),
				func(i int) future.Future[int] { return future.Resolved(i) },
				func(string) future.Future[int] { return future.Resolved(-1) })
			total += future.Deliver(r)
			if n := future.Deliver("loser"); n != 0 {
				log.Fatalf("alt churn: losing branch reached %d receives", n)
			}
			if x.Get() != r {
				log.Fatalf("alt churn: got %d, want %d", x.Get(), r)
			}
		}
		return total
	}
}

// nestedRegraft resolves a bind whose callback returns a fresh two-input
// bind, so every round exercises the graft path once.
func nestedRegraft(rounds int) func() int {
	return func() int {
		total := 0
		for r := 0; r < rounds; r++ {
			x := future.Bind1[int](future.Receive[int](), func(i int) future.Future[int] {
				return future.Bind2[int](future.Receive[int](), future.Receive[int](),
					func(a, b int) future.Future[int] { return future.Resolved(i + a + b) })
			})
			total += future.Deliver(1)
			total += future.Deliver(2)
			if !x.Ready() || x.Get() != 5 {
				log.Fatalf("nested regraft: got %d, want 5", x.Get())
			}
		}
		return total
	}
}
