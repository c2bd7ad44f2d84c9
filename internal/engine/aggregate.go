package engine

import (
	"runtime"
	"sync"
	"time"

	"github.com/adnxy/react-native-lupin/internal/report"
	"github.com/adnxy/react-native-lupin/internal/types"
)

// Input is one already-loaded bundle.
type Input struct {
	Name string
	Data []byte
}

// ScanAll runs the single-bundle pipeline independently per input on a worker
// pool and merges the results in input order, so the merged report does not
// depend on completion order. Each finding is tagged with its source bundle.
func ScanAll(inputs []Input, opts Options) (report.MultiReport, []error) {
	opts = opts.withDefaults()

	reps := make([]report.Report, len(inputs))
	perInput := make([][]error, len(inputs))

	workers := poolSize(opts.Threads, len(inputs))
	var wg sync.WaitGroup
	jobs := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				reps[i], perInput[i] = Scan(inputs[i].Name, inputs[i].Data, opts)
			}
		}()
	}
	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var all []types.Finding
	var errs []error
	for i, rep := range reps {
		for _, f := range rep.Findings {
			f.Bundle = inputs[i].Name
			all = append(all, f)
		}
		errs = append(errs, perInput[i]...)
	}

	multi := report.MultiReport{
		ScannedAt:     time.Now().UTC(),
		Bundles:       len(inputs),
		TotalFindings: len(all),
		Findings:      all,
		Summary: report.MultiSummary{
			SeverityBreakdown: report.Histogram(all),
			ShowLevel:         string(opts.ShowThreshold),
		},
	}
	return multi, errs
}

func poolSize(threads, inputs int) int {
	if threads <= 0 {
		threads = runtime.GOMAXPROCS(0)
	}
	if threads > 32 {
		threads = 32
	}
	if inputs > 0 && threads > inputs {
		threads = inputs
	}
	if threads < 1 {
		threads = 1
	}
	return threads
}
