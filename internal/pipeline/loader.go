package pipeline

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/theirongolddev/wealthtwin/internal/source"
)

// LoadResult holds the output of loading a directory of profile files.
type LoadResult struct {
	Profiles   []source.ProfileFile
	Failures   []FileFailure
	TotalFiles int
}

// FileFailure records a profile file that could not be parsed.
type FileFailure struct {
	Path string
	Err  error
}

// ProgressFunc is called during loading to report progress.
// current is the number of files processed so far, total is the total count.
type ProgressFunc func(current, total int)

// LoadDir discovers and parses all profile files in dir using a bounded
// worker pool. Results keep the directory's sorted order.
func LoadDir(dir string, progressFn ProgressFunc) (*LoadResult, error) {
	files, err := source.ScanDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	result := &LoadResult{TotalFiles: len(files)}
	if len(files) == 0 {
		return result, nil
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	type parsed struct {
		pf  source.ProfileFile
		err error
	}

	work := make(chan int, len(files))
	results := make([]parsed, len(files))
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range files {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				pf, err := source.ParseFile(files[idx].Path)
				results[idx] = parsed{pf: pf, err: err}
				n := processed.Add(1)
				if progressFn != nil {
					progressFn(int(n), len(files))
				}
			}
		}()
	}

	wg.Wait()

	for i, r := range results {
		if r.err != nil {
			result.Failures = append(result.Failures, FileFailure{Path: files[i].Path, Err: r.err})
			continue
		}
		result.Profiles = append(result.Profiles, r.pf)
	}

	return result, nil
}
