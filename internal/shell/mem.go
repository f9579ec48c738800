// SPDX-License-Identifier: MIT

package shell

import (
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/shirou/gopsutil/v3/process"
)

// memStats is what dbg_mem reports.
type memStats struct {
	heap   uint64 // live heap bytes (runtime)
	rss    uint64 // resident set size (OS)
	rssErr error
}

// readMem samples the Go heap and the process RSS.
func readMem() memStats {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	st := memStats{heap: ms.HeapAlloc}

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		st.rssErr = errors.Wrap(err, "failed to open process")

		return st
	}
	info, err := p.MemoryInfo()
	if err != nil {
		st.rssErr = errors.Wrap(err, "failed to get memory stats")

		return st
	}
	st.rss = info.RSS

	return st
}
