package data

import (
	"sort"
	"time"
)

func sortTimes(ts []time.Time) {
	sort.Slice(ts, func(i, j int) bool {
		return ts[i].Before(ts[j])
	})
}
