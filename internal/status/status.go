// Package status defines the fixed, ordered set of repair statuses a report
// moves through.
package status

// All lists the statuses in lifecycle order. The store accepts any member at
// any time; the order only matters for display and for the optional strict
// flow check.
var All = []string{
	"Pending Diagnosis",
	"Diagnosed - Awaiting Approval",
	"Awaiting Parts",
	"Repair in Progress",
	"Ready for Pickup",
	"Returned to Customer",
}

// Default is the status assigned to new and promoted reports.
const Default = "Pending Diagnosis"

// Terminal is the last lifecycle stage. Nothing blocks further updates.
const Terminal = "Returned to Customer"

var index = func() map[string]int {
	m := make(map[string]int, len(All))
	for i, s := range All {
		m[s] = i
	}
	return m
}()

func IsValid(s string) bool {
	_, ok := index[s]
	return ok
}

// CanTransition reports whether moving from one status to another is allowed
// under strict flow: same-state and forward moves only. Unknown statuses are
// rejected. With strict flow disabled the store never calls this and any
// member status is accepted at any time.
func CanTransition(from, to string) bool {
	fi, ok := index[from]
	if !ok {
		return false
	}
	ti, ok := index[to]
	if !ok {
		return false
	}
	return ti >= fi
}
