// Package employeesController holds the list and form view controllers: the
// pagination, filtering, validation, and submission state machines behind the
// employee directory UI. Controllers render nothing; they expose derived
// state and notify interested parties through the event bus.
package employeesController

import "time"

const (
	// RouteList is where every navigation eventually lands.
	RouteList = "/employees"

	pageSizeList  = 8
	pageSizeCards = 4

	toastDuration       = 1200 * time.Millisecond
	submitNavigateDelay = 2000 * time.Millisecond
)

// Navigator is the injected navigation capability. The fiber layer supplies
// the real implementation; tests supply a recorder.
type Navigator interface {
	Go(path string)
}

// Toast is a timed overlay message, a side channel rather than a state.
type Toast struct {
	Visible bool   `json:"visible"`
	Message string `json:"message"`
}
