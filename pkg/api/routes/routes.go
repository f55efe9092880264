// Package routes holds the HTTP handlers of the web API. Handlers read
// and mutate the shared manager set up at server start; every mutation
// failure returns the error message with the prior state untouched.
package routes

import (
	"github.com/fdcrail/railmanager/pkg/timetable"
)

var manager *timetable.Manager

func Setup(m *timetable.Manager) {
	manager = m
}
