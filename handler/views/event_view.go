package views

import (
	"lending/core"
)

// Event event view, kind specific fields inlined
type Event struct {
	*core.Event
	Data core.EventData `json:"data"`
}

// Events views of events
func Events(events []*core.Event) []Event {
	views := make([]Event, 0, len(events))
	for _, e := range events {
		data, _ := e.UnmarshalData()
		views = append(views, Event{Event: e, Data: data})
	}

	return views
}
