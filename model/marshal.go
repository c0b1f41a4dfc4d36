package model

import (
	"encoding/json"
)

// Events serialize their "user" field the way the document store populates it:
// the owner's public projection when joined, the raw owner id otherwise.

func (e ConcertEvent) MarshalJSON() ([]byte, error) {
	type alias ConcertEvent
	out := struct {
		alias
		User interface{} `json:"user"`
	}{alias: alias(e), User: e.UserID}
	if e.User != nil {
		out.User = e.User
	}
	return json.Marshal(out)
}

func (e PersonalEvent) MarshalJSON() ([]byte, error) {
	type alias PersonalEvent
	out := struct {
		alias
		User interface{} `json:"user"`
	}{alias: alias(e), User: e.UserID}
	if e.User != nil {
		out.User = e.User
	}
	return json.Marshal(out)
}
