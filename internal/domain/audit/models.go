package audit

import (
	"encoding/json"
	"time"
)

const (
	ActionCreate  = "create"
	ActionUpdate  = "update"
	ActionDelete  = "delete"
	ActionApprove = "approve"
	ActionReject  = "reject"
	ActionAssign  = "assign"
)

type Event struct {
	ID         string          `json:"id"`
	ActorID    string          `json:"actorId"`
	Action     string          `json:"action"`
	EntityType string          `json:"entityType"`
	EntityID   string          `json:"entityId"`
	RequestID  string          `json:"requestId"`
	IP         string          `json:"ip"`
	CreatedAt  time.Time       `json:"createdAt"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
}

func (e Event) Key() string         { return e.ID }
func (e *Event) WithKey(id string) { e.ID = id }

// Entry is what a handler knows about a mutation. Before and After are
// marshalled to JSON snapshots.
type Entry struct {
	ActorID    string
	Action     string
	EntityType string
	EntityID   string
	RequestID  string
	IP         string
	Before     any
	After      any
}

type Filter struct {
	Action     string
	EntityType string
	ActorUser  string
}

func (f Filter) Match(e Event) bool {
	return (f.Action == "" || e.Action == f.Action) &&
		(f.EntityType == "" || e.EntityType == f.EntityType) &&
		(f.ActorUser == "" || e.ActorID == f.ActorUser)
}
