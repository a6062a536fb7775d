package audit

import (
	"time"

	"workwise/internal/listing"
)

var Table = listing.Table[Event]{
	Columns: []listing.Column[Event]{
		{
			Key:       "createdAt",
			Label:     "When",
			Cell:      func(e Event) string { return e.CreatedAt.Local().Format(time.DateTime) },
			Sortable:  true,
			SortValue: func(e Event) any { return e.CreatedAt },
		},
		{Key: "action", Label: "Action", Cell: func(e Event) string { return e.Action }, Sortable: true},
		{Key: "entityType", Label: "Entity", Cell: func(e Event) string { return e.EntityType }, Sortable: true},
		{Key: "entityId", Label: "ID", Cell: func(e Event) string { return e.EntityID }},
		{Key: "actor", Label: "Actor", Cell: func(e Event) string { return e.ActorID }},
	},
	SearchKeys: []string{"action", "entityType", "entityId", "actor"},
}
