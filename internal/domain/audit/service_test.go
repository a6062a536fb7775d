package audit

import (
	"context"
	"testing"
	"time"
)

func TestRecordAndList(t *testing.T) {
	svc := New(NewMemoryStore())
	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	svc.Now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	ctx := context.Background()

	entries := []Entry{
		{ActorID: "u1", Action: ActionCreate, EntityType: "employee", EntityID: "e1", After: map[string]string{"name": "John"}},
		{ActorID: "u1", Action: ActionDelete, EntityType: "employee", EntityID: "e1", Before: map[string]string{"name": "John"}},
		{ActorID: "u2", Action: ActionApprove, EntityType: "permission", EntityID: "p1"},
	}
	for _, e := range entries {
		if err := svc.Record(ctx, e); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	page, err := svc.List(ctx, Filter{}, false, 0, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.Total != 3 || len(page.Events) != 3 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Events[0].Action != ActionApprove {
		t.Fatalf("expected newest first, got %s", page.Events[0].Action)
	}
	if page.Events[1].Before != nil {
		t.Fatal("details must be omitted unless requested")
	}

	page, _ = svc.List(ctx, Filter{EntityType: "employee"}, true, 1, 1)
	if page.Total != 2 || len(page.Events) != 1 || page.Events[0].Action != ActionCreate {
		t.Fatalf("unexpected filtered page: %+v", page)
	}
	if string(page.Events[0].After) != `{"name":"John"}` {
		t.Fatalf("unexpected snapshot %s", page.Events[0].After)
	}
}
