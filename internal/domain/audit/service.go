package audit

import (
	"context"
	"encoding/json"
	"time"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type Service struct {
	Store StoreAPI
	Now   func() time.Time
}

func New(store StoreAPI) *Service {
	return &Service{Store: store, Now: time.Now}
}

func (s *Service) Record(ctx context.Context, entry Entry) error {
	evt := Event{
		ActorID:    entry.ActorID,
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		RequestID:  entry.RequestID,
		IP:         entry.IP,
		CreatedAt:  s.Now().UTC(),
	}
	var err error
	if evt.Before, err = snapshot(entry.Before); err != nil {
		return err
	}
	if evt.After, err = snapshot(entry.After); err != nil {
		return err
	}
	return s.Store.Insert(ctx, evt)
}

func snapshot(v any) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

type Page struct {
	Events []Event `json:"events"`
	Total  int     `json:"total"`
}

func (s *Service) List(ctx context.Context, filter Filter, includeDetails bool, limit, offset int) (Page, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	total, err := s.Store.Count(ctx, filter)
	if err != nil {
		return Page{}, err
	}
	events, err := s.Store.List(ctx, filter, includeDetails, limit, offset)
	if err != nil {
		return Page{}, err
	}
	return Page{Events: events, Total: total}, nil
}
