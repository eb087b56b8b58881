package usecase

import (
	"context"
	"time"

	"mediashelf/internal/domain/model"
	brokerRepository "mediashelf/internal/domain/repository/broker"
	dbRepository "mediashelf/internal/domain/repository/database"
	"mediashelf/pkg/logger"
)

// Content drives the CRUD cycle of one content kind. The same type backs
// music, books and blogs; only the store and the kind label differ.
type Content struct {
	kind   string
	store  dbRepository.ContentRepo
	events brokerRepository.Publisher
}

func NewContent(kind string, store dbRepository.ContentRepo, events brokerRepository.Publisher) *Content {
	return &Content{
		kind:   kind,
		store:  store,
		events: events,
	}
}

func (u *Content) Add(ctx context.Context, doc model.Content) (string, error) {
	doc.Stamp(time.Now())

	id, err := u.store.Insert(ctx, doc)
	if err != nil {
		return "", err
	}

	u.publish(ctx, "added", id)

	return id, nil
}

func (u *Content) All(ctx context.Context, results any) error {
	return u.store.All(ctx, results)
}

func (u *Content) Update(ctx context.Context, id string, doc model.Content) error {
	if err := u.store.Update(ctx, id, doc.Changes(time.Now())); err != nil {
		return err
	}

	u.publish(ctx, "updated", id)

	return nil
}

func (u *Content) Delete(ctx context.Context, id string) (int64, error) {
	deleted, err := u.store.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		u.publish(ctx, "deleted", id)
	}

	return deleted, nil
}

// publish is best effort: a broker outage never fails the request.
func (u *Content) publish(ctx context.Context, action, id string) {
	if u.events == nil {
		return
	}

	event := brokerRepository.Event{Kind: u.kind, Action: action, ID: id}
	if err := u.events.Publish(ctx, event); err != nil {
		logger.Warn("publishing content event failed",
			"kind", u.kind, "action", action, "err", err)
	}
}
