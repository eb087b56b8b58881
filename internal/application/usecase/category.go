package usecase

import (
	"context"
	"time"

	"mediashelf/internal/domain/model"
	brokerRepository "mediashelf/internal/domain/repository/broker"
	dbRepository "mediashelf/internal/domain/repository/database"
	"mediashelf/pkg/logger"
)

type Category struct {
	store  dbRepository.CategoryRepo
	events brokerRepository.Publisher
}

func NewCategory(store dbRepository.CategoryRepo, events brokerRepository.Publisher) *Category {
	return &Category{
		store:  store,
		events: events,
	}
}

func (u *Category) Add(ctx context.Context, category *model.Category) (string, error) {
	category.AddedAt = time.Now()

	id, err := u.store.Insert(ctx, category)
	if err != nil {
		return "", err
	}

	u.publish(ctx, "added", id)

	return id, nil
}

func (u *Category) BySection(ctx context.Context, section string) ([]model.Category, error) {
	return u.store.BySection(ctx, section)
}

func (u *Category) Delete(ctx context.Context, id string) (int64, error) {
	deleted, err := u.store.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		u.publish(ctx, "deleted", id)
	}

	return deleted, nil
}

func (u *Category) publish(ctx context.Context, action, id string) {
	if u.events == nil {
		return
	}

	event := brokerRepository.Event{Kind: "category", Action: action, ID: id}
	if err := u.events.Publish(ctx, event); err != nil {
		logger.Warn("publishing category event failed", "action", action, "err", err)
	}
}
