package broker

import "context"

// Event announces one content mutation to interested consumers.
type Event struct {
	Kind   string // music, book, blog, category, media
	Action string // added, updated, deleted
	ID     string
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
