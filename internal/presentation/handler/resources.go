package handler

import "mediashelf/internal/domain/model"

// The three content kinds served by the shared CRUD handler.
var (
	MusicResource = Resource{
		Label:   "Music",
		IDKey:   "musicId",
		New:     func() model.Content { return &model.Music{} },
		NewList: func() any { return &[]model.Music{} },
	}

	BookResource = Resource{
		Label:   "Book",
		IDKey:   "bookId",
		New:     func() model.Content { return &model.Book{} },
		NewList: func() any { return &[]model.Book{} },
	}

	BlogResource = Resource{
		Label:   "Blog",
		IDKey:   "blogId",
		New:     func() model.Content { return &model.Blog{} },
		NewList: func() any { return &[]model.Blog{} },
	}
)
