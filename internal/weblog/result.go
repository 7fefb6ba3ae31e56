package weblog

import (
	"metaweblog/internal/domain"
	"metaweblog/internal/wire"
)

const (
	// PostIDUnparsed is returned by newPost when the result is not a String.
	PostIDUnparsed = "-2"
	// CategoryIDUnparsed is returned by newCategory when the result is not an Int.
	CategoryIDUnparsed = -1
)

// PostIDResult reads the id returned by newPost.
func PostIDResult(v wire.Value) string {
	if id, ok := wire.AsString(v); ok {
		return id
	}
	return PostIDUnparsed
}

// CategoryIDResult reads the id returned by wp.newCategory.
func CategoryIDResult(v wire.Value) int {
	if id, ok := wire.AsInt(v); ok {
		return id
	}
	return CategoryIDUnparsed
}

// BoolResult reads a Bool result, falling back to false.
func BoolResult(v wire.Value) bool {
	b, _ := wire.AsBool(v)
	return b
}

// listFrom converts every Struct element of v with conv. Elements of any
// other variant are skipped and counted. A non-Array v yields an empty list.
func listFrom[T any](v wire.Value, conv func(wire.Struct) T) ([]T, int) {
	arr, ok := wire.AsArray(v)
	if !ok {
		return []T{}, 0
	}
	out := make([]T, 0, len(arr))
	skipped := 0
	for _, el := range arr {
		s, ok := wire.AsStruct(el)
		if !ok {
			skipped++
			continue
		}
		out = append(out, conv(s))
	}
	return out, skipped
}

// PostsFrom reads a getRecentPosts result and the number of skipped elements.
func PostsFrom(v wire.Value) ([]domain.Post, int) {
	return listFrom(v, postFromStruct)
}

// CategoriesFrom reads a getCategories result and the number of skipped elements.
func CategoriesFrom(v wire.Value) ([]domain.CategoryInfo, int) {
	return listFrom(v, categoryFromStruct)
}

// BlogsFrom reads a getUsersBlogs result and the number of skipped elements.
func BlogsFrom(v wire.Value) ([]domain.BlogInfo, int) {
	return listFrom(v, blogFromStruct)
}
