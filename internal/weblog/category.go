package weblog

import (
	"metaweblog/internal/domain"
	"metaweblog/internal/wire"
)

// WpCategoryValue converts c into the wp.newCategory payload. name is
// always present; the rest are omitted when unset.
func WpCategoryValue(c domain.WpCategory) wire.Struct {
	s := wire.Struct{keyName: wire.String(c.Name)}
	putString(s, keyCatSlug, c.Slug)
	putInt(s, keyCatParentID, c.ParentID)
	putString(s, keyDescription, c.Description)
	return s
}

// CategoryInfoFrom reads one getCategories entry.
func CategoryInfoFrom(v wire.Value) domain.CategoryInfo {
	s, ok := wire.AsStruct(v)
	if !ok {
		return domain.CategoryInfo{}
	}
	return categoryFromStruct(s)
}

func categoryFromStruct(s wire.Struct) domain.CategoryInfo {
	return domain.CategoryInfo{
		CategoryID:  intField(s, keyCategoryID),
		ParentID:    intField(s, keyParentID),
		Title:       stringField(s, keyTitle),
		Description: stringField(s, keyDescription),
		HTMLURL:     stringField(s, keyHTMLURL),
		RSSURL:      stringField(s, keyRSSURL),
	}
}

// BlogInfoFrom reads one getUsersBlogs entry.
func BlogInfoFrom(v wire.Value) domain.BlogInfo {
	s, ok := wire.AsStruct(v)
	if !ok {
		return domain.BlogInfo{}
	}
	return blogFromStruct(s)
}

func blogFromStruct(s wire.Struct) domain.BlogInfo {
	return domain.BlogInfo{
		BlogID:   stringField(s, keyBlogID),
		URL:      stringField(s, keyURL),
		BlogName: stringField(s, keyBlogName),
	}
}
