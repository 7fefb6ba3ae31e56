package weblog

import (
	"sort"

	"metaweblog/internal/domain"
	"metaweblog/internal/wire"
)

// PostValue converts p into the Struct sent to newPost and editPost.
//
// title and description are always present. Every other member is omitted
// when its field is unset: empty strings, a zero DateCreated, nil
// Categories and nil CustomFields.
func PostValue(p domain.Post) wire.Struct {
	s := wire.Struct{
		keyTitle:       wire.String(p.Title),
		keyDescription: wire.String(p.Description),
	}
	putString(s, keyPostID, p.PostID)
	putString(s, keyLink, p.Link)
	putString(s, keyPermalink, p.Permalink)
	putString(s, keyUserID, p.UserID)
	putString(s, keyExcerpt, p.Excerpt)
	putString(s, keyKeywords, p.Keywords)
	putString(s, keySlug, p.Slug)
	if p.Categories != nil {
		s[keyCategories] = wire.Strings(p.Categories)
	}
	if p.HasDate() {
		s[keyDateCreated] = wire.DateTime(p.DateCreated)
	}
	if p.CustomFields != nil {
		s[keyCustomFields] = customFieldsValue(p.CustomFields)
	}
	return s
}

// PostFrom reads a Post from v. A non-Struct v yields the zero Post.
func PostFrom(v wire.Value) domain.Post {
	s, ok := wire.AsStruct(v)
	if !ok {
		return domain.Post{}
	}
	return postFromStruct(s)
}

func postFromStruct(s wire.Struct) domain.Post {
	return domain.Post{
		PostID:       stringField(s, keyPostID),
		Title:        stringField(s, keyTitle),
		Description:  stringField(s, keyDescription),
		Link:         stringField(s, keyLink),
		Permalink:    stringField(s, keyPermalink),
		Categories:   stringsField(s, keyCategories),
		DateCreated:  timeField(s, keyDateCreated),
		UserID:       stringField(s, keyUserID),
		Excerpt:      stringField(s, keyExcerpt),
		Keywords:     stringField(s, keyKeywords),
		Slug:         stringField(s, keySlug),
		CustomFields: customFieldsFrom(s[keyCustomFields]),
	}
}

// customFieldsValue emits {key, value} structs ordered by key so the
// encoding is deterministic.
func customFieldsValue(fields map[string]string) wire.Array {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(wire.Array, 0, len(keys))
	for _, k := range keys {
		out = append(out, wire.Struct{
			keyFieldKey:   wire.String(k),
			keyFieldValue: wire.String(fields[k]),
		})
	}
	return out
}

// customFieldsFrom reads the custom_fields array. Entries without a String
// key are dropped; a repeated key keeps its last value.
func customFieldsFrom(v wire.Value) map[string]string {
	arr, ok := wire.AsArray(v)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(arr))
	for _, el := range arr {
		s, ok := wire.AsStruct(el)
		if !ok {
			continue
		}
		k, ok := wire.AsString(s[keyFieldKey])
		if !ok || k == "" {
			continue
		}
		out[k] = stringField(s, keyFieldValue)
	}
	return out
}
