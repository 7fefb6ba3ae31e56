// Package publish turns Markdown documents into blog posts.
//
// Documents are rendered with goldmark (GitHub Flavored Markdown, footnotes,
// typographer, linkify and heading ids) and sanitised with a bluemonday UGC
// policy before submission. In raw mode the Markdown is sent unchanged with
// the "[Markdown]" category, which makes cnblogs render it server-side.
//
// The post title comes from the options, else from the first level-one
// heading (which is then dropped from the body), else from the file name.
package publish
