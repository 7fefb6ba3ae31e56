package domain

import (
	interfaces "metaweblog/internal/domain/interfaces"
	types "metaweblog/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Post           = types.Post
	CategoryInfo   = types.CategoryInfo
	WpCategory     = types.WpCategory
	BlogInfo       = types.BlogInfo
	Credentials    = types.Credentials
	Profile        = types.Profile
	Fingerprint    = types.Fingerprint
	Document       = types.Document
	PublishOptions = types.PublishOptions
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Caller         = interfaces.Caller
	BlogClient     = interfaces.BlogClient
	ProfileStore   = interfaces.ProfileStore
	ProfileService = interfaces.ProfileService
	PublishService = interfaces.PublishService
)
