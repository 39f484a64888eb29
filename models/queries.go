// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProductAdminQuery holds the admin product list filters as the UI sends
// them. Zero values mean "not provided".
type ProductAdminQuery struct {
	Search     string
	CategoryID string
	Status     string
	Page       int
	Size       int
}

// BrandAdminQuery holds the admin brand list filters. Page 0 is the UI's
// first page.
type BrandAdminQuery struct {
	IncludeInactive string
	Search          string
	Page            int
	Limit           int
}

// CategoryQuery holds the category list filters.
type CategoryQuery struct {
	IncludeInactive string
	Parent          string
}

// OrderListQuery holds the admin order list paging.
type OrderListQuery struct {
	Page int
	Size int
}
