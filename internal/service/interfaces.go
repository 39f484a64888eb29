// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the gateway use cases. Each service is a thin
// pass-through over [adapter.BackendAdapter]: it maps the UI's query
// vocabulary onto the backend's, normalizes response shapes where the UI
// needs a canonical form, and otherwise surfaces backend outcomes verbatim.
package service

import (
	"context"
	"net/url"

	"github.com/MKhiriev/storefront-gateway/models"
)

// ProductService proxies the product catalog.
type ProductService interface {
	// ListPublic returns the public catalog in canonical list form. query is
	// forwarded unchanged.
	ListPublic(ctx context.Context, query url.Values) (models.ListResponse, error)
	// ListAdmin maps the admin filters onto the backend's query names and
	// returns the list with normalized pagination.
	ListAdmin(ctx context.Context, q models.ProductAdminQuery) (models.ListResponse, error)
	// Get returns a single product wrapped as {"data": product}.
	Get(ctx context.Context, id string) (models.ItemResponse, error)
	Create(ctx context.Context, body []byte) (models.BackendResponse, error)
	Update(ctx context.Context, id string, body []byte) (models.BackendResponse, error)
	Delete(ctx context.Context, id string) (models.BackendResponse, error)
	Statuses(ctx context.Context) (models.BackendResponse, error)
}

// BrandService proxies brand administration.
type BrandService interface {
	ListAdmin(ctx context.Context, q models.BrandAdminQuery) (models.BackendResponse, error)
	// Create answers 201 on success regardless of the backend's 2xx code.
	Create(ctx context.Context, body []byte) (models.BackendResponse, error)
	Update(ctx context.Context, id string, body []byte) (models.BackendResponse, error)
	Delete(ctx context.Context, id string) (models.BackendResponse, error)
}

// CategoryService proxies categories.
type CategoryService interface {
	List(ctx context.Context, q models.CategoryQuery) (models.BackendResponse, error)
	// Create requires a session token in ctx and returns
	// [ErrAuthenticationRequired] without calling the backend otherwise.
	Create(ctx context.Context, body []byte) (models.BackendResponse, error)
}

// OrderService proxies checkout and order administration.
type OrderService interface {
	// CreateGuest validates the customer block and forwards the payload
	// unchanged to the backend's guest checkout.
	CreateGuest(ctx context.Context, body []byte) (models.BackendResponse, error)
	ListAdmin(ctx context.Context, q models.OrderListQuery) (models.BackendResponse, error)
}

// MetaService serves the public lookup data used by storefront filters.
type MetaService interface {
	Categories(ctx context.Context) (models.ListResponse, error)
	CategoryTree(ctx context.Context) (models.BackendResponse, error)
	Brands(ctx context.Context) (models.ListResponse, error)
	PopularBrands(ctx context.Context) (models.ListResponse, error)
}

// ProxyService forwards arbitrary /api/* calls through the URL resolver.
type ProxyService interface {
	Forward(ctx context.Context, req models.BackendRequest) (models.BackendResponse, error)
}

// AppInfoService reports gateway metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
	Health(ctx context.Context) models.HealthResponse
}
