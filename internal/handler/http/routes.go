// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withTraceID,
		h.withLogging,
		withGZip,
		h.withSession,
		middleware.Recoverer,
		middleware.Timeout(h.requestTimeout),
	)

	// gateway-local
	router.Get("/api/version", h.getVersion)
	router.Get("/api/health", h.getHealth)

	// products
	router.Get("/api/products/public", h.listPublicProducts)
	router.Get("/api/products/public/{id}", h.getPublicProduct)
	router.Get("/api/products/admin", h.listAdminProducts)
	router.Get("/api/products/statuses", h.getProductStatuses)
	router.Post("/api/products/create", h.createProduct)
	router.Put("/api/products/{id}", h.updateProduct)
	router.Delete("/api/products/{id}", h.deleteProduct)

	// brands
	router.Get("/api/brands/admin", h.listAdminBrands)
	router.Post("/api/brands/admin", h.createBrand)
	router.Put("/api/brands/{id}", h.updateBrand)
	router.Delete("/api/brands/{id}", h.deleteBrand)

	// categories
	router.Get("/api/categories", h.listCategories)
	router.Post("/api/categories", h.createCategory)

	// orders
	router.Post("/api/orders/create", h.createGuestOrder)
	router.Get("/api/orders/admin/all", h.listAdminOrders)

	// storefront metadata
	router.Get("/api/meta/categories", h.getMetaCategories)
	router.Get("/api/meta/categories/tree", h.getMetaCategoryTree)
	router.Get("/api/meta/brands", h.getMetaBrands)
	router.Get("/api/meta/brands/popular", h.getMetaPopularBrands)

	// everything else under /api goes to the backend as is
	router.HandleFunc("/api/*", CheckHTTPMethod(h.proxy))

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
