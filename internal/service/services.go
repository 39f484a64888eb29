// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/storefront-gateway/internal/adapter"
	"github.com/MKhiriev/storefront-gateway/internal/config"
	"github.com/MKhiriev/storefront-gateway/internal/logger"
	"github.com/MKhiriev/storefront-gateway/models"
)

type Services struct {
	ProductService  ProductService
	BrandService    BrandService
	CategoryService CategoryService
	OrderService    OrderService
	MetaService     MetaService
	ProxyService    ProxyService
	AppInfoService  AppInfoService
}

func NewServices(backend adapter.BackendAdapter, cfg *config.GatewayConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	if backend == nil {
		return nil, ErrNoBackendAdapter
	}

	appInfoService, err := NewAppInfoService(cfg, buildInfo, backend, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ProductService:  NewProductService(backend, logger),
		BrandService:    NewBrandService(backend, logger),
		CategoryService: NewCategoryService(backend, logger),
		OrderService:    NewOrderService(backend, logger),
		MetaService:     NewMetaService(backend, logger),
		ProxyService:    NewProxyService(backend, logger),
		AppInfoService:  appInfoService,
	}, nil
}
