// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/storefront-gateway/internal/adapter"
	"github.com/MKhiriev/storefront-gateway/internal/logger"
	"github.com/MKhiriev/storefront-gateway/internal/validators"
	"github.com/MKhiriev/storefront-gateway/models"
)

// Admin order list defaults.
const (
	DefaultOrderPage = 1
	DefaultOrderSize = 10
)

type orderService struct {
	backend   adapter.BackendAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewOrderService(backend adapter.BackendAdapter, logger *logger.Logger) OrderService {
	return &orderService{
		backend:   backend,
		validator: validators.NewOrderValidator(),
		logger:    logger,
	}
}

// CreateGuest forwards body to the guest checkout endpoint. The backend's
// status code and content type are kept as they are.
func (s *orderService) CreateGuest(ctx context.Context, body []byte) (models.BackendResponse, error) {
	var order models.GuestOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return models.BackendResponse{}, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	if err := s.validator.Validate(ctx, order); err != nil {
		logger.FromContext(ctx).Info().Err(err).Msg("guest order rejected")
		return models.BackendResponse{}, fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}

	return forward(ctx, s.backend, models.BackendRequest{
		Method: http.MethodPost,
		Path:   "/orders/guest",
		Body:   body,
	}, 0)
}

func (s *orderService) ListAdmin(ctx context.Context, q models.OrderListQuery) (models.BackendResponse, error) {
	query := url.Values{}
	query.Set("page", itoa(positiveOr(q.Page, DefaultOrderPage)))
	query.Set("size", itoa(positiveOr(q.Size, DefaultOrderSize)))

	return forward(ctx, s.backend, models.BackendRequest{
		Method: http.MethodGet,
		Path:   "/orders/admin/all",
		Query:  query,
	}, http.StatusOK)
}
