// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/MKhiriev/storefront-gateway/internal/logger"
	"github.com/MKhiriev/storefront-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validOrder = `{"customer":{"fullName":"Nguyen Van A","phone":"0900000000","address":"1 Le Loi"},"items":[{"productId":"p1","quantity":2}]}`

func TestOrderService_CreateGuest_Forwards(t *testing.T) {
	backend := newBackendMock(t)
	got := captureRequest(backend, models.BackendResponse{
		StatusCode:  http.StatusCreated,
		ContentType: "application/json; charset=utf-8",
		Body:        []byte(`{"orderId":"o1"}`),
	}, nil)
	svc := NewOrderService(backend, logger.Nop())

	resp, err := svc.CreateGuest(context.Background(), []byte(validOrder))

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/orders/guest", got.Path)
	assert.Equal(t, validOrder, string(got.Body))
	assert.False(t, got.Anonymous)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/json; charset=utf-8", resp.ContentType)
}

func TestOrderService_CreateGuest_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"not json", `{`, ErrInvalidRequestBody},
		{"wrong type", `{"customer":"x"}`, ErrInvalidRequestBody},
		{"no customer", `{"items":[]}`, ErrInvalidOrder},
		{"empty customer", `{"customer":{}}`, ErrInvalidOrder},
		{"missing phone", `{"customer":{"fullName":"A","address":"B"}}`, ErrInvalidOrder},
		{"missing address", `{"customer":{"fullName":"A","phone":"1"}}`, ErrInvalidOrder},
		{"blank name", `{"customer":{"fullName":"","phone":"1","address":"B"}}`, ErrInvalidOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewOrderService(newBackendMock(t), logger.Nop())

			_, err := svc.CreateGuest(context.Background(), []byte(tt.body))

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOrderService_ListAdmin(t *testing.T) {
	tests := []struct {
		name string
		in   models.OrderListQuery
		want url.Values
	}{
		{"defaults", models.OrderListQuery{}, url.Values{"page": {"1"}, "size": {"10"}}},
		{"explicit", models.OrderListQuery{Page: 4, Size: 25}, url.Values{"page": {"4"}, "size": {"25"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newBackendMock(t)
			got := captureRequest(backend, okJSON(`{"data":[]}`), nil)
			svc := NewOrderService(backend, logger.Nop())

			resp, err := svc.ListAdmin(context.Background(), tt.in)

			require.NoError(t, err)
			assert.Equal(t, "/orders/admin/all", got.Path)
			assert.Equal(t, tt.want, got.Query)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}
