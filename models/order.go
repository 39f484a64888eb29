// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Customer is the contact block of a guest order. All three fields are
// required before the order is forwarded.
type Customer struct {
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required"`
}

// GuestOrder is the part of a checkout payload the gateway inspects. The
// payload itself is forwarded untouched; unknown fields are not modeled.
type GuestOrder struct {
	Customer *Customer `json:"customer" validate:"required"`
}
