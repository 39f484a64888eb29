// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/storefront-gateway/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by the order validator.
const (
	FieldCustomer = "customer"
	FieldFullName = "customer.fullName"
	FieldPhone    = "customer.phone"
	FieldAddress  = "customer.address"
)

var fieldErrors = map[string]error{
	"Customer": ErrMissingCustomer,
	"FullName": ErrMissingFullName,
	"Phone":    ErrMissingPhone,
	"Address":  ErrMissingAddress,
}

type OrderValidator struct {
	validate *validator.Validate
}

func NewOrderValidator() Validator {
	return &OrderValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *OrderValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.GuestOrder:
		return v.validateGuestOrder(ctx, value, fields...)
	case *models.GuestOrder:
		if value == nil {
			return ErrMissingCustomer
		}
		return v.validateGuestOrder(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *OrderValidator) validateGuestOrder(ctx context.Context, order models.GuestOrder, fields ...string) error {
	if len(fields) == 0 {
		if err := v.structErr(v.validate.StructCtx(ctx, order)); err != nil {
			return err
		}
		fields = []string{FieldFullName, FieldPhone, FieldAddress}
	}

	for _, f := range fields {
		if f != FieldCustomer && order.Customer == nil {
			return ErrMissingCustomer
		}

		var err error
		switch f {
		case FieldCustomer:
			err = asField(v.validate.VarCtx(ctx, order.Customer, "required"), ErrMissingCustomer)
		case FieldFullName:
			err = asField(v.validate.VarCtx(ctx, strings.TrimSpace(order.Customer.FullName), "required"), ErrMissingFullName)
		case FieldPhone:
			err = asField(v.validate.VarCtx(ctx, strings.TrimSpace(order.Customer.Phone), "required"), ErrMissingPhone)
		case FieldAddress:
			err = asField(v.validate.VarCtx(ctx, strings.TrimSpace(order.Customer.Address), "required"), ErrMissingAddress)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// structErr reports the first failed field as one of the package sentinels.
func (v *OrderValidator) structErr(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	if sentinel, ok := fieldErrors[verrs[0].StructField()]; ok {
		return sentinel
	}
	return err
}

func asField(err, sentinel error) error {
	if err != nil {
		return sentinel
	}
	return nil
}
