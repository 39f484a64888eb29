package adapter

import (
	"github.com/MKhiriev/storefront-gateway/models"
)

func mapHTTPError(resp models.BackendResponse) error {
	if resp.IsSuccess() {
		return nil
	}

	return &BackendStatusError{
		Status:      resp.StatusCode,
		ContentType: resp.ContentType,
		Body:        resp.Body,
	}
}
