package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/storefront-gateway/internal/mock"
	"github.com/MKhiriev/storefront-gateway/models"
	"go.uber.org/mock/gomock"
)

func newBackendMock(t *testing.T) *mock.MockBackendAdapter {
	t.Helper()
	return mock.NewMockBackendAdapter(gomock.NewController(t))
}

// captureRequest makes backend answer every Do with resp and records the
// request it was called with.
func captureRequest(backend *mock.MockBackendAdapter, resp models.BackendResponse, err error) *models.BackendRequest {
	var got models.BackendRequest
	backend.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.BackendRequest) (models.BackendResponse, error) {
			got = req
			return resp, err
		})
	return &got
}

func okJSON(body string) models.BackendResponse {
	return models.BackendResponse{StatusCode: 200, ContentType: "application/json", Body: []byte(body)}
}
