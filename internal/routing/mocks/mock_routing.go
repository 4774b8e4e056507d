package mocks

import (
	"context"

	"spotterapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (model.Location, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(model.Location), args.Error(1)
}

type MockRouter struct {
	mock.Mock
}

func (m *MockRouter) Directions(ctx context.Context, waypoints []model.Location) (model.RouteData, error) {
	args := m.Called(ctx, waypoints)
	return args.Get(0).(model.RouteData), args.Error(1)
}
