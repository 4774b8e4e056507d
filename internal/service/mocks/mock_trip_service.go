package mocks

import (
	"context"

	"spotterapi/internal/model"
	"spotterapi/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockTripService struct {
	mock.Mock
}

func (m *MockTripService) PlanTrip(ctx context.Context, req model.TripRequest) (*model.TripPlan, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TripPlan), args.Error(1)
}

func (m *MockTripService) ValidateLocations(ctx context.Context, inputs []service.LocationInput) (*model.LocationValidation, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LocationValidation), args.Error(1)
}

func (m *MockTripService) CheckHOS(ctx context.Context, req service.HOSCheckRequest) (*model.HOSCheck, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.HOSCheck), args.Error(1)
}
