package controller

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

type mockSubmitter struct {
	mock.Mock
}

func (m *mockSubmitter) SubmitBooking(ctx context.Context, serviceID, centerID string, form domain.BookingFormData) (*domain.Booking, error) {
	args := m.Called(ctx, serviceID, centerID, form)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Append(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

type submitterFunc func(ctx context.Context, serviceID, centerID string, form domain.BookingFormData) (*domain.Booking, error)

func (f submitterFunc) SubmitBooking(ctx context.Context, serviceID, centerID string, form domain.BookingFormData) (*domain.Booking, error) {
	return f(ctx, serviceID, centerID, form)
}

type fetcherFunc func(ctx context.Context, slug string) (*domain.Center, error)

func (f fetcherFunc) GetCenter(ctx context.Context, slug string) (*domain.Center, error) {
	return f(ctx, slug)
}
