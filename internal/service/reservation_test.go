package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vaughan-dsouza/bistro/internal/apperr"
	"github.com/vaughan-dsouza/bistro/internal/logger"
	"github.com/vaughan-dsouza/bistro/internal/models"
)

func validReservation() CreateReservationInput {
	return CreateReservationInput{
		CustomerName: "Ada",
		Email:        "ada@example.com",
		Date:         "2025-03-01",
		Time:         "19:00",
		PartySize:    json.Number("4"),
	}
}

func TestReservationCreateAttachesOwner(t *testing.T) {
	store := new(MockReservationStore)
	svc := NewReservationService(store, logger.Discard())
	owner := int64(5)

	want := models.Reservation{
		CustomerName: "Ada", Email: "ada@example.com", Date: "2025-03-01", Time: "19:00", PartySize: 4, UserID: &owner,
	}
	created := want
	created.ID = 12
	store.On("Create", mock.Anything, want).Return(&created, nil).Once()

	res, err := svc.Create(context.Background(), validReservation(), &owner)
	require.NoError(t, err)
	assert.Equal(t, int64(12), res.ID)
	assert.Equal(t, "2025-03-01", res.Date)
	assert.Equal(t, "19:00", res.Time)
	assert.Equal(t, 4, res.PartySize)
	store.AssertExpectations(t)
}

func TestReservationCreateAnonymous(t *testing.T) {
	store := new(MockReservationStore)
	svc := NewReservationService(store, logger.Discard())

	store.On("Create", mock.Anything, mock.MatchedBy(func(r models.Reservation) bool {
		return r.UserID == nil
	})).Return(&models.Reservation{ID: 1}, nil).Once()

	_, err := svc.Create(context.Background(), validReservation(), nil)
	require.NoError(t, err)
}

func TestReservationPartySizeFromFormString(t *testing.T) {
	var in CreateReservationInput
	require.NoError(t, json.Unmarshal([]byte(`{"customer_name":"Ada","email":"a@b.c","date":"2025-03-01","time":"19:00","party_size":"6"}`), &in))

	res, err := in.validate()
	require.NoError(t, err)
	assert.Equal(t, 6, res.PartySize)
}

func TestReservationValidation(t *testing.T) {
	svc := NewReservationService(new(MockReservationStore), logger.Discard())

	cases := map[string]func(in *CreateReservationInput){
		"customer_name": func(in *CreateReservationInput) { in.CustomerName = "" },
		"email":         func(in *CreateReservationInput) { in.Email = "" },
		"date":          func(in *CreateReservationInput) { in.Date = "03/01/2025" },
		"time":          func(in *CreateReservationInput) { in.Time = "7pm" },
		"party_size":    func(in *CreateReservationInput) { in.PartySize = "0" },
	}
	for field, mutate := range cases {
		in := validReservation()
		mutate(&in)
		_, err := svc.Create(context.Background(), in, nil)
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve, field)
		assert.Equal(t, field, ve.Field)
	}
}

func TestReservationPastDatesAccepted(t *testing.T) {
	store := new(MockReservationStore)
	store.On("Create", mock.Anything, mock.Anything).Return(&models.Reservation{ID: 2}, nil)

	in := validReservation()
	in.Date = "1999-12-31"
	_, err := NewReservationService(store, logger.Discard()).Create(context.Background(), in, nil)
	assert.NoError(t, err)
}

func TestListForUserEmpty(t *testing.T) {
	store := new(MockReservationStore)
	store.On("ListByUser", mock.Anything, int64(5)).Return(nil, nil)

	list, err := NewReservationService(store, logger.Discard()).ListForUser(context.Background(), 5)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestReservationRejectsLooseDateTimeForms(t *testing.T) {
	cases := map[string]func(in *CreateReservationInput){
		"time": func(in *CreateReservationInput) { in.Time = "7:00" },
		"date": func(in *CreateReservationInput) { in.Date = "2025-3-01" },
	}
	for field, mutate := range cases {
		in := validReservation()
		mutate(&in)
		_, err := in.validate()
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve, field)
		assert.Equal(t, field, ve.Field)
	}

	in := validReservation()
	in.Time = "07:00"
	res, err := in.validate()
	require.NoError(t, err)
	assert.Equal(t, "07:00", res.Time)
}

func TestReservationPartySizeUpperBound(t *testing.T) {
	in := validReservation()
	in.PartySize = json.Number("2147483648")
	_, err := in.validate()
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "party_size", ve.Field)

	in.PartySize = json.Number("2147483647")
	_, err = in.validate()
	assert.NoError(t, err)
}
