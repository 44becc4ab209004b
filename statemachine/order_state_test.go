package statemachine_test

import (
	"testing"

	"canteen-api/models"
	"canteen-api/statemachine"

	"github.com/stretchr/testify/assert"
)

func TestForwardTransitions(t *testing.T) {
	cases := []struct {
		from, to models.OrderStatus
		actor    string
		ok       bool
	}{
		{models.StatusOrdered, models.StatusConfirmed, "staff", true},
		{models.StatusOrdered, models.StatusPrepared, "staff", true},
		{models.StatusConfirmed, models.StatusPrepared, "staff", true},
		{models.StatusPrepared, models.StatusDelivered, "staff", true},

		// no skipping straight to delivered
		{models.StatusOrdered, models.StatusDelivered, "staff", false},
		{models.StatusConfirmed, models.StatusDelivered, "staff", false},
		// no going backwards
		{models.StatusPrepared, models.StatusConfirmed, "staff", false},
		{models.StatusDelivered, models.StatusPrepared, "staff", false},
		// delivered is terminal
		{models.StatusDelivered, models.StatusConfirmed, "staff", false},
		// customers never drive fulfillment
		{models.StatusOrdered, models.StatusConfirmed, "customer", false},
		{models.StatusPrepared, models.StatusDelivered, "customer", false},
	}

	for _, tc := range cases {
		err := statemachine.CanTransition(tc.from, tc.to, tc.actor)
		if tc.ok {
			assert.NoError(t, err, "%s → %s by %s", tc.from, tc.to, tc.actor)
		} else {
			assert.Error(t, err, "%s → %s by %s", tc.from, tc.to, tc.actor)
		}
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	assert.ElementsMatch(t,
		[]models.OrderStatus{models.StatusConfirmed, models.StatusPrepared},
		statemachine.ValidTransitionsFrom(models.StatusOrdered))
	assert.ElementsMatch(t,
		[]models.OrderStatus{models.StatusPrepared},
		statemachine.ValidTransitionsFrom(models.StatusConfirmed))
	assert.Empty(t, statemachine.ValidTransitionsFrom(models.StatusDelivered))
}

func TestTransitionErrorNamesValidNextStates(t *testing.T) {
	err := statemachine.CanTransition(models.StatusConfirmed, models.StatusDelivered, "staff")
	assert.ErrorContains(t, err, "prepared")

	err = statemachine.CanTransition(models.StatusDelivered, models.StatusOrdered, "staff")
	assert.ErrorContains(t, err, "terminal state")
}
