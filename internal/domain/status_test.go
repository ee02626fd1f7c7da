package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatusesFromNew(t *testing.T) {
	for _, ot := range []OrderType{OrderTypeDelivery, OrderTypeTakeaway, OrderTypeDineIn} {
		assert.ElementsMatch(t, []Status{StatusPreparing, StatusCancelled}, NextStatuses(StatusNew, ot), ot)
	}
}

func TestNextStatusesFromReady(t *testing.T) {
	assert.Equal(t, []Status{StatusOutForDelivery}, NextStatuses(StatusReady, OrderTypeDelivery))
	assert.Equal(t, []Status{StatusCompleted}, NextStatuses(StatusReady, OrderTypeTakeaway))
	assert.Equal(t, []Status{StatusCompleted}, NextStatuses(StatusReady, OrderTypeDineIn))
}

func TestTerminalStatusesHaveNoExits(t *testing.T) {
	for _, s := range AllStatuses {
		if !s.Terminal() {
			continue
		}
		for _, ot := range []OrderType{OrderTypeDelivery, OrderTypeTakeaway, OrderTypeDineIn} {
			assert.Empty(t, NextStatuses(s, ot), "%s/%s", s, ot)
		}
	}
}

func TestCheckTransition(t *testing.T) {
	cases := []struct {
		name  string
		ot    OrderType
		from  Status
		to    Status
		actor Role
		want  error
	}{
		{"admin starts preparing", OrderTypeDelivery, StatusNew, StatusPreparing, RoleAdmin, nil},
		{"admin marks ready", OrderTypeTakeaway, StatusPreparing, StatusReady, RoleAdmin, nil},
		{"admin cancels new", OrderTypeDineIn, StatusNew, StatusCancelled, RoleAdmin, nil},
		{"admin cancels preparing", OrderTypeDelivery, StatusPreparing, StatusCancelled, RoleAdmin, nil},
		{"admin completes takeaway", OrderTypeTakeaway, StatusReady, StatusCompleted, RoleAdmin, nil},
		{"driver picks up delivery", OrderTypeDelivery, StatusReady, StatusOutForDelivery, RoleDriver, nil},
		{"driver delivers", OrderTypeDelivery, StatusOutForDelivery, StatusDelivered, RoleDriver, nil},
		{"skip straight to delivered", OrderTypeDelivery, StatusNew, StatusDelivered, RoleDriver, ErrInvalidTransition},
		{"cancel after ready", OrderTypeDelivery, StatusReady, StatusCancelled, RoleAdmin, ErrInvalidTransition},
		{"driver state on takeaway", OrderTypeTakeaway, StatusReady, StatusOutForDelivery, RoleDriver, ErrInvalidTransition},
		{"complete a delivery order", OrderTypeDelivery, StatusReady, StatusCompleted, RoleAdmin, ErrInvalidTransition},
		{"same state", OrderTypeDelivery, StatusNew, StatusNew, RoleAdmin, ErrInvalidTransition},
		{"leave terminal", OrderTypeDelivery, StatusDelivered, StatusNew, RoleAdmin, ErrInvalidTransition},
		{"driver prepares", OrderTypeDelivery, StatusNew, StatusPreparing, RoleDriver, ErrAuthorization},
		{"admin drives", OrderTypeDelivery, StatusReady, StatusOutForDelivery, RoleAdmin, ErrAuthorization},
		{"customer cancels", OrderTypeDelivery, StatusNew, StatusCancelled, RoleCustomer, ErrAuthorization},
		{"unknown target", OrderTypeDelivery, StatusNew, Status("Eaten"), RoleAdmin, ErrInvalidTransition},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckTransition(tc.ot, tc.from, tc.to, tc.actor)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestDeliveredOnlyReachableThroughOutForDelivery(t *testing.T) {
	for _, tr := range Transitions() {
		if tr.To == StatusDelivered {
			assert.Equal(t, StatusOutForDelivery, tr.From)
			assert.Equal(t, []OrderType{OrderTypeDelivery}, tr.Types)
		}
	}
}

func TestTransitionsReturnsCopy(t *testing.T) {
	table := Transitions()
	for i := range table {
		for j := range table[i].Types {
			table[i].Types[j] = "Tampered"
		}
	}
	assert.Equal(t, []Status{StatusOutForDelivery}, NextStatuses(StatusReady, OrderTypeDelivery))
	assert.Equal(t, []Status{StatusCompleted}, NextStatuses(StatusReady, OrderTypeTakeaway))
	for _, tr := range Transitions() {
		assert.NotContains(t, tr.Types, OrderType("Tampered"))
	}
}
