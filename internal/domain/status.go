package domain

// Status is the mutable lifecycle state of an order
type Status string

const (
	StatusNew            Status = "New"
	StatusPreparing      Status = "Preparing"
	StatusReady          Status = "Ready"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
	StatusCompleted      Status = "Completed"
	StatusCancelled      Status = "Cancelled"
)

// AllStatuses lists every status in workflow order
var AllStatuses = []Status{
	StatusNew, StatusPreparing, StatusReady, StatusOutForDelivery,
	StatusDelivered, StatusCompleted, StatusCancelled,
}

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves s
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCompleted || s == StatusCancelled
}

// Transition is one edge of the order workflow and the role allowed to take it
type Transition struct {
	From  Status      `json:"from"`
	To    Status      `json:"to"`
	Actor Role        `json:"actor"`
	Types []OrderType `json:"order_types"`
}

var (
	allTypes      = []OrderType{OrderTypeDelivery, OrderTypeTakeaway, OrderTypeDineIn}
	deliveryOnly  = []OrderType{OrderTypeDelivery}
	counterOrders = []OrderType{OrderTypeTakeaway, OrderTypeDineIn}
)

// transitions is the authoritative workflow
var transitions = []Transition{
	{From: StatusNew, To: StatusPreparing, Actor: RoleAdmin, Types: allTypes},
	{From: StatusNew, To: StatusCancelled, Actor: RoleAdmin, Types: allTypes},
	{From: StatusPreparing, To: StatusReady, Actor: RoleAdmin, Types: allTypes},
	{From: StatusPreparing, To: StatusCancelled, Actor: RoleAdmin, Types: allTypes},
	{From: StatusReady, To: StatusOutForDelivery, Actor: RoleDriver, Types: deliveryOnly},
	{From: StatusOutForDelivery, To: StatusDelivered, Actor: RoleDriver, Types: deliveryOnly},
	{From: StatusReady, To: StatusCompleted, Actor: RoleAdmin, Types: counterOrders},
}

func (t Transition) appliesTo(orderType OrderType) bool {
	for _, ot := range t.Types {
		if ot == orderType {
			return true
		}
	}
	return false
}

// Transitions returns a copy of the workflow table
func Transitions() []Transition {
	out := make([]Transition, len(transitions))
	for i, t := range transitions {
		t.Types = append([]OrderType(nil), t.Types...)
		out[i] = t
	}
	return out
}

// NextStatuses lists the statuses reachable in one step for an order type
func NextStatuses(from Status, orderType OrderType) []Status {
	var next []Status
	for _, t := range transitions {
		if t.From == from && t.appliesTo(orderType) {
			next = append(next, t.To)
		}
	}
	return next
}

// CheckTransition decides whether actor may move an order of orderType from
// one status to another. An edge that does not exist for the order type is an
// invalid transition; an existing edge taken by the wrong role is an
// authorization failure.
func CheckTransition(orderType OrderType, from, to Status, actor Role) error {
	if !to.Valid() {
		return InvalidTransitionf("unknown status %q", to)
	}
	for _, t := range transitions {
		if t.From != from || t.To != to || !t.appliesTo(orderType) {
			continue
		}
		if t.Actor != actor {
			return Authorizationf("only %s may move an order from %s to %s", t.Actor, from, to)
		}
		return nil
	}
	return InvalidTransitionf("cannot move a %s order from %s to %s", orderType, from, to)
}
