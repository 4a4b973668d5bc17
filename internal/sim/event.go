package sim

import (
	"fmt"
	"math/rand"
	"time"
)

// EventType enumerates the operations a simulated day is made of.
type EventType int

const (
	EventExpireSweep EventType = iota
	EventDiscountCheck
	EventDelivery
	EventTransferToHall
	EventPurchase
	EventCheckStock
	EventAutoRestock
)

func (t EventType) String() string {
	switch t {
	case EventExpireSweep:
		return "expire_sweep"
	case EventDiscountCheck:
		return "discount_check"
	case EventDelivery:
		return "delivery"
	case EventTransferToHall:
		return "transfer_to_hall"
	case EventPurchase:
		return "purchase"
	case EventCheckStock:
		return "check_stock"
	case EventAutoRestock:
		return "auto_restock"
	default:
		return "unknown"
	}
}

// Event is an immutable scheduled operation. It carries no resources, only
// the message.
type Event struct {
	Type        EventType
	Date        time.Time
	Description string
}

// Daily event generation policy.
const (
	deliveryProb      = 0.7
	extraDiscountProb = 0.25
	extraDeliveryProb = 0.2
)

// EventQueue produces and drains the strictly ordered operation sequence of
// one simulated day. Dispatch order is load-bearing: expiry and discount
// sweeps run before any purchase, deliveries before the hall transfer.
type EventQueue struct {
	events []Event
	date   time.Time
	rng    *rand.Rand
}

func NewEventQueue(startDate time.Time, rng *rand.Rand) *EventQueue {
	return &EventQueue{date: startDate, rng: rng}
}

// GenerateDailyEvents appends the fixed daily sequence: sweep, discounts,
// an optional delivery, the hall transfer, one purchase per customer, then
// the stock check and restock.
func (q *EventQueue) GenerateDailyEvents(customerCount int) {
	q.Push(Event{EventExpireSweep, q.date, "dispose of expired stock"})
	q.Push(Event{EventDiscountCheck, q.date, "mark down stock close to expiry"})
	if q.rng.Float64() < deliveryProb {
		q.Push(Event{EventDelivery, q.date, "scheduled warehouse delivery"})
	}
	q.Push(Event{EventTransferToHall, q.date, "move stock to the sales hall"})
	for i := 0; i < customerCount; i++ {
		q.Push(Event{EventPurchase, q.date, fmt.Sprintf("customer visit #%d", i+1)})
	}
	q.Push(Event{EventCheckStock, q.date, "check warehouse stock levels"})
	q.Push(Event{EventAutoRestock, q.date, "refill sales hall shelves"})
}

// AddRandomEvents may append a promotional discount round and an extra
// delivery after the fixed sequence.
func (q *EventQueue) AddRandomEvents() {
	if q.rng.Float64() < extraDiscountProb {
		q.Push(Event{EventDiscountCheck, q.date, "promotional discount round"})
	}
	if q.rng.Float64() < extraDeliveryProb {
		q.Push(Event{EventDelivery, q.date, "unscheduled delivery"})
	}
}

// AdvanceDay moves to the next date and builds that day's events with a
// fresh random customer count. Any undrained leftovers are discarded; a
// fully run day leaves none.
func (q *EventQueue) AdvanceDay() {
	q.date = q.date.AddDate(0, 0, 1)
	q.events = q.events[:0]
	q.GenerateDailyEvents(2 + q.rng.Intn(5))
	q.AddRandomEvents()
}

// Push appends an event. Once dispatched an event cannot be re-enqueued.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Next pops the oldest event, strict FIFO.
func (q *EventQueue) Next() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	e := q.events[0]
	q.events = q.events[1:]
	return e, true
}

func (q *EventQueue) HasEvents() bool { return len(q.events) > 0 }

func (q *EventQueue) Len() int { return len(q.events) }

// CurrentDate is the date the queue is generating events for.
func (q *EventQueue) CurrentDate() time.Time { return q.date }
