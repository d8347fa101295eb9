package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/cargobook/booking-system/internal/api/metrics"
	"github.com/cargobook/booking-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes payment-confirmation events to a fixed set of workers
// using consistent hashing on the shipment id, guaranteeing per-shipment
// event ordering: two events for the same shipment never race each other.
type Dispatcher struct {
	workers []chan ports.PaymentEventInput
	service ports.PaymentService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.PaymentService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.PaymentEventInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.PaymentEventInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an event to the worker responsible for its shipment.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(event ports.PaymentEventInput) {
	i := d.shardIndex(event.ShipmentID)
	d.workers[i] <- event
	metrics.PaymentQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a shipment id deterministically to a worker index.
func (d *Dispatcher) shardIndex(shipmentID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(shipmentID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.PaymentEventInput) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.PaymentQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.service.Confirm(ctx, event); err != nil {
				metrics.PaymentsConfirmedTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("shipment_id", event.ShipmentID).
					Str("event_id", event.EventID).
					Int("worker", id).
					Msg("payment confirmation failed")
				continue
			}
			metrics.PaymentsConfirmedTotal.WithLabelValues("confirmed").Inc()
		}
	}
}
