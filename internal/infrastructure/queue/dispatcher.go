package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/barcraft/backoffice/internal/core/ports"
	"github.com/barcraft/backoffice/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes captured leads to a fixed set of workers using consistent
// hashing on the email address, so repeat submissions from the same prospect
// are processed in order. Persistence happens off the request path; the form
// endpoints return as soon as the lead is enqueued.
type Dispatcher struct {
	workers []chan ports.LeadInput
	service ports.LeadService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.LeadService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.LeadInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.LeadInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a lead to the worker responsible for its email address.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(lead ports.LeadInput) {
	idx := d.shardIndex(lead.Email)
	d.workers[idx] <- lead
	metrics.LeadQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps an email deterministically to a worker index.
func (d *Dispatcher) shardIndex(email string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(email))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.LeadInput) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case lead, ok := <-ch:
			if !ok {
				return
			}
			metrics.LeadQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.service.Process(ctx, lead); err != nil {
				d.log.Error().Err(err).
					Str("kind", lead.Kind).
					Int("worker_id", id).
					Msg("lead processing failed")
			}
		}
	}
}
