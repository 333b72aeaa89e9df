package search

import (
	"context"
	"sync"
	"unicode/utf8"

	"classy-weather/internal/domain/entity"
	"classy-weather/internal/domain/usecase/lookup"
	"classy-weather/pkg/log"
	"classy-weather/pkg/msg"

	"go.uber.org/zap"
)

const subscriberBuffer = 16

// Options tunes how a SearchController treats overlapping lookups
type Options struct {
	// CancelSuperseded cancels the in-flight lookup when a newer query arrives and
	// discards its result. When false every lookup runs to completion and the last
	// one to finish wins, even if it belongs to an older query.
	CancelSuperseded bool
}

// SearchController owns the query and the rendered state of one search widget.
// State only changes through SetQuery and the completion of the lookups it starts.
type SearchController struct {
	id      string
	lookup  lookup.UseCase
	options Options

	ctx    context.Context
	cancel context.CancelFunc

	mu             sync.Mutex
	state          entity.SearchState
	generation     uint64
	cancelInFlight context.CancelFunc
	subscribers    []chan entity.SearchState
	closed         bool

	inFlight sync.WaitGroup
}

// NewSearchController creates a controller with an empty state
func NewSearchController(id string, lookupUseCase lookup.UseCase, options Options) *SearchController {
	ctx, cancel := context.WithCancel(context.Background())
	return &SearchController{
		id:      id,
		lookup:  lookupUseCase,
		options: options,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// ID returns the session identifier of the controller
func (c *SearchController) ID() string {
	return c.id
}

// State returns a snapshot of the current state
func (c *SearchController) State() entity.SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetQuery records a query change. Short queries clear the forecast without any
// network call; longer ones start a lookup in the background and return at once.
func (c *SearchController) SetQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	log.Debug(msg.GetMessage("search.query", c.id, query))
	c.state.Query = query
	c.generation++

	if utf8.RuneCountInString(query) < c.lookup.MinQueryLength() {
		if c.options.CancelSuperseded {
			c.cancelPrevious()
			c.state.IsLoading = false
		}
		c.state.Forecast = nil
		log.Debug(msg.GetMessage("search.cleared", c.id, query))
		c.notify()
		return
	}

	ctx := c.ctx
	if c.options.CancelSuperseded {
		c.cancelPrevious()
		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(c.ctx)
		c.cancelInFlight = cancel
	}

	c.state.IsLoading = true
	c.notify()

	c.inFlight.Add(1)
	go c.run(ctx, c.generation, query)
}

// run performs one lookup and applies its outcome
func (c *SearchController) run(ctx context.Context, generation uint64, query string) {
	defer c.inFlight.Done()

	result, err := c.lookup.ResolveWeather(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if c.options.CancelSuperseded && generation != c.generation {
		log.Debug(msg.GetMessage("search.superseded", c.id, query))
		return
	}

	if c.options.CancelSuperseded {
		c.cancelPrevious()
	}

	c.state.IsLoading = false
	if err != nil {
		// Failures are never shown; whatever was on screen stays there.
		log.Error(msg.GetMessage("lookup.failed", query, err),
			zap.String("session", c.id),
			zap.Error(err))
	} else if !result.TooShort {
		forecast := result.Forecast
		c.state.DisplayLocation = result.DisplayLocation
		c.state.Forecast = &forecast
	}

	c.notify()
}

// Subscribe returns a channel receiving a snapshot after every state change.
// A slow reader loses intermediate snapshots but always gets the latest one.
// The channel is closed by Close.
func (c *SearchController) Subscribe() <-chan entity.SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan entity.SearchState, subscriberBuffer)
	if c.closed {
		close(ch)
		return ch
	}
	c.subscribers = append(c.subscribers, ch)
	return ch
}

// Wait blocks until every lookup started so far has completed
func (c *SearchController) Wait() {
	c.inFlight.Wait()
}

// Close cancels in-flight lookups and closes every subscription
func (c *SearchController) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.cancel()
	for _, ch := range c.subscribers {
		close(ch)
	}
	c.subscribers = nil
	c.mu.Unlock()

	c.inFlight.Wait()
}

// cancelPrevious must be called with c.mu held
func (c *SearchController) cancelPrevious() {
	if c.cancelInFlight != nil {
		c.cancelInFlight()
		c.cancelInFlight = nil
	}
}

// notify must be called with c.mu held
func (c *SearchController) notify() {
	snapshot := c.state
	for _, ch := range c.subscribers {
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}
