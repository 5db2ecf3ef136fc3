package llm

import (
	"context"
	"time"
)

// Observer receives one callback per completed Generate call.
type Observer func(client, model string, duration time.Duration, err error)

type InstrumentedProvider struct {
	inner    Provider
	client   string
	observer Observer
}

// WithObserver reports every call made through p, tagged with client.
func WithObserver(p Provider, client string, observer Observer) Provider {
	if observer == nil {
		return p
	}
	return &InstrumentedProvider{inner: p, client: client, observer: observer}
}

func (i *InstrumentedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := i.inner.Generate(ctx, req)
	i.observer(i.client, i.inner.ModelID(), time.Since(start), err)
	return resp, err
}

func (i *InstrumentedProvider) ModelID() string {
	return i.inner.ModelID()
}
