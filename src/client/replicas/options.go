// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package replicas

import (
	"errors"
	"time"

	"github.com/m3db/m3replica/src/x/instrument"
)

const (
	// defaultPollInterval is the default time a readiness round waits.
	defaultPollInterval = 10 * time.Second

	// defaultAddressSeparator is the default separator of dumped addresses.
	defaultAddressSeparator = ";"
)

var (
	errNoInstrumentOptions = errors.New("no instrument options set")
	errNoPoller            = errors.New("no poller set")
	errInvalidPollInterval = errors.New("poll interval must be positive")
)

type options struct {
	instrumentOpts   instrument.Options
	pollInterval     time.Duration
	poller           Poller
	addressSeparator string
}

// NewOptions creates a new set of coordinator options with defaults.
func NewOptions() Options {
	return &options{
		instrumentOpts:   instrument.NewOptions(),
		pollInterval:     defaultPollInterval,
		poller:           NewPoller(),
		addressSeparator: defaultAddressSeparator,
	}
}

func (o *options) Validate() error {
	if o.instrumentOpts == nil {
		return errNoInstrumentOptions
	}
	if o.poller == nil {
		return errNoPoller
	}
	if o.pollInterval <= 0 {
		return errInvalidPollInterval
	}
	return nil
}

func (o *options) SetInstrumentOptions(value instrument.Options) Options {
	opts := *o
	opts.instrumentOpts = value
	return &opts
}

func (o *options) InstrumentOptions() instrument.Options {
	return o.instrumentOpts
}

func (o *options) SetPollInterval(value time.Duration) Options {
	opts := *o
	opts.pollInterval = value
	return &opts
}

func (o *options) PollInterval() time.Duration {
	return o.pollInterval
}

func (o *options) SetPoller(value Poller) Options {
	opts := *o
	opts.poller = value
	return &opts
}

func (o *options) Poller() Poller {
	return o.poller
}

func (o *options) SetAddressSeparator(value string) Options {
	opts := *o
	opts.addressSeparator = value
	return &opts
}

func (o *options) AddressSeparator() string {
	return o.addressSeparator
}
