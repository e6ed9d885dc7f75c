// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package widget

import (
	"sync"

	"github.com/gammazero/deque"
	"github.com/rs/zerolog"

	"github.com/optakt/sui-dapp/models/dapp"
)

// Feed keeps the most recent action reports, newest first. It is the single
// place where the outcome of every user action ends up.
type Feed struct {
	log     zerolog.Logger
	mutex   *sync.Mutex
	reports *deque.Deque
	size    int
}

// NewFeed creates a feed holding at most size reports.
func NewFeed(log zerolog.Logger, size int) *Feed {
	if size < 1 {
		size = 1
	}
	f := Feed{
		log:     log.With().Str("component", "feed").Logger(),
		mutex:   &sync.Mutex{},
		reports: deque.New(),
		size:    size,
	}
	return &f
}

// Report implements dapp.Reporter.
func (f *Feed) Report(report dapp.Report) {

	event := f.log.Info()
	if !report.Succeeded() {
		event = f.log.Warn()
	}
	event.
		Str("id", report.ID).
		Str("action", report.Action).
		Str("kind", string(report.Kind)).
		Str("digest", report.Digest).
		Msg(report.Message)

	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.reports.PushFront(report)
	for f.reports.Len() > f.size {
		f.reports.PopBack()
	}
}

// Recent returns the kept reports, newest first.
func (f *Feed) Recent() []dapp.Report {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	reports := make([]dapp.Report, 0, f.reports.Len())
	for i := 0; i < f.reports.Len(); i++ {
		reports = append(reports, f.reports.At(i).(dapp.Report))
	}
	return reports
}

// Latest returns the newest report, if there is one.
func (f *Feed) Latest() (dapp.Report, bool) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.reports.Len() == 0 {
		return dapp.Report{}, false
	}
	return f.reports.Front().(dapp.Report), true
}
