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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optakt/sui-dapp/models/dapp"
	"github.com/optakt/sui-dapp/models/failure"
	"github.com/optakt/sui-dapp/testing/mocks"
)

func TestFeed(t *testing.T) {
	t.Run("keeps newest first", func(t *testing.T) {
		t.Parallel()

		f := NewFeed(mocks.NoopLogger, 10)
		f.Report(dapp.Report{ID: "1", Kind: failure.KindSuccess})
		f.Report(dapp.Report{ID: "2", Kind: failure.KindNetwork})

		reports := f.Recent()

		if assert.Len(t, reports, 2) {
			assert.Equal(t, "2", reports[0].ID)
			assert.Equal(t, "1", reports[1].ID)
		}
		latest, ok := f.Latest()
		assert.True(t, ok)
		assert.Equal(t, "2", latest.ID)
	})

	t.Run("drops oldest beyond size", func(t *testing.T) {
		t.Parallel()

		f := NewFeed(mocks.NoopLogger, 3)
		for i := 0; i < 5; i++ {
			f.Report(dapp.Report{ID: fmt.Sprint(i)})
		}

		reports := f.Recent()

		if assert.Len(t, reports, 3) {
			assert.Equal(t, "4", reports[0].ID)
			assert.Equal(t, "2", reports[2].ID)
		}
	})

	t.Run("handles empty feed", func(t *testing.T) {
		t.Parallel()

		f := NewFeed(mocks.NoopLogger, 0)

		_, ok := f.Latest()

		assert.False(t, ok)
		assert.Empty(t, f.Recent())
		assert.Equal(t, 1, f.size)
	})
}
