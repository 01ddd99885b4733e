// Copyright 2026 reco Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logics

import (
	"sort"

	"github.com/gorse-io/reco/dataset"
	"github.com/juju/errors"
	"github.com/samber/lo"
)

// TopRatedByUser returns the topN movies a user rated, ordered by rating
// descending and then timestamp descending, so more recent ratings win ties.
func TopRatedByUser(userId uint32, ratings []dataset.Rating, topN int) ([]MovieScore, error) {
	if topN < 0 {
		return nil, errors.BadRequestf("top n must be non-negative, got %d", topN)
	}
	rated := lo.Filter(ratings, func(rating dataset.Rating, _ int) bool {
		return rating.UserId == userId
	})
	sort.SliceStable(rated, func(i, j int) bool {
		if rated[i].Score != rated[j].Score {
			return rated[i].Score > rated[j].Score
		}
		return rated[i].Timestamp > rated[j].Timestamp
	})
	if topN < len(rated) {
		rated = rated[:topN]
	}
	return lo.Map(rated, func(rating dataset.Rating, _ int) MovieScore {
		return MovieScore{MovieId: rating.MovieId, Score: rating.Score}
	}), nil
}
