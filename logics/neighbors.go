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
	"github.com/gorse-io/reco/dataset"
	"github.com/juju/errors"
	"github.com/samber/lo"
)

// AggregateNeighbors accumulates similarity weighted rating sums and weight
// sums from the k most similar users, restricted to movies the target user
// has not rated (target vector entry is exactly 0). Fewer than k neighbors is
// not an error. Zero similarity neighbors still contribute zero valued terms;
// the ranker later drops movies whose accumulated weight is zero.
func AggregateNeighbors(neighbors []UserScore, ratings []dataset.Rating, target []float32,
	index *MovieIndex, k int) (map[uint32]float32, map[uint32]float32, error) {
	if k < 0 {
		return nil, nil, errors.BadRequestf("neighbor count must be non-negative, got %d", k)
	}
	if k > len(neighbors) {
		k = len(neighbors)
	}
	byUser := lo.GroupBy(ratings, func(rating dataset.Rating) uint32 { return rating.UserId })
	scores := make(map[uint32]float32)
	weights := make(map[uint32]float32)
	for _, neighbor := range neighbors[:k] {
		for _, rating := range byUser[neighbor.UserId] {
			pos, ok := index.Pos(rating.MovieId)
			if !ok || target[pos] != 0 {
				continue
			}
			scores[rating.MovieId] += neighbor.Score * rating.Score
			weights[rating.MovieId] += neighbor.Score
		}
	}
	return scores, weights, nil
}
