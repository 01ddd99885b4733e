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

	"github.com/juju/errors"
	"github.com/samber/lo"
)

// MovieScore associates a movie with its predicted score.
type MovieScore struct {
	MovieId uint32
	Score   float32
}

// RankPredictions normalizes accumulated scores into predictions and returns
// the topN movie ids. Movies whose accumulated weight is absent or zero are
// excluded, never divided by. The order is fully deterministic: predicted
// score descending, popularity descending, movie id ascending.
func RankPredictions(scores, weights map[uint32]float32, popularity map[uint32]int,
	topN int) ([]uint32, error) {
	if topN < 0 {
		return nil, errors.BadRequestf("top n must be non-negative, got %d", topN)
	}
	predictions := make([]MovieScore, 0, len(scores))
	for movieId, sum := range scores {
		if weight := weights[movieId]; weight != 0 {
			predictions = append(predictions, MovieScore{MovieId: movieId, Score: sum / weight})
		}
	}
	sort.Slice(predictions, func(i, j int) bool {
		if predictions[i].Score != predictions[j].Score {
			return predictions[i].Score > predictions[j].Score
		}
		if popularity[predictions[i].MovieId] != popularity[predictions[j].MovieId] {
			return popularity[predictions[i].MovieId] > popularity[predictions[j].MovieId]
		}
		return predictions[i].MovieId < predictions[j].MovieId
	})
	if topN < len(predictions) {
		predictions = predictions[:topN]
	}
	return lo.Map(predictions, func(prediction MovieScore, _ int) uint32 {
		return prediction.MovieId
	}), nil
}
