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
	"testing"

	"github.com/gorse-io/reco/dataset"
	"github.com/stretchr/testify/assert"
)

func TestAggregateNeighbors(t *testing.T) {
	// target user 1 rated movies 10 and 11, two neighbors rate movie 12
	ratings := []dataset.Rating{
		{UserId: 1, MovieId: 10, Score: 5},
		{UserId: 1, MovieId: 11, Score: 3},
		{UserId: 2, MovieId: 12, Score: 4},
		{UserId: 3, MovieId: 12, Score: 2},
	}
	index := NewMovieIndex(ratings)
	vectors := BuildUserVectors(ratings, index)
	neighbors := []UserScore{{UserId: 2, Score: 1}, {UserId: 3, Score: 0.5}}
	scores, weights, err := AggregateNeighbors(neighbors, ratings, vectors[1], index, 5)
	assert.NoError(t, err)
	assert.InDelta(t, 1*4.0+0.5*2.0, scores[12], epsilon)
	assert.InDelta(t, 1.5, weights[12], epsilon)
	// rated movies never accumulate
	assert.NotContains(t, scores, uint32(10))
	assert.NotContains(t, scores, uint32(11))
}

func TestAggregateNeighborsCapped(t *testing.T) {
	ratings := []dataset.Rating{
		{UserId: 1, MovieId: 10, Score: 5},
		{UserId: 2, MovieId: 12, Score: 4},
		{UserId: 3, MovieId: 12, Score: 2},
	}
	index := NewMovieIndex(ratings)
	vectors := BuildUserVectors(ratings, index)
	neighbors := []UserScore{{UserId: 2, Score: 1}, {UserId: 3, Score: 0.5}}
	// only the first neighbor is selected
	scores, weights, err := AggregateNeighbors(neighbors, ratings, vectors[1], index, 1)
	assert.NoError(t, err)
	assert.InDelta(t, 4, scores[12], epsilon)
	assert.InDelta(t, 1, weights[12], epsilon)
	// fewer neighbors than k is not an error
	_, _, err = AggregateNeighbors(neighbors, ratings, vectors[1], index, 100)
	assert.NoError(t, err)
}

func TestAggregateNeighborsZeroSimilarity(t *testing.T) {
	ratings := []dataset.Rating{
		{UserId: 1, MovieId: 10, Score: 5},
		{UserId: 2, MovieId: 12, Score: 4},
	}
	index := NewMovieIndex(ratings)
	vectors := BuildUserVectors(ratings, index)
	neighbors := []UserScore{{UserId: 2, Score: 0}}
	scores, weights, err := AggregateNeighbors(neighbors, ratings, vectors[1], index, 5)
	assert.NoError(t, err)
	// zero similarity neighbors contribute zero valued terms
	assert.Equal(t, float32(0), scores[12])
	assert.Equal(t, float32(0), weights[12])
}

func TestAggregateNeighborsNegativeK(t *testing.T) {
	_, _, err := AggregateNeighbors(nil, nil, nil, NewMovieIndex(nil), -1)
	assert.Error(t, err)
}
