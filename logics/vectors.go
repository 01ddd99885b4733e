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

// Package logics implements user based collaborative filtering over dense
// rating vectors.
package logics

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gorse-io/reco/dataset"
)

// MovieIndex is a bijection between the distinct movie ids of a rating set
// and dense vector positions. Positions follow the ascending order of movie
// ids, independent of input order.
type MovieIndex struct {
	ids []uint32
	pos map[uint32]int
}

// NewMovieIndex builds the movie index from a rating set.
func NewMovieIndex(ratings []dataset.Rating) *MovieIndex {
	distinct := mapset.NewSet[uint32]()
	for _, rating := range ratings {
		distinct.Add(rating.MovieId)
	}
	ids := distinct.ToSlice()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	pos := make(map[uint32]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	return &MovieIndex{ids: ids, pos: pos}
}

// Len returns the number of distinct movies.
func (index *MovieIndex) Len() int {
	return len(index.ids)
}

// Pos returns the vector position of a movie id.
func (index *MovieIndex) Pos(movieId uint32) (int, bool) {
	pos, ok := index.pos[movieId]
	return pos, ok
}

// Id returns the movie id at a vector position.
func (index *MovieIndex) Id(pos int) uint32 {
	return index.ids[pos]
}

// BuildUserVectors converts a rating set into one dense vector per user over
// the shared movie index. Unrated positions stay 0. If a user rated the same
// movie twice, the later rating in slice order wins.
func BuildUserVectors(ratings []dataset.Rating, index *MovieIndex) map[uint32][]float32 {
	vectors := make(map[uint32][]float32)
	for _, rating := range ratings {
		vector, ok := vectors[rating.UserId]
		if !ok {
			vector = make([]float32, index.Len())
			vectors[rating.UserId] = vector
		}
		pos, _ := index.Pos(rating.MovieId)
		vector[pos] = rating.Score
	}
	return vectors
}
