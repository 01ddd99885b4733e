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
	"github.com/gorse-io/reco/base/log"
	"github.com/gorse-io/reco/config"
	"github.com/gorse-io/reco/dataset"
	"github.com/juju/errors"
	"go.uber.org/zap"
)

// Recommender recommends unrated movies to users with user based
// collaborative filtering. The movie index, user vectors and popularity
// counts are built once per rating set snapshot; the snapshot must not be
// modified for the lifetime of the recommender.
type Recommender struct {
	ratings      []dataset.Rating
	index        *MovieIndex
	vectors      map[uint32][]float32
	popularity   map[uint32]int
	numNeighbors int
}

// NewRecommender builds a recommender over a rating set snapshot.
func NewRecommender(ratings []dataset.Rating, cfg config.RecommendConfig) (*Recommender, error) {
	if cfg.NumNeighbors <= 0 {
		return nil, errors.BadRequestf("number of neighbors must be positive, got %d", cfg.NumNeighbors)
	}
	index := NewMovieIndex(ratings)
	recommender := &Recommender{
		ratings:      ratings,
		index:        index,
		vectors:      BuildUserVectors(ratings, index),
		popularity:   dataset.Popularity(ratings),
		numNeighbors: cfg.NumNeighbors,
	}
	log.Logger().Debug("built recommender",
		zap.Int("num_users", len(recommender.vectors)),
		zap.Int("num_movies", index.Len()),
		zap.Int("num_ratings", len(ratings)))
	return recommender, nil
}

// Recommend returns the topN movies the target user has not rated, ordered
// by predicted preference. An unknown target user is an error.
func (r *Recommender) Recommend(userId uint32, topN int) ([]uint32, error) {
	if topN < 0 {
		return nil, errors.BadRequestf("top n must be non-negative, got %d", topN)
	}
	neighbors, err := RankSimilarUsers(userId, r.vectors)
	if err != nil {
		return nil, errors.Trace(err)
	}
	scores, weights, err := AggregateNeighbors(neighbors, r.ratings, r.vectors[userId], r.index, r.numNeighbors)
	if err != nil {
		return nil, errors.Trace(err)
	}
	recommended, err := RankPredictions(scores, weights, r.popularity, topN)
	if err != nil {
		return nil, errors.Trace(err)
	}
	log.Logger().Debug("recommended movies",
		zap.Uint32("user_id", userId),
		zap.Int("num_candidates", len(scores)),
		zap.Int("num_recommended", len(recommended)))
	return recommended, nil
}

// Recommend is the one shot form: it builds a recommender with the default
// neighbor count and recommends topN movies for the target user.
func Recommend(userId uint32, ratings []dataset.Rating, topN int) ([]uint32, error) {
	recommender, err := NewRecommender(ratings, config.GetDefaultConfig().Recommend)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return recommender.Recommend(userId, topN)
}
