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

	"github.com/gorse-io/reco/common/floats"
	"github.com/juju/errors"
)

// UserScore associates another user with its similarity to the target user.
type UserScore struct {
	UserId uint32
	Score  float32
}

// Cosine computes the cosine similarity between a pair of rating vectors.
// If either vector has zero norm the similarity is 0 by convention, so the
// result is never NaN.
func Cosine(a, b []float32) float32 {
	normA := floats.Norm(a)
	normB := floats.Norm(b)
	if normA == 0 || normB == 0 {
		return 0
	}
	return floats.Dot(a, b) / (normA * normB)
}

// RankSimilarUsers scores every other user against the target user and
// returns them in descending similarity order. Users are visited in
// ascending id order before the stable sort, so ties between equal scores
// resolve toward the smaller user id.
func RankSimilarUsers(targetId uint32, vectors map[uint32][]float32) ([]UserScore, error) {
	target, ok := vectors[targetId]
	if !ok {
		return nil, errors.NotFoundf("user %d", targetId)
	}
	userIds := make([]uint32, 0, len(vectors))
	for userId := range vectors {
		if userId != targetId {
			userIds = append(userIds, userId)
		}
	}
	sort.Slice(userIds, func(i, j int) bool { return userIds[i] < userIds[j] })
	scores := make([]UserScore, 0, len(userIds))
	for _, userId := range userIds {
		scores = append(scores, UserScore{
			UserId: userId,
			Score:  Cosine(target, vectors[userId]),
		})
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	return scores, nil
}
