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

// Package dataset loads MovieLens style rating tables and movie metadata.
package dataset

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/gorse-io/reco/common/util"
	"github.com/juju/errors"
)

// Rating is a single user rating of a movie. Ratings are immutable once
// loaded; the recommendation pipeline never modifies them.
type Rating struct {
	UserId    uint32
	MovieId   uint32
	Score     float32
	Timestamp int64
}

// LoadRatings reads ratings from a MovieLens style CSV file with the header
// userId,movieId,rating,timestamp. Malformed rows abort the load.
func LoadRatings(path string) ([]Rating, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Annotate(err, "failed to open ratings file")
	}
	defer f.Close()
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 4
	// skip header
	if _, err = reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Annotate(err, "failed to read header")
	}
	var ratings []Rating
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Trace(err)
		}
		var rating Rating
		if rating.UserId, err = util.ParseUInt[uint32](row[0]); err != nil {
			return nil, errors.Annotatef(err, "invalid user id %q", row[0])
		}
		if rating.MovieId, err = util.ParseUInt[uint32](row[1]); err != nil {
			return nil, errors.Annotatef(err, "invalid movie id %q", row[1])
		}
		if rating.Score, err = util.ParseFloat[float32](row[2]); err != nil {
			return nil, errors.Annotatef(err, "invalid rating %q", row[2])
		}
		if rating.Timestamp, err = util.ParseInt[int64](row[3]); err != nil {
			return nil, errors.Annotatef(err, "invalid timestamp %q", row[3])
		}
		ratings = append(ratings, rating)
	}
	return ratings, nil
}

// Popularity counts the number of ratings each movie has received. It must be
// derived from the same rating slice fed into the recommendation pipeline.
func Popularity(ratings []Rating) map[uint32]int {
	popularity := make(map[uint32]int)
	for _, rating := range ratings {
		popularity[rating.MovieId]++
	}
	return popularity
}
