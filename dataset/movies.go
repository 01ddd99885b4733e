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

package dataset

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/gorse-io/reco/common/util"
	"github.com/juju/errors"
)

// MovieDB maps movie identifiers to titles. Titles are display only and
// never affect scoring or ranking.
type MovieDB struct {
	titles map[uint32]string
}

// LoadMovies reads a MovieLens style movies CSV file with the header
// movieId,title[,genres]. Extra columns are ignored.
func LoadMovies(path string) (*MovieDB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Annotate(err, "failed to open movies file")
	}
	defer f.Close()
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	db := &MovieDB{titles: make(map[uint32]string)}
	// skip header
	if _, err = reader.Read(); err != nil {
		if err == io.EOF {
			return db, nil
		}
		return nil, errors.Annotate(err, "failed to read header")
	}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Trace(err)
		}
		if len(row) < 2 {
			return nil, errors.Errorf("expect at least 2 columns, got %d", len(row))
		}
		movieId, err := util.ParseUInt[uint32](row[0])
		if err != nil {
			return nil, errors.Annotatef(err, "invalid movie id %q", row[0])
		}
		db.titles[movieId] = row[1]
	}
	return db, nil
}

// Title returns the title of a movie if it is known.
func (db *MovieDB) Title(movieId uint32) (string, bool) {
	title, ok := db.titles[movieId]
	return title, ok
}

// Len returns the number of movies in the database.
func (db *MovieDB) Len() int {
	return len(db.titles)
}
