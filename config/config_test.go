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

package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestUnmarshal(t *testing.T) {
	viper.Reset()
	setDefault()
	viper.SetConfigType("toml")
	err := viper.ReadConfig(strings.NewReader(`
[data]
ratings_path = "/data/ratings.csv"
movies_path = "/data/movies.csv"

[recommend]
num_neighbors = 10
top_n = 20
`))
	assert.NoError(t, err)
	var config Config
	err = viper.Unmarshal(&config)
	assert.NoError(t, err)
	assert.Equal(t, "/data/ratings.csv", config.Data.RatingsPath)
	assert.Equal(t, "/data/movies.csv", config.Data.MoviesPath)
	assert.Equal(t, 10, config.Recommend.NumNeighbors)
	assert.Equal(t, 20, config.Recommend.TopN)
}

func TestSetDefault(t *testing.T) {
	viper.Reset()
	setDefault()
	viper.SetConfigType("toml")
	err := viper.ReadConfig(strings.NewReader(""))
	assert.NoError(t, err)
	var config Config
	err = viper.Unmarshal(&config)
	assert.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), &config)
}

func TestBindEnv(t *testing.T) {
	viper.Reset()
	t.Setenv("RECO_RECOMMEND_NUM_NEIGHBORS", "7")
	t.Setenv("RECO_DATA_RATINGS_PATH", "<ratings_path>")
	config, err := LoadConfig("")
	assert.NoError(t, err)
	assert.Equal(t, 7, config.Recommend.NumNeighbors)
	assert.Equal(t, "<ratings_path>", config.Data.RatingsPath)
	// check default values
	assert.Equal(t, 10, config.Recommend.TopN)
}

func TestValidate(t *testing.T) {
	config := GetDefaultConfig()
	assert.NoError(t, config.Validate())
	config.Recommend.NumNeighbors = 0
	assert.Error(t, config.Validate())
	config = GetDefaultConfig()
	config.Recommend.TopN = -1
	assert.Error(t, config.Validate())
}
