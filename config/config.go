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

	"github.com/juju/errors"
	"github.com/spf13/viper"
)

// Config is the configuration for the recommender.
type Config struct {
	Data      DataConfig      `mapstructure:"data"`
	Recommend RecommendConfig `mapstructure:"recommend"`
}

// DataConfig is the configuration for input files.
type DataConfig struct {
	// path of the ratings CSV file
	RatingsPath string `mapstructure:"ratings_path"`
	// path of the movies CSV file
	MoviesPath string `mapstructure:"movies_path"`
}

// RecommendConfig is the configuration for the recommendation pipeline.
type RecommendConfig struct {
	// number of neighbors used to predict ratings
	NumNeighbors int `mapstructure:"num_neighbors"`
	// number of recommended movies
	TopN int `mapstructure:"top_n"`
}

// GetDefaultConfig returns a default config.
func GetDefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			RatingsPath: "ratings.csv",
			MoviesPath:  "movies.csv",
		},
		Recommend: RecommendConfig{
			NumNeighbors: 5,
			TopN:         10,
		},
	}
}

func setDefault() {
	defaultConfig := GetDefaultConfig()
	viper.SetDefault("data.ratings_path", defaultConfig.Data.RatingsPath)
	viper.SetDefault("data.movies_path", defaultConfig.Data.MoviesPath)
	viper.SetDefault("recommend.num_neighbors", defaultConfig.Recommend.NumNeighbors)
	viper.SetDefault("recommend.top_n", defaultConfig.Recommend.TopN)
}

// LoadConfig loads the configuration from a TOML file. Fields absent from the
// file fall back to defaults, and every field can be overridden by a RECO_*
// environment variable.
func LoadConfig(path string) (*Config, error) {
	setDefault()
	viper.SetEnvPrefix("reco")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, errors.Annotatef(err, "failed to load config %s", path)
		}
	}
	var conf Config
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, errors.Trace(err)
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return &conf, nil
}

// Validate rejects nonsensical settings.
func (config *Config) Validate() error {
	if config.Recommend.NumNeighbors <= 0 {
		return errors.BadRequestf("recommend.num_neighbors must be positive, got %d", config.Recommend.NumNeighbors)
	}
	if config.Recommend.TopN < 0 {
		return errors.BadRequestf("recommend.top_n must be non-negative, got %d", config.Recommend.TopN)
	}
	return nil
}
