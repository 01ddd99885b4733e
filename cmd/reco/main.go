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

package main

import (
	"fmt"
	"path/filepath"

	"github.com/gorse-io/reco/base/log"
	"github.com/gorse-io/reco/config"
	"github.com/gorse-io/reco/dataset"
	"github.com/gorse-io/reco/logics"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var recoCommand = &cobra.Command{
	Use:   "reco",
	Short: "Movie recommender based on user collaborative filtering.",
	Run: func(cmd *cobra.Command, args []string) {
		// setup logger
		debug, _ := cmd.PersistentFlags().GetBool("debug")
		log.SetLogger(cmd.PersistentFlags(), debug)

		// load config
		conf := config.GetDefaultConfig()
		if cmd.PersistentFlags().Changed("config") {
			configPath, _ := cmd.PersistentFlags().GetString("config")
			log.Logger().Info("load config", zap.String("config", configPath))
			var err error
			if conf, err = config.LoadConfig(configPath); err != nil {
				log.Logger().Fatal("failed to load config", zap.Error(err))
			}
		}
		if cmd.PersistentFlags().Changed("num-neighbors") {
			conf.Recommend.NumNeighbors, _ = cmd.PersistentFlags().GetInt("num-neighbors")
		}
		if cmd.PersistentFlags().Changed("top-n") {
			conf.Recommend.TopN, _ = cmd.PersistentFlags().GetInt("top-n")
		}
		if err := conf.Validate(); err != nil {
			log.Logger().Fatal("invalid config", zap.Error(err))
		}

		// download dataset
		if download, _ := cmd.PersistentFlags().GetString("download"); download != "" {
			path, err := dataset.Download(download)
			if err != nil {
				log.Logger().Fatal("failed to download dataset", zap.Error(err))
			}
			conf.Data.RatingsPath = filepath.Join(path, "ratings.csv")
			conf.Data.MoviesPath = filepath.Join(path, "movies.csv")
		}

		// load data
		ratings, err := dataset.LoadRatings(conf.Data.RatingsPath)
		if err != nil {
			log.Logger().Fatal("failed to load ratings", zap.Error(err))
		}
		movies, err := dataset.LoadMovies(conf.Data.MoviesPath)
		if err != nil {
			log.Logger().Fatal("failed to load movies", zap.Error(err))
		}

		// recommend movies
		userId, _ := cmd.PersistentFlags().GetUint32("user")
		recommender, err := logics.NewRecommender(ratings, conf.Recommend)
		if err != nil {
			log.Logger().Fatal("failed to build recommender", zap.Error(err))
		}
		recommended, err := recommender.Recommend(userId, conf.Recommend.TopN)
		if err != nil {
			log.Logger().Fatal("failed to recommend movies", zap.Error(err))
		}
		fmt.Printf("Top %d recommendations for user %d:\n", conf.Recommend.TopN, userId)
		for _, movieId := range recommended {
			fmt.Printf("- %d: %s\n", movieId, title(movies, movieId))
		}

		// show the user's top rated movies
		topRated, err := logics.TopRatedByUser(userId, ratings, conf.Recommend.TopN)
		if err != nil {
			log.Logger().Fatal("failed to rank rated movies", zap.Error(err))
		}
		fmt.Printf("\nUser %d's top rated movies:\n", userId)
		for _, movie := range topRated {
			fmt.Printf("- %d: %s (%.1f)\n", movie.MovieId, title(movies, movie.MovieId), movie.Score)
		}
	},
}

func title(movies *dataset.MovieDB, movieId uint32) string {
	if title, ok := movies.Title(movieId); ok {
		return title
	}
	return "<unknown>"
}

func init() {
	log.AddFlags(recoCommand.PersistentFlags())
	recoCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	recoCommand.PersistentFlags().StringP("config", "c", "", "configuration file path")
	recoCommand.PersistentFlags().Uint32P("user", "u", 1, "target user id")
	recoCommand.PersistentFlags().IntP("num-neighbors", "k", 5, "number of neighbors used to predict ratings")
	recoCommand.PersistentFlags().IntP("top-n", "n", 10, "number of recommended movies")
	recoCommand.PersistentFlags().String("download", "", "download a MovieLens dataset (e.g. ml-latest-small) and use it as input")
}

func main() {
	if err := recoCommand.Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}
