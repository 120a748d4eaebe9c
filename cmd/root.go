package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
	"github.com/RenardMacorol/TheCICS-sub000/auth"
	"github.com/RenardMacorol/TheCICS-sub000/bleve"
	"github.com/RenardMacorol/TheCICS-sub000/bolt"
	"github.com/RenardMacorol/TheCICS-sub000/citation"
	"github.com/RenardMacorol/TheCICS-sub000/log"
	"github.com/RenardMacorol/TheCICS-sub000/services"
)

var (
	// flags
	verbose bool
	env     string

	// logger
	logger log.Logger

	// auth
	encoder *auth.EncodeDecoder

	// drivers
	boltDriver *bolt.Driver

	// stores
	userStore thecics.UserStore

	// indices
	thesisIndex *bleve.ThesisIndex

	// citation
	formatter *citation.Formatter

	// services
	thesisService   *services.ThesisService
	userService     *services.UserService
	commentService  *services.CommentService
	citationService *citation.Service
	authService     *auth.Service
	googleService   *auth.GoogleService

	// web
	webAddr string
)

type Configuration struct {
	Auth struct {
		Key    string `toml:"key"`
		Google string `toml:"google"`
	} `toml:"auth"`
	Bolt struct {
		Store string `toml:"store"`
	} `toml:"bolt"`
	Bleve struct {
		Store string `toml:"store"`
	} `toml:"bleve"`
	Citation struct {
		Institution string `toml:"institution"`
		BaseURL     string `toml:"base_url"`
	} `toml:"citation"`
	Web struct {
		Addr string `toml:"addr"`
	} `toml:"web"`
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose mode")
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "")
}

var RootCmd = cobra.Command{
	Use:   "thecics",
	Short: "",
	Long:  "",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load configuration
		cfgData, err := os.ReadFile(fmt.Sprintf("configuration/config.%s.toml", env))
		if err != nil {
			fmt.Println("error reading configuration:", err)
			return
		}

		var cfg Configuration
		err = toml.Unmarshal(cfgData, &cfg)
		if err != nil {
			fmt.Println("error unmarshalling configuration:", err)
			return
		}

		// Create logger
		logger = log.New(env)

		// Create encoder
		keyData, err := os.ReadFile(cfg.Auth.Key)
		if err != nil {
			logger.Fatal("could not open key file:", err)
		}
		var key thecics.SigningKey
		err = json.Unmarshal(keyData, &key)
		if err != nil {
			logger.Fatal("could not read key file:", err)
		}
		encoder = auth.NewEncodeDecoder([]byte(key.Key))

		// Create stores
		boltDriver = &bolt.Driver{}
		if err := boltDriver.Open(cfg.Bolt.Store); err != nil {
			logger.Fatal("could not open bolt store:", err)
		}
		thesisStore := &bolt.ThesisStore{Driver: boltDriver}
		citationStore := &bolt.CitationStore{Driver: boltDriver}
		commentStore := &bolt.CommentStore{Driver: boltDriver}
		userStore = &bolt.UserStore{Driver: boltDriver}

		// Create index
		thesisIndex = &bleve.ThesisIndex{}
		if err := thesisIndex.Open(cfg.Bleve.Store); err != nil {
			logger.Fatal("could not open bleve index:", err)
		}

		// Create citation engine
		formatter = citation.NewFormatter(cfg.Citation.Institution, cfg.Citation.BaseURL)
		citationService = citation.NewService(citationStore, logger)

		// Create services
		thesisService = services.NewThesisService(thesisStore, thesisIndex)
		userService = services.NewUserService(userStore)
		commentService = services.NewCommentService(commentStore)
		authService = auth.NewService(userStore, encoder)

		if cfg.Auth.Google != "" {
			googleService, err = auth.NewGoogleService(userStore, cfg.Auth.Google, authService)
			if err != nil {
				logger.Fatal("could not create google service:", err)
			}
		}

		webAddr = cfg.Web.Addr
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		boltDriver.Close()
		thesisIndex.Close()
	},
}
