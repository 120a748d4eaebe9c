package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/RenardMacorol/TheCICS-sub000/gin"
)

func init() {
	RootCmd.AddCommand(&ServeCommand)
}

var ServeCommand = cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		handler, err := gin.New(
			thesisService,
			userService,
			commentService,
			citationService,
			formatter,
			authService,
			googleService,
			&gin.Authenticator{Encoder: encoder, Users: userStore},
		)
		if err != nil {
			logger.Fatal("could not create server:", err)
		}

		addr := webAddr
		if addr == "" {
			addr = ":1705"
		}

		logger.Print("server started, listening on ", addr)
		logger.Fatal(http.ListenAndServe(addr, handler))
	},
}
