package main

import (
	"encoding/json"
	"strconv"

	"github.com/spf13/cobra"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
)

func init() {
	UserCommand.AddCommand(&UserAllCommand)
	UserCommand.AddCommand(&UserPromoteCommand)
	UserCommand.AddCommand(&UserTokenCommand)
	RootCmd.AddCommand(&UserCommand)
}

var UserCommand = cobra.Command{
	Use:   "user",
	Short: "Print a user",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("user wants 1 argument: the id of the user")
		}

		user := findUser(args[0])
		logger.Print(formatUser(user))
	},
}

var UserAllCommand = cobra.Command{
	Use:   "all",
	Short: "List all the users",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		users, err := userStore.List()
		if err != nil {
			logger.Fatal("error listing users:", err)
		}

		for _, user := range users {
			logger.Print(formatUser(user))
		}
	},
}

// Promotion goes through the command line on purpose: there is no web route
// that can grant the admin role.
var UserPromoteCommand = cobra.Command{
	Use:   "promote",
	Short: "Grant the admin role to a user",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("user promote wants 1 argument: the id of the user")
		}

		user := findUser(args[0])
		user.Role = thecics.RoleAdmin
		if err := userStore.Upsert(user); err != nil {
			logger.Fatal("error promoting user:", err)
		}

		logger.Print(formatUser(user))
	},
}

var UserTokenCommand = cobra.Command{
	Use:   "token",
	Short: "Issue a token for a user",
	Long:  "",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("user token wants 1 argument: the id of the user")
		}

		user := findUser(args[0])
		token, err := encoder.Encode(user.ID)
		if err != nil {
			logger.Fatal(err)
		}

		logger.Print(token)
	},
}

func findUser(arg string) *thecics.User {
	id, err := strconv.Atoi(arg)
	if err != nil {
		logger.Fatal("error converting user id: ", err)
	}

	user, err := userStore.Get(id)
	if err != nil {
		logger.Fatal("error retrieving user:", err)
	} else if user == nil {
		logger.Fatalf("no user with id %d", id)
	}

	return user
}

func formatUser(user *thecics.User) string {
	data, err := json.Marshal(user)
	if err != nil {
		logger.Fatal(err)
	}
	return string(data)
}
