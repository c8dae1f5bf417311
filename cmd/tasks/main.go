// Command tasks is the client for the go-tasks API. It mirrors what the web
// front end does: auth calls against the server, with the issued token held
// in a local session store between invocations.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/goliatone/go-tasks/session"
)

func main() {
	app := &cli.App{
		Name:  "tasks",
		Usage: "client for the go-tasks API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Usage:   "base URL of the tasks API",
				Value:   "http://localhost:3000",
				EnvVars: []string{"TASKS_SERVER"},
			},
			&cli.StringFlag{
				Name:    "session-file",
				Usage:   "path of the stored session token",
				Value:   defaultSessionFile(),
				EnvVars: []string{"TASKS_SESSION_FILE"},
			},
		},
		Commands: []*cli.Command{
			signupCommand(),
			loginCommand(),
			logoutCommand(),
			whoamiCommand(),
			addCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "go-tasks", "token")
}

func openStore(ctx *cli.Context) (*session.Store, error) {
	return session.NewStore(ctx.String("session-file"))
}

func signupCommand() *cli.Command {
	return &cli.Command{
		Name:  "signup",
		Usage: "register a new account and start a session",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Required: true},
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
			&cli.StringFlag{Name: "type", Usage: "account tier (normal or premium)"},
		},
		Action: func(ctx *cli.Context) error {
			store, err := openStore(ctx)
			if err != nil {
				return err
			}

			api := newAPIClient(ctx.String("server"))
			res, err := api.Signup(
				ctx.String("name"),
				ctx.String("email"),
				ctx.String("password"),
				ctx.String("type"),
			)
			if err != nil {
				return err
			}

			if err := store.Replace(res.Token); err != nil {
				return err
			}

			fmt.Printf("signed up as %s <%s> (%s)\n", res.User.Name, res.User.Email, res.User.UserType)
			return nil
		},
	}
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "authenticate and start a session",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
		},
		Action: func(ctx *cli.Context) error {
			store, err := openStore(ctx)
			if err != nil {
				return err
			}

			api := newAPIClient(ctx.String("server"))
			res, err := api.Login(ctx.String("email"), ctx.String("password"))
			if err != nil {
				return err
			}

			if err := store.Replace(res.Token); err != nil {
				return err
			}

			fmt.Printf("logged in as %s <%s>\n", res.User.Name, res.User.Email)
			return nil
		},
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "drop the local session",
		Action: func(ctx *cli.Context) error {
			store, err := openStore(ctx)
			if err != nil {
				return err
			}

			if err := store.Clear(); err != nil {
				return err
			}

			fmt.Println("logged out")
			return nil
		},
	}
}

func whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "show the locally held session claims",
		Action: func(ctx *cli.Context) error {
			store, err := openStore(ctx)
			if err != nil {
				return err
			}

			claims := store.Current()
			if claims == nil {
				fmt.Println("not logged in")
				return nil
			}

			// Claims are decoded, not verified; the server has the last word.
			fmt.Printf("%s <%s> tier=%s expires=%s\n",
				claims.Name(),
				claims.Email(),
				claims.UserType(),
				claims.Expires().Format("2006-01-02 15:04:05"),
			)
			return nil
		},
	}
}

func addCommand() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "create a todo (server-side stub)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Required: true},
		},
		Action: func(ctx *cli.Context) error {
			store, err := openStore(ctx)
			if err != nil {
				return err
			}

			api := newAPIClient(ctx.String("server"))
			msg, err := api.AddTodo(store.Token(), ctx.String("title"))
			if err != nil {
				return err
			}

			fmt.Println(msg)
			return nil
		},
	}
}
