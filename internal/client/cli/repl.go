package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/littlerefugees/refugio-cli/internal/client/api"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL needs. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Animals(ctx context.Context, args []string) error
	AnimalDetail(ctx context.Context, args []string) error
	Adopt(ctx context.Context, args []string) error
	MyRequests(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	CreateShelter(ctx context.Context) error
	Admin(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: animals, animal <id>, register, login, exit"
	helpLoggedIn  = "Available commands: animals, animal <id>, adopt <id>, myrequests, profile, passwd, delete-account, shelter-create, whoami, admin <subcommand>, logout, exit"
)

// runREPL reads a command line per iteration, dispatches it, and reports
// errors. It exits on scanner EOF or on "exit"/"quit".
//
// Expired-session failures have already been reported and redirected by the
// time a handler returns, so they are swallowed here instead of being shown
// a second time.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("Little Refugees CLI (type 'help' for commands)")

	for {
		fmt.Printf("refugio %s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.WhoAmI(ctx)
		case "animals":
			err = a.Animals(ctx, args)
		case "animal":
			err = a.AnimalDetail(ctx, args)
		case "adopt":
			err = a.Adopt(ctx, args)
		case "myrequests":
			err = a.MyRequests(ctx, args)
		case "profile":
			err = a.Profile(ctx)
		case "passwd":
			err = a.ChangePassword(ctx)
		case "delete-account":
			err = a.DeleteAccount(ctx)
		case "shelter-create":
			err = a.CreateShelter(ctx)
		case "admin":
			err = a.Admin(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command: " + cmd)
		}

		reportError(err)
	}
}

// reportError shows a command failure to the user, once. API failures are
// rendered through their backend message.
func reportError(err error) {
	if err == nil || errors.Is(err, api.ErrSessionExpired) {
		return
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		printlnFn("Error: " + apiErr.Message)
		return
	}
	printlnFn("Error: " + err.Error())
}
