package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/MKhiriev/money-tracker/internal/adapter"
	"github.com/MKhiriev/money-tracker/internal/logger"
	"github.com/MKhiriev/money-tracker/models"
	"github.com/atotto/clipboard"
)

// command runs one subcommand with the arguments that follow its name.
type command struct {
	usage string
	run   func(a *App, ctx context.Context, args []string) error
}

func commandTable() map[string]command {
	return map[string]command{
		"register": {usage: "register -name NAME -email EMAIL [-password PASSWORD] [-copy]", run: (*App).register},
		"login":    {usage: "login -email EMAIL [-password PASSWORD] [-copy]", run: (*App).login},
		"logout":   {usage: "logout", run: (*App).logout},
		"whoami":   {usage: "whoami", run: (*App).whoami},
		"list":     {usage: "list [-json]", run: (*App).list},
		"get":      {usage: "get ID [-json]", run: (*App).get},
		"add":      {usage: "add -description TEXT -amount N -category NAME [-date DATE]", run: (*App).add},
		"update":   {usage: "update ID [-description TEXT] [-amount N] [-category NAME] [-date DATE]", run: (*App).update},
		"delete":   {usage: "delete ID", run: (*App).delete},
		"version":  {usage: "version", run: (*App).version},
	}
}

// App is the command-line client. Each Run call executes one command.
type App struct {
	adapter adapter.ServerAdapter
	tokens  TokenStore

	out    io.Writer
	errOut io.Writer

	readPassword    PasswordReader
	copyToClipboard func(text string) error

	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// Option customises an [App].
type Option func(*App)

// WithOutput redirects command output and diagnostics.
func WithOutput(out, errOut io.Writer) Option {
	return func(a *App) {
		a.out = out
		a.errOut = errOut
	}
}

// WithPasswordReader replaces the interactive password prompt.
func WithPasswordReader(reader PasswordReader) Option {
	return func(a *App) {
		a.readPassword = reader
	}
}

// WithClipboard replaces the system clipboard writer used by -copy.
func WithClipboard(copyFn func(text string) error) Option {
	return func(a *App) {
		a.copyToClipboard = copyFn
	}
}

// WithBuildInfo sets the build metadata printed by the version command.
func WithBuildInfo(info models.AppBuildInfo) Option {
	return func(a *App) {
		a.buildInfo = info
	}
}

// NewApp constructs the client. By default output goes to stdout/stderr,
// passwords are read from the terminal and -copy uses the system clipboard.
func NewApp(serverAdapter adapter.ServerAdapter, tokens TokenStore, logger *logger.Logger, opts ...Option) (*App, error) {
	if serverAdapter == nil {
		return nil, errNilAdapter
	}
	if tokens == nil {
		return nil, errNilTokenStore
	}

	a := &App{
		adapter:         serverAdapter,
		tokens:          tokens,
		out:             os.Stdout,
		errOut:          os.Stderr,
		copyToClipboard: clipboard.WriteAll,
		buildInfo:       models.NewAppBuildInfo("", "", ""),
		logger:          logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.readPassword == nil {
		a.readPassword = NewTerminalPasswordReader(os.Stdin, a.errOut)
	}

	return a, nil
}

// Run implements [Client]. args[0] names the command; the stored token, if
// any, is attached to the adapter before the command runs.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	name := strings.ToLower(args[0])
	if name == "help" || name == "-h" || name == "--help" {
		a.printUsage()
		return nil
	}

	cmd, ok := commandTable()[name]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	token, err := a.tokens.Load()
	if err != nil {
		return err
	}
	if token != "" {
		a.adapter.SetToken(token)
	}

	a.logger.Debug().Str("func", "App.Run").Str("command", name).Bool("has_token", token != "").Msg("running command")

	err = cmd.run(a, ctx, args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		a.logger.Err(err).Str("func", "App.Run").Str("command", name).Msg("command failed")
	}
	return err
}

func (a *App) printUsage() {
	commands := commandTable()
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.errOut, "usage: money-client COMMAND [flags]")
	fmt.Fprintln(a.errOut)
	fmt.Fprintln(a.errOut, "commands:")
	for _, name := range names {
		fmt.Fprintf(a.errOut, "  %s\n", commands[name].usage)
	}
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	fs.Usage = func() {
		fmt.Fprintf(a.errOut, "usage: money-client %s\n", commandTable()[name].usage)
		fs.PrintDefaults()
	}
	return fs
}
