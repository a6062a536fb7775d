// Package console is the terminal client: the navigable surface of the HR
// app rendered as text screens over the REST API.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"workwise/internal/apperr"
	"workwise/internal/client/apiclient"
	"workwise/internal/client/authn"
	"workwise/internal/client/guard"
	"workwise/internal/client/notify"
	"workwise/internal/client/session"
	"workwise/internal/domain/auth"
	"workwise/internal/listing"
)

type Options struct {
	APIURL  string
	Timeout time.Duration
	In      io.Reader
	Out     io.Writer
	Log     zerolog.Logger
}

// App owns one console session. It is single threaded: a view runs until the
// user navigates away, then Run resolves the next path through the guard.
type App struct {
	Sessions session.Store
	Auth     *authn.Authenticator
	API      *apiclient.API
	Router   *guard.Router
	Prompt   *Prompter
	Out      io.Writer
	Notices  notify.Notifier
	Log      zerolog.Logger

	next string
	quit bool
}

func New(store session.Store, opts Options) *App {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	notices := notify.NewWriter(opts.Out)
	a := &App{
		Sessions: store,
		Prompt:   NewPrompter(opts.In, opts.Out),
		Out:      opts.Out,
		Notices:  notices,
		Log:      opts.Log,
	}

	login := apiclient.New(opts.APIURL, opts.Timeout, nil)
	login.Log = opts.Log
	a.Auth = authn.New(store, authn.HTTPVerifier{Client: login}, notices, a)
	a.Auth.Log = opts.Log

	client := apiclient.New(opts.APIURL, opts.Timeout, store)
	client.Notifier = notices
	client.OnUnauthorized = a.Auth.Invalidate
	client.Log = opts.Log
	a.API = apiclient.NewAPI(client)

	a.Router = guard.NewRouter(store)
	a.routes()
	return a
}

// Go implements authn.Navigator. The move happens once the current view
// returns.
func (a *App) Go(path string) {
	a.next = path
}

func (a *App) leaving() bool {
	return a.quit || a.next != ""
}

// Run drives navigation from start, or from the landing page of a restored
// session, until the user quits or input ends.
func (a *App) Run(ctx context.Context, start string) error {
	path := start
	if path == "" {
		path = a.home()
	}
	for !a.quit {
		if ctx.Err() != nil {
			return nil
		}
		a.next = ""
		rendered, err := a.Router.Navigate(ctx, path)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, guard.ErrRedirectLoop):
			a.Log.Error().Err(err).Str("path", path).Msg("navigation failed")
			a.next = auth.EntryPage
		case err != nil:
			a.Log.Error().Err(err).Str("path", path).Msg("view failed")
			a.notify(notify.Error, "Error", err.Error())
			if a.next == "" && rendered != a.home() {
				a.next = a.home()
			}
		}
		if a.next == "" {
			a.next = rendered
		}
		path = a.next
	}
	return nil
}

func (a *App) home() string {
	if s, ok := a.Sessions.Load(); ok {
		return auth.LandingPage(s.Role)
	}
	return auth.EntryPage
}

func (a *App) notify(level notify.Level, title, message string) {
	a.Notices.Notify(notify.Notice{Level: level, Title: title, Message: message})
}

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

type commands map[string]command

func splitCommand(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// loop reads commands until the view is left. draw runs before each prompt.
func (a *App) loop(ctx context.Context, prompt string, cmds commands, draw func()) error {
	for {
		if a.leaving() {
			return nil
		}
		if draw != nil {
			draw()
		}
		line, err := a.Prompt.Ask(prompt)
		if err != nil {
			a.quit = true
			return err
		}
		name, args := splitCommand(line)
		if name == "" {
			continue
		}
		if cmd, ok := cmds[name]; ok {
			a.report(cmd.run(ctx, args))
		} else if !a.global(ctx, name, args, cmds) {
			fmt.Fprintf(a.Out, "Unknown command %q. Type help for the list.\n", name)
		}
		if a.leaving() {
			return nil
		}
	}
}

// report shows the outcome of a failed command. API failures were already
// announced by the client.
func (a *App) report(err error) {
	var verr *apperr.ValidationError
	var apiErr *apiclient.Error
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		a.quit = true
	case errors.Is(err, listing.ErrCancelled):
		fmt.Fprintln(a.Out, "Cancelled")
	case errors.As(err, &verr):
		fmt.Fprintln(a.Out, "Please fix the following:")
		for _, f := range verr.Sorted() {
			fmt.Fprintf(a.Out, "  - %s: %s\n", f.Field, f.Reason)
		}
	case errors.As(err, &apiErr):
	default:
		a.notify(notify.Error, "Error", err.Error())
	}
}

type menuEntry struct {
	name string
	path string
}

var menus = map[auth.Role][]menuEntry{
	auth.RoleAdmin: {
		{"dashboard", "/admin/dashboard"},
		{"employees", "/admin/employees"},
		{"roles", "/admin/roles"},
		{"schedules", "/admin/schedules"},
		{"evaluations", "/admin/evaluations"},
		{"payroll", "/admin/payroll"},
		{"permissions", "/admin/permissions"},
		{"audit", "/admin/audit"},
	},
	auth.RoleEmployee: {
		{"profile", "/employee/profile"},
		{"schedule", "/employee/schedule"},
		{"evaluations", "/employee/evaluations"},
		{"payroll", "/employee/payroll"},
		{"permissions", "/employee/permissions"},
		{"security", "/employee/security"},
	},
}

func (a *App) menu() []menuEntry {
	s, ok := a.Sessions.Load()
	if !ok {
		return nil
	}
	return menus[s.Role]
}

func (a *App) global(ctx context.Context, name string, args []string, cmds commands) bool {
	switch name {
	case "go":
		if len(args) != 1 {
			fmt.Fprintln(a.Out, "usage: go <path>")
			return true
		}
		a.Go(args[0])
	case "menu":
		for _, m := range a.menu() {
			fmt.Fprintf(a.Out, "  %-12s %s\n", m.name, m.path)
		}
	case "whoami":
		if s, ok := a.Sessions.Load(); ok {
			fmt.Fprintf(a.Out, "%s (%s), role %s\n", s.DisplayName, s.Username, s.Role)
		} else {
			fmt.Fprintln(a.Out, "Not signed in")
		}
	case "logout":
		a.Auth.Logout(ctx)
	case "quit", "exit":
		a.quit = true
	case "help":
		a.help(cmds)
	default:
		for _, m := range a.menu() {
			if m.name == name {
				a.Go(m.path)
				return true
			}
		}
		return false
	}
	return true
}

func (a *App) help(cmds commands) {
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(a.Out, "  %s\n", cmds[name].usage)
	}
	fmt.Fprintln(a.Out, "  menu | <menu entry> | go <path> | whoami | logout | quit")
}
