package client

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/money-tracker/internal/adapter"
	"github.com/MKhiriev/money-tracker/internal/app"
	"github.com/MKhiriev/money-tracker/internal/utils"
	"github.com/MKhiriev/money-tracker/models"
)

func (a *App) register(ctx context.Context, args []string) error {
	fs := a.newFlagSet("register")
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when empty)")
	copyToken := fs.Bool("copy", false, "copy the issued token to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := requireFlags(map[string]string{"name": *name, "email": *email}); err != nil {
		return err
	}

	secret, err := a.passwordOrPrompt(*password)
	if err != nil {
		return err
	}

	token, err := a.adapter.Register(ctx, models.RegisterRequest{
		Name:     *name,
		Email:    *email,
		Password: secret,
	})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	if err = a.storeToken(token, *copyToken); err != nil {
		return err
	}

	fmt.Fprintf(a.out, app.MsgRegistered+"\n", strings.TrimSpace(*email))
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password (prompted when empty)")
	copyToken := fs.Bool("copy", false, "copy the issued token to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := requireFlags(map[string]string{"email": *email}); err != nil {
		return err
	}

	secret, err := a.passwordOrPrompt(*password)
	if err != nil {
		return err
	}

	token, err := a.adapter.Login(ctx, models.LoginRequest{Email: *email, Password: secret})
	if errors.Is(err, adapter.ErrUnauthorized) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err = a.storeToken(token, *copyToken); err != nil {
		return err
	}

	fmt.Fprintf(a.out, app.MsgLoggedIn+"\n", strings.TrimSpace(*email))
	return nil
}

func (a *App) logout(_ context.Context, args []string) error {
	fs := a.newFlagSet("logout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.tokens.Clear(); err != nil {
		return err
	}
	a.adapter.SetToken("")

	fmt.Fprintln(a.out, app.MsgLoggedOut)
	return nil
}

// whoami decodes the stored token locally. The signature is not checked;
// the server remains the only authority on validity.
func (a *App) whoami(_ context.Context, args []string) error {
	fs := a.newFlagSet("whoami")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token := a.adapter.Token()
	if token == "" {
		return adapter.ErrNotAuthenticated
	}

	claims, err := utils.ParseUnverifiedClaims(token)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "name:    %s\n", claims.Name)
	fmt.Fprintf(a.out, "email:   %s\n", claims.Email)
	fmt.Fprintf(a.out, "user id: %s\n", claims.Subject)
	if claims.ExpiresAt != nil {
		state := "valid"
		if claims.ExpiresAt.Before(time.Now()) {
			state = "expired"
		}
		fmt.Fprintf(a.out, "expires: %s (%s)\n", claims.ExpiresAt.Local().Format(time.RFC1123), state)
	}

	return nil
}

func (a *App) version(ctx context.Context, args []string) error {
	fs := a.newFlagSet("version")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Build version: %s\n", a.buildInfo.BuildVersion())
	fmt.Fprintf(a.out, "Build date: %s\n", a.buildInfo.BuildDate())
	fmt.Fprintf(a.out, "Build commit: %s\n", a.buildInfo.BuildCommit())

	serverVersion, err := a.adapter.ServerVersion(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "App.version").Msg("server version request failed")
		serverVersion = "unavailable"
	}
	fmt.Fprintf(a.out, "Server version: %s\n", serverVersion)

	return nil
}

func (a *App) passwordOrPrompt(password string) (string, error) {
	if password == "" {
		var err error
		if password, err = a.readPassword(app.MsgPasswordPrompt); err != nil {
			return "", err
		}
	}
	if password == "" {
		return "", ErrEmptyPassword
	}
	return password, nil
}

// storeToken persists the token and, when asked, copies it to the
// clipboard. Clipboard failures are reported but do not fail the command.
func (a *App) storeToken(token string, copyToken bool) error {
	if err := a.tokens.Save(token); err != nil {
		return err
	}

	if !copyToken {
		return nil
	}
	if err := a.copyToClipboard(token); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.storeToken").Msg("clipboard unavailable")
		fmt.Fprintf(a.errOut, "could not copy token: %v\n", err)
		return nil
	}
	fmt.Fprintln(a.out, app.MsgTokenCopied)
	return nil
}

func requireFlags(values map[string]string) error {
	var missing []string
	for name, value := range values {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, "-"+name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%w: %s", ErrMissingFlag, strings.Join(missing, ", "))
}
