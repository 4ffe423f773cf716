package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/authbridge/internal/common"
	"github.com/dmitrijs2005/authbridge/internal/cryptox"
)

var errRejected = errors.New("rejected")

func (a *App) promptLogin() (string, error) {
	login, err := GetSimpleText(a.reader, "-Enter login (email)", a.out)
	if err != nil {
		return "", err
	}
	if login == "" {
		return "", errors.New("login is required")
	}
	return login, nil
}

// check runs the full form login: password and one-time code together.
func (a *App) check(ctx context.Context) error {
	login, err := a.promptLogin()
	if err != nil {
		return err
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	code, err := GetSimpleText(a.reader, "-Enter one-time code or backup code", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	resp, err := a.client.VerifyLogin(ctx, login, string(password), code)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Login successful: user_id=%d login=%s\n", resp.GetUserId(), resp.Login)
	fmt.Fprintf(a.out, "Assertion: %s\n", resp.Assertion)
	return nil
}

func (a *App) checkOTP(ctx context.Context) error {
	login, err := a.promptLogin()
	if err != nil {
		return err
	}
	code, err := GetSimpleText(a.reader, "-Enter one-time code or backup code", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	ok, err := a.client.CheckOTP(ctx, login, code)
	if err != nil {
		return err
	}
	return a.verdict(ok)
}

func (a *App) checkPassword(ctx context.Context, appPassword bool) error {
	login, err := a.promptLogin()
	if err != nil {
		return err
	}

	prompt := "Enter password"
	if appPassword {
		prompt = "Enter application password"
	}
	password, err := GetPassword(prompt, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	var ok bool
	if appPassword {
		ok, err = a.client.CheckAppPassword(ctx, login, string(password))
	} else {
		ok, err = a.client.CheckPassword(ctx, login, string(password))
	}
	if err != nil {
		return err
	}
	return a.verdict(ok)
}

func (a *App) verdict(ok bool) error {
	if !ok {
		fmt.Fprintln(a.out, "invalid")
		return errRejected
	}
	fmt.Fprintln(a.out, "valid")
	return nil
}

func (a *App) profile(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: profile LOGIN")
	}

	ctx, cancel := a.callContext(ctx)
	defer cancel()

	p, err := a.client.GetProfile(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "id:       %d\n", p.GetId())
	fmt.Fprintf(a.out, "state:    %s\n", p.State)
	fmt.Fprintf(a.out, "name:     %s\n", p.Name)
	fmt.Fprintf(a.out, "email:    %s\n", p.Email)
	fmt.Fprintf(a.out, "username: %s\n", p.Username)
	return nil
}

func (a *App) ping(ctx context.Context) error {
	ctx, cancel := a.callContext(ctx)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "OK")
	return nil
}

// hash prints a composite password for the identity store. An optional
// argument overrides the iteration count.
func (a *App) hash(args []string) error {
	iterations := cryptox.DefaultIterations
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid iteration count %q", args[0])
		}
		iterations = n
	}

	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if len(password) == 0 {
		return errors.New("password is required")
	}

	salt, err := cryptox.NewSalt()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, cryptox.EncodePassword(string(password), salt, iterations))
	return nil
}
