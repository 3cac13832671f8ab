package cli

import (
	"context"
	"fmt"

	"github.com/safecheck/safecheck/internal/client/api"
)

// getSimpleText, getPhoneSuffix and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPhoneSuffix = GetPhoneSuffix
var getMultiline = GetMultiline

func (a *App) loginScreen(ctx context.Context) error {
	cmd, err := getSimpleText(a.reader, "[로그인] login | exit", a.out)
	if err != nil {
		return errQuit
	}

	switch cmd {
	case "login":
		return a.login(ctx)
	case "exit", "quit":
		return errQuit
	case "help", "":
		return nil
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		return nil
	}
}

func (a *App) login(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "이름을 입력하세요", a.out)
	if err != nil {
		return errQuit
	}

	phoneLast4, err := getPhoneSuffix(a.out)
	if err != nil {
		return err
	}

	if err := a.ctrl.Login(ctx, name, phoneLast4); err != nil {
		fmt.Fprintln(a.out, api.UserMessage(err, "로그인에 실패했습니다. 이름과 번호를 확인해주세요"))
		return nil
	}

	sess := a.ctrl.Session()
	fmt.Fprintf(a.out, "%s님, 환영합니다\n", sess.Name)
	return nil
}
