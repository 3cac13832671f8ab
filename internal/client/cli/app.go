package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/safecheck/safecheck/internal/client/api"
	"github.com/safecheck/safecheck/internal/client/config"
	"github.com/safecheck/safecheck/internal/client/controller"
	"github.com/safecheck/safecheck/internal/client/store"
	"github.com/safecheck/safecheck/internal/logging"

	_ "modernc.org/sqlite"
)

// errQuit unwinds the loop when the user types exit.
var errQuit = errors.New("quit")

type App struct {
	config *config.Config
	ctrl   *controller.Controller
	cache  *store.Store
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()
	logger := logging.NewSlogLogger(slog.Default())

	cache, err := store.Open(ctx, c.CacheDSN)
	if err != nil {
		// The cache is an offline convenience; the client works without it.
		logger.Warn(ctx, "reference cache unavailable", "error", err)
		cache = nil
	}

	apiClient := api.New(c.BaseURL, api.Options{
		Timeout:     c.RequestTimeout,
		DownloadDir: c.DownloadDir,
		Cache:       cache,
		Logger:      logger,
	})

	ctrl := controller.New(apiClient, logger)

	return &App{
		config: c,
		ctrl:   ctrl,
		cache:  cache,
		log:    logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	if a.cache != nil {
		defer a.cache.Close()
	}

	fmt.Fprintln(a.out, "안전점검 시스템 (명령어 도움말: help, 종료: exit)")
	a.ctrl.Init(ctx)

	for {
		if err := a.step(ctx); err != nil {
			if errors.Is(err, errQuit) {
				fmt.Fprintln(a.out, "Bye!")
				return
			}
			fmt.Fprintln(a.out, err.Error())
		}
	}
}

// step renders the active screen and handles exactly one command. Screen
// handlers return errQuit to stop the loop; every other error is printed
// and the same screen is shown again.
func (a *App) step(ctx context.Context) error {
	switch a.ctrl.Screen() {
	case controller.ScreenLogin:
		return a.loginScreen(ctx)
	case controller.ScreenHome:
		return a.homeScreen(ctx)
	case controller.ScreenSetup:
		return a.setupScreen(ctx)
	case controller.ScreenInspect:
		return a.inspectScreen(ctx)
	case controller.ScreenSignature:
		return a.signatureScreen(ctx)
	case controller.ScreenComplete:
		return a.completeScreen(ctx)
	case controller.ScreenMyRecords:
		return a.myRecordsScreen(ctx)
	case controller.ScreenMyRecordDetail:
		return a.myRecordDetailScreen(ctx)
	case controller.ScreenAdminHome, controller.ScreenSubadminHome:
		return a.adminHomeScreen(ctx)
	case controller.ScreenAdminRecords, controller.ScreenSubadminRecords:
		return a.recordsScreen(ctx)
	case controller.ScreenAdminRecordDetail, controller.ScreenSubadminRecordDetail:
		return a.recordDetailScreen(ctx)
	case controller.ScreenAdminSubadmins:
		return a.subadminsScreen(ctx)
	case controller.ScreenAdminChecklist:
		return a.checklistManagerScreen(ctx)
	case controller.ScreenAdminLocations:
		return a.locationManagerScreen(ctx)
	case controller.ScreenAdminWorkTypes:
		return a.workTypeManagerScreen(ctx)
	default:
		return fmt.Errorf("unknown screen: %s", a.ctrl.Screen())
	}
}
