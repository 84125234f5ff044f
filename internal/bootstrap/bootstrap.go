package bootstrap

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	calendarinadapter "studykit/internal/modules/calendar/adapter/in"
	calendaroutadapter "studykit/internal/modules/calendar/adapter/out"
	calendarservice "studykit/internal/modules/calendar/service"
	calendarusecase "studykit/internal/modules/calendar/usecase"
	intakeinadapter "studykit/internal/modules/intake/adapter/in"
	intakeoutadapter "studykit/internal/modules/intake/adapter/out"
	intakeservice "studykit/internal/modules/intake/service"
	intakeusecase "studykit/internal/modules/intake/usecase"
	scheduleinadapter "studykit/internal/modules/schedule/adapter/in"
	scheduleoutadapter "studykit/internal/modules/schedule/adapter/out"
	scheduleservice "studykit/internal/modules/schedule/service"
	scheduleusecase "studykit/internal/modules/schedule/usecase"
	"studykit/internal/platform/clock"
	"studykit/internal/platform/config"
	"studykit/internal/platform/id"
	uiapp "studykit/internal/ui/app"
)

type App struct {
	ScheduleCLI scheduleinadapter.CLIHandler
	IntakeCLI   intakeinadapter.CLIHandler
	CalendarCLI calendarinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "studykit",
		Level:  hclog.Warn,
		Output: os.Stderr,
	})

	intakeSvc, err := intakeservice.NewIntakeService(clk, intakeoutadapter.NewPDFSyllabusReader())
	if err != nil {
		return nil, fmt.Errorf("new intake service: %w", err)
	}
	intakeUC := intakeusecase.NewInteractor(intakeSvc)

	calendarUC := calendarusecase.NewInteractor(calendarservice.NewCalendarService(
		calendaroutadapter.NewFileManifestStore(cfg.HomePath),
		calendaroutadapter.NewGRPCHost(),
		calendaroutadapter.NewICSWriter(cfg.ICSPath),
	))

	planStore, err := scheduleoutadapter.NewSQLitePlanStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new plan store: %w", err)
	}
	scheduleUC := scheduleusecase.NewInteractor(
		scheduleservice.NewScheduleService(clk, ids, cfg.Scheduling),
		planStore,
		scheduleoutadapter.NewMarkdownPlanExporter(cfg.PlansPath),
		scheduleoutadapter.NewCalendarBridge(calendarUC),
		intakeUC,
		logger,
	)

	return &App{
		ScheduleCLI: scheduleinadapter.NewCLIHandler(scheduleUC),
		IntakeCLI:   intakeinadapter.NewCLIHandler(intakeUC),
		CalendarCLI: calendarinadapter.NewCLIHandler(calendarUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.ScheduleCLI, app.CalendarCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
