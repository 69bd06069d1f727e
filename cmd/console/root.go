package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/escolar-hub/escolar-console/config"
	"github.com/escolar-hub/escolar-console/internal/infrastructure/external/escolar"
	"github.com/escolar-hub/escolar-console/internal/notify"
	"github.com/escolar-hub/escolar-console/internal/store"
)

// app bundles the wired core a command operates on.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	bus    *notify.Bus
	client *escolar.Client

	programs *store.Programs
	subjects *store.Subjects
	teachers *store.Teachers
	students *store.Students
	groups   *store.Groups
}

// newApp loads configuration and wires the core bottom-up: logger, bus,
// client, stores.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger()

	clientCfg := escolar.DefaultClientConfig(cfg.API.BaseURL)
	clientCfg.Timeout = cfg.API.Timeout
	clientCfg.Debug = cfg.API.Debug
	clientCfg.Logger = logger
	clientCfg.Metrics = escolar.NewMetrics(prometheus.NewRegistry())
	client := escolar.NewClient(clientCfg)

	bus := notify.NewBus(logger)
	storeCfg := store.Config{Client: client, Bus: bus, Logger: logger}

	return &app{
		cfg:      cfg,
		logger:   logger,
		bus:      bus,
		client:   client,
		programs: store.NewPrograms(storeCfg),
		subjects: store.NewSubjects(storeCfg),
		teachers: store.NewTeachers(storeCfg),
		students: store.NewStudents(storeCfg),
		groups:   store.NewGroups(storeCfg),
	}, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "escolar-console",
		Short:         "Administrative console for the school-management service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStatusCmd(),
		newProgramsCmd(),
		newSubjectsCmd(),
		newTeachersCmd(),
		newStudentsCmd(),
		newGroupsCmd(),
	)
	return root
}
