package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/akyairhashvil/okrt/internal/activity"
	"github.com/akyairhashvil/okrt/internal/config"
	"github.com/akyairhashvil/okrt/internal/models"
	"github.com/akyairhashvil/okrt/internal/report"
	"github.com/akyairhashvil/okrt/internal/tui"
	"github.com/akyairhashvil/okrt/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	withApp := func(cmd *cobra.Command, fn func(a *app) error) error {
		a, err := openApp(cmd.Context(), v)
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(a)
	}

	root := &cobra.Command{
		Use:   config.AppName,
		Short: "OKR tracker",
		Long: `okrt tracks objectives and key results with daily task planning.
Without a sub-command it opens the terminal dashboard, or prints the
objective table when output is not a terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       tui.AppVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				if isTerminal() {
					return a.runTUI(cmd.Context())
				}
				report.WriteObjectives(cmd.OutOrStdout(), activeOnly(a.store.Objectives()), a.store.Now())
				return nil
			})
		},
	}

	pf := root.PersistentFlags()
	pf.String(config.KeyDataDir, "", "data directory (default $XDG_DATA_HOME/okrt)")
	pf.String(config.KeyBackend, config.BackendSQLite, "storage backend: sqlite, file or memory")
	pf.String(config.KeyTheme, config.DefaultTheme, "dashboard theme")
	pf.Int(config.KeyHeatmapDays, config.DefaultHeatmapDays, "days shown in the activity heatmap")
	pf.Bool(config.KeyNoSeed, false, "start empty instead of with sample objectives")
	pf.String(config.KeyLogFile, "", "log file used while the dashboard runs")
	for _, key := range []string{config.KeyDataDir, config.KeyBackend, config.KeyTheme, config.KeyHeatmapDays, config.KeyNoSeed, config.KeyLogFile} {
		_ = v.BindPFlag(key, pf.Lookup(key))
	}

	root.AddCommand(
		listCmd(withApp),
		showCmd(withApp),
		tasksCmd(withApp),
		updateCmd(withApp),
		toggleCmd(withApp),
		archiveCmd(withApp),
		deleteCmd(withApp),
		addCmd(withApp),
		editCmd(withApp),
		krCmd(withApp),
		taskCmd(withApp),
		heatmapCmd(withApp),
		reportCmd(withApp),
		exportCmd(withApp),
	)
	return root
}

type appRunner func(cmd *cobra.Command, fn func(a *app) error) error

func activeOnly(objs []models.Objective) []models.Objective {
	var out []models.Objective
	for _, o := range objs {
		if !o.IsArchived {
			out = append(out, o)
		}
	}
	return out
}

func errNotFound(kind, id string) error {
	return fmt.Errorf("%s %s not found", kind, id)
}

func listCmd(withApp appRunner) *cobra.Command {
	var archived bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List objectives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				objs := activeOnly(a.store.Objectives())
				if archived {
					objs = a.store.Archived()
				}
				report.WriteObjectives(cmd.OutOrStdout(), objs, a.store.Now())
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&archived, "archived", false, "list archived objectives")
	return cmd
}

func showCmd(withApp appRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "show <objective-id>",
		Short: "Show an objective with its key results and tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				o, ok := a.store.Objective(args[0])
				if !ok {
					return errNotFound("objective", args[0])
				}
				report.WriteObjective(cmd.OutOrStdout(), o, a.store.Now())
				return nil
			})
		},
	}
}

func tasksCmd(withApp appRunner) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Show the task agenda for a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				day, err := util.ParseDay(date, a.store.Now())
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				report.WriteAgenda(cmd.OutOrStdout(), day, a.store.TasksForDate(day))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day as "+util.DayLayout+" (default today)")
	return cmd
}

func updateCmd(withApp appRunner) *cobra.Command {
	var message string
	cmd := &cobra.Command{
		Use:   "update <objective-id> <key-result-id> <value>",
		Short: "Set a key result's current value",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[2], err)
			}
			return withApp(cmd, func(a *app) error {
				if !a.store.UpdateKeyResultValue(cmd.Context(), args[0], args[1], value, message) {
					return errNotFound("key result", args[1])
				}
				o, _ := a.store.Objective(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n", o.Title, report.Percent(o.Progress()), o.HealthAt(a.store.Now()).Label())
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "log message")
	return cmd
}

func toggleCmd(withApp appRunner) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "toggle <objective-id> <key-result-id> <task-id>",
		Short: "Toggle a task occurrence",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				day, err := util.ParseDay(date, a.store.Now())
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				if !a.store.ToggleTask(cmd.Context(), args[0], args[1], args[2], day) {
					return errNotFound("task", args[2])
				}
				state := "open"
				for _, it := range a.store.TasksForDate(day) {
					if it.Task.ID == args[2] && it.Completed {
						state = "done"
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "task %s on %s: %s\n", args[2], day.Format(util.DayLayout), state)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day as "+util.DayLayout+" (default today)")
	return cmd
}

func archiveCmd(withApp appRunner) *cobra.Command {
	var undo bool
	cmd := &cobra.Command{
		Use:   "archive <objective-id>",
		Short: "Archive or restore an objective",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				if !a.store.SetArchived(cmd.Context(), args[0], !undo) {
					return errNotFound("objective", args[0])
				}
				o, _ := a.store.Objective(args[0])
				if undo && o.IsArchived {
					fmt.Fprintf(cmd.OutOrStdout(), "%s is at full progress and stays archived\n", o.Title)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s archived: %t\n", o.Title, o.IsArchived)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&undo, "undo", false, "restore instead of archive")
	return cmd
}

func deleteCmd(withApp appRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <objective-id>",
		Short: "Delete an objective and everything it owns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				if !a.store.Delete(cmd.Context(), args[0]) {
					return errNotFound("objective", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}
}

func addCmd(withApp appRunner) *cobra.Command {
	var due, description string
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create an objective",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return errors.New("title must not be empty")
			}
			return withApp(cmd, func(a *app) error {
				now := a.store.Now()
				dueDate, err := util.ParseDay(due, now)
				if err != nil {
					return fmt.Errorf("invalid --due: %w", err)
				}
				o := models.NewObjective(title, dueDate, now)
				o.Description = description
				a.store.Add(cmd.Context(), o)
				fmt.Fprintln(cmd.OutOrStdout(), o.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&due, "due", "", "due date as "+util.DayLayout)
	cmd.Flags().StringVar(&description, "description", "", "objective description")
	_ = cmd.MarkFlagRequired("due")
	return cmd
}

func heatmapCmd(withApp appRunner) *cobra.Command {
	var objectiveID string
	var days int
	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Print the activity heatmap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				objs := activity.Filter(a.store.Objectives(), objectiveID)
				if objectiveID != "" && len(objs) == 0 {
					return errNotFound("objective", objectiveID)
				}
				window := days
				if window <= 0 {
					window = a.cfg.HeatmapDays
				}
				report.WriteHeatmap(cmd.OutOrStdout(), activity.WeekWindow(objs, a.store.Now(), window))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&objectiveID, "objective", "", "limit to one objective")
	cmd.Flags().IntVar(&days, "days", 0, "trailing days (default from config)")
	return cmd
}

func reportCmd(withApp appRunner) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a PDF progress report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				now := a.store.Now()
				path := out
				if path == "" {
					path = util.ReportPath(config.AppName, "pdf", now)
				}
				abs, err := report.WritePDF(path, a.store.Objectives(), now)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "PDF report generated: %s\n", abs)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default in the documents folder)")
	return cmd
}

func exportCmd(withApp appRunner) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump the objective document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				return report.Export(cmd.OutOrStdout(), a.store.Objectives(), format, a.store.Now())
			})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", report.FormatJSON, "json or yaml")
	return cmd
}
