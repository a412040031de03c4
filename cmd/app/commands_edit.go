package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akyairhashvil/okrt/internal/models"
	"github.com/akyairhashvil/okrt/internal/util"
	"github.com/spf13/cobra"
)

var errNothingToChange = errors.New("nothing to change; pass at least one flag")

func joinTitle(args []string) (string, error) {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return "", errors.New("title must not be empty")
	}
	return title, nil
}

func editCmd(withApp appRunner) *cobra.Command {
	var title, description, icon, start, due string
	cmd := &cobra.Command{
		Use:   "edit <objective-id>",
		Short: "Edit an objective's title, description, icon or dates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("title") && !flags.Changed("description") && !flags.Changed("icon") &&
				!flags.Changed("start") && !flags.Changed("due") {
				return errNothingToChange
			}
			if flags.Changed("title") && strings.TrimSpace(title) == "" {
				return errors.New("title must not be empty")
			}
			return withApp(cmd, func(a *app) error {
				now := a.store.Now()
				startDate, err := util.ParseDay(start, now)
				if err != nil {
					return fmt.Errorf("invalid --start: %w", err)
				}
				dueDate, err := util.ParseDay(due, now)
				if err != nil {
					return fmt.Errorf("invalid --due: %w", err)
				}
				ok := a.store.Edit(cmd.Context(), args[0], func(o *models.Objective) {
					if flags.Changed("title") {
						o.Title = strings.TrimSpace(title)
					}
					if flags.Changed("description") {
						o.Description = description
					}
					if flags.Changed("icon") {
						o.Icon = icon
					}
					if flags.Changed("start") {
						o.StartDate = startDate
					}
					if flags.Changed("due") {
						o.DueDate = dueDate
					}
				})
				if !ok {
					return errNotFound("objective", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", args[0])
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&icon, "icon", "", "new icon name")
	cmd.Flags().StringVar(&start, "start", "", "start date as "+util.DayLayout)
	cmd.Flags().StringVar(&due, "due", "", "due date as "+util.DayLayout)
	return cmd
}

func krCmd(withApp appRunner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kr",
		Short: "Manage key results",
	}
	cmd.AddCommand(krAddCmd(withApp), krRemoveCmd(withApp))
	return cmd
}

func krAddCmd(withApp appRunner) *cobra.Command {
	var typ, unit string
	var target, weight float64
	cmd := &cobra.Command{
		Use:   "add <objective-id> <title>",
		Short: "Add a key result to an objective",
		Long: `Add a key result. An empty --unit or a non-positive --target takes the
type's default: number 10 times, percentage 100 %, currency 1000 $,
boolean 1 Done.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, err := joinTitle(args[1:])
			if err != nil {
				return err
			}
			t, err := models.ParseKeyResultType(typ)
			if err != nil {
				return err
			}
			return withApp(cmd, func(a *app) error {
				kr := models.NewKeyResult(title, t, target, unit)
				kr.Weight = weight
				if !a.store.AddKeyResult(cmd.Context(), args[0], kr) {
					return errNotFound("objective", args[0])
				}
				fmt.Fprintln(cmd.OutOrStdout(), kr.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&typ, "type", string(models.TypeNumber), "number, percentage, currency or boolean")
	cmd.Flags().Float64Var(&target, "target", 0, "target value (default from type)")
	cmd.Flags().StringVar(&unit, "unit", "", "unit label (default from type)")
	cmd.Flags().Float64Var(&weight, "weight", models.DefaultKeyResultWeight, "relative weight")
	return cmd
}

func krRemoveCmd(withApp appRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <objective-id> <key-result-id>",
		Short: "Remove a key result with its tasks and logs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				if !a.store.RemoveKeyResult(cmd.Context(), args[0], args[1]) {
					return errNotFound("key result", args[1])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[1])
				return nil
			})
		},
	}
}

func taskCmd(withApp appRunner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(taskAddCmd(withApp), taskEditCmd(withApp), taskRemoveCmd(withApp))
	return cmd
}

func taskAddCmd(withApp appRunner) *cobra.Command {
	var date, recur string
	var weight float64
	cmd := &cobra.Command{
		Use:   "add <objective-id> <key-result-id> <title>",
		Short: "Plan a task on a key result",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, err := joinTitle(args[2:])
			if err != nil {
				return err
			}
			rec, err := models.ParseRecurrence(recur)
			if err != nil {
				return err
			}
			return withApp(cmd, func(a *app) error {
				now := a.store.Now()
				day, err := util.ParseDay(date, now)
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				task := models.NewTask(title, day, rec, weight, now)
				if !a.store.AddTask(cmd.Context(), args[0], args[1], task) {
					return errNotFound("key result", args[1])
				}
				fmt.Fprintln(cmd.OutOrStdout(), task.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "first day as "+util.DayLayout+" (default today)")
	cmd.Flags().StringVar(&recur, "recur", string(models.RecurNone), "none, daily, weekly or weekdays")
	cmd.Flags().Float64Var(&weight, "weight", 0, "value added to the key result on completion")
	return cmd
}

func taskEditCmd(withApp appRunner) *cobra.Command {
	var title, date, recur string
	var weight float64
	cmd := &cobra.Command{
		Use:   "edit <objective-id> <key-result-id> <task-id>",
		Short: "Edit a task's title, date, recurrence or weight",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("title") && !flags.Changed("date") && !flags.Changed("recur") && !flags.Changed("weight") {
				return errNothingToChange
			}
			if flags.Changed("title") && strings.TrimSpace(title) == "" {
				return errors.New("title must not be empty")
			}
			rec, err := models.ParseRecurrence(recur)
			if err != nil {
				return err
			}
			return withApp(cmd, func(a *app) error {
				day, err := util.ParseDay(date, a.store.Now())
				if err != nil {
					return fmt.Errorf("invalid --date: %w", err)
				}
				ok := a.store.UpdateTask(cmd.Context(), args[0], args[1], args[2], func(t *models.Task) {
					if flags.Changed("title") {
						t.Title = strings.TrimSpace(title)
					}
					if flags.Changed("date") {
						t.Date = day
					}
					if flags.Changed("recur") {
						t.Recurrence = rec
					}
					if flags.Changed("weight") {
						t.Weight = weight
					}
				})
				if !ok {
					return errNotFound("task", args[2])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", args[2])
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&date, "date", "", "new first day as "+util.DayLayout)
	cmd.Flags().StringVar(&recur, "recur", "", "none, daily, weekly or weekdays")
	cmd.Flags().Float64Var(&weight, "weight", 0, "new weight")
	return cmd
}

func taskRemoveCmd(withApp appRunner) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <objective-id> <key-result-id> <task-id>",
		Short: "Remove a task; values it added stay on the key result",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				if !a.store.RemoveTask(cmd.Context(), args[0], args[1], args[2]) {
					return errNotFound("task", args[2])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[2])
				return nil
			})
		},
	}
}
