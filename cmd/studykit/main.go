package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"studykit/internal/bootstrap"
	calendardto "studykit/internal/modules/calendar/dto"
	intakedto "studykit/internal/modules/intake/dto"
	scheduledto "studykit/internal/modules/schedule/dto"
	"studykit/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var homePath string

	root := &cobra.Command{
		Use:           "studykit",
		Short:         "Study plan scheduling toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&homePath, "home", ".", "studykit home directory")

	root.AddCommand(newTUICmd(&homePath))
	root.AddCommand(newPlanCmd(&homePath))
	root.AddCommand(newIntakeCmd(&homePath))
	root.AddCommand(newCalendarCmd(&homePath))
	return root
}

func loadApp(homePath string) (*bootstrap.App, error) {
	cfg, err := config.New(homePath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(homePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run studykit terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newPlanCmd(homePath *string) *cobra.Command {
	plan := &cobra.Command{Use: "plan", Short: "Study plan lifecycle"}

	var text string
	var topics []string
	var dailyHours int
	var startDate, deadline, provider string
	var sync bool

	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate a study plan from topics or free text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			ctx := context.Background()

			input := scheduledto.GenerateInput{DailyHours: dailyHours, SyncCalendar: sync, Provider: provider}
			for _, name := range topics {
				input.Topics = append(input.Topics, scheduledto.TopicInput{Name: name})
			}
			if strings.TrimSpace(text) != "" {
				parsed, err := app.IntakeCLI.Parse(ctx, text)
				if err != nil {
					return err
				}
				for _, name := range parsed.Topics {
					input.Topics = append(input.Topics, scheduledto.TopicInput{Name: name})
				}
				if parsed.DailyHours > 0 && !cmd.Flags().Changed("daily-hours") {
					input.DailyHours = int(parsed.DailyHours)
				}
				if parsed.HasDeadline {
					input.Deadline = parsed.Deadline
				}
			}
			if startDate != "" {
				parsed, err := time.Parse("2006-01-02", startDate)
				if err != nil {
					return fmt.Errorf("--start must be YYYY-MM-DD: %w", err)
				}
				input.StartDate = parsed
			}
			if deadline != "" {
				parsed, err := time.Parse("2006-01-02", deadline)
				if err != nil {
					return fmt.Errorf("--deadline must be YYYY-MM-DD: %w", err)
				}
				input.Deadline = parsed
			}

			out, err := app.ScheduleCLI.Generate(ctx, input)
			if err != nil {
				return err
			}
			if !out.Success {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "plan not generated: %s\n", out.Reason)
				return nil
			}
			printPlan(cmd, *out.Plan)
			if out.Synced > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "synced %d sessions to calendar\n", out.Synced)
			}
			return nil
		},
	}
	generate.Flags().StringVar(&text, "text", "", "free-text study request")
	generate.Flags().StringSliceVar(&topics, "topic", nil, "topic name (repeatable)")
	generate.Flags().IntVar(&dailyHours, "daily-hours", 3, "study hours per day")
	generate.Flags().StringVar(&startDate, "start", "", "start date YYYY-MM-DD")
	generate.Flags().StringVar(&deadline, "deadline", "", "deadline YYYY-MM-DD")
	generate.Flags().BoolVar(&sync, "sync", false, "push study sessions to a calendar provider")
	generate.Flags().StringVar(&provider, "provider", "", "calendar provider (default builtin ics)")
	plan.AddCommand(generate)

	plan.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current active plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.ScheduleCLI.GetCurrent(context.Background())
			if err != nil {
				return err
			}
			printPlan(cmd, out)
			return nil
		},
	})

	plan.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored plans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			items, err := app.ScheduleCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plans")
				return nil
			}
			for _, item := range items {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d days\t%s\t%s\n",
					item.ID, item.Status, item.TotalDays, item.CreatedAt.Format("2006-01-02 15:04"), strings.Join(item.Topics, ", "))
			}
			return nil
		},
	})

	var archiveID string
	archive := &cobra.Command{
		Use:   "archive --id <id>",
		Short: "Archive a stored plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(archiveID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			if err := app.ScheduleCLI.Archive(context.Background(), archiveID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "archived %s\n", archiveID)
			return nil
		},
	}
	archive.Flags().StringVar(&archiveID, "id", "", "plan id")
	plan.AddCommand(archive)

	return plan
}

func printPlan(cmd *cobra.Command, plan scheduledto.PlanOutput) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "plan %s (%s) days=%d sessions=%d study=%d est_hours=%d\n",
		plan.ID, plan.Status, plan.Summary.TotalDays, plan.Summary.TotalSessions, plan.Summary.StudySessions, plan.Summary.EstimatedHours)
	if plan.NotePath != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "note: %s\n", plan.NotePath)
	}
	for _, day := range plan.Days {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", day.Label, day.Date.Format("2006-01-02"))
		for _, session := range day.Sessions {
			label := session.Topic
			switch {
			case session.Type == "break":
				label = "Break"
			case session.Type == "review" && session.Topic == "":
				label = "Review and practice"
			case session.Type == "review":
				label = "Review " + session.Topic
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s  %-30s %d min\n", session.Time, label, session.DurationMin)
		}
	}
}

func newIntakeCmd(homePath *string) *cobra.Command {
	intake := &cobra.Command{Use: "intake", Short: "Study request intake"}

	parse := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse a free-text study request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.IntakeCLI.Parse(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "topics: %s\n", strings.Join(out.Topics, ", "))
			if out.DailyHours > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "daily_hours: %.0f\n", out.DailyHours)
			}
			if out.HasDeadline {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deadline: %s\n", out.Deadline.Format("2006-01-02"))
			}
			return nil
		},
	}
	intake.AddCommand(parse)

	topic := &cobra.Command{
		Use:   "topic <name>",
		Short: "Show difficulty and estimated hours for a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.IntakeCLI.Profile(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s difficulty=%.2f estimated_hours=%d\n", out.Name, out.Difficulty, out.EstimatedHours)
			return nil
		},
	}
	intake.AddCommand(topic)

	var maxTopics int
	syllabus := &cobra.Command{
		Use:   "syllabus <path>",
		Short: "Extract topics from a PDF syllabus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.IntakeCLI.Syllabus(context.Background(), intakedto.SyllabusInput{Path: args[0], MaxTopics: maxTopics})
			if err != nil {
				return err
			}
			if len(out.Topics) == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no topics found in %d pages\n", out.Pages)
				return nil
			}
			for _, topic := range out.Topics {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), topic)
			}
			return nil
		},
	}
	syllabus.Flags().IntVar(&maxTopics, "max-topics", 20, "maximum topics to extract (0 = no limit)")
	intake.AddCommand(syllabus)

	return intake
}

func newCalendarCmd(homePath *string) *cobra.Command {
	calendar := &cobra.Command{Use: "calendar", Short: "Calendar provider operations"}

	calendar.AddCommand(&cobra.Command{
		Use:   "providers",
		Short: "List configured calendar providers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			providers, err := app.CalendarCLI.Providers(context.Background())
			if err != nil {
				return err
			}
			for _, p := range providers {
				origin := "plugin"
				if p.Builtin {
					origin = "builtin"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s@%s %s enabled=%t capabilities=%s\n",
					p.Name, p.Version, origin, p.Enabled, strings.Join(p.Capabilities, ","))
			}
			return nil
		},
	})

	calendar.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Validate provider checksums and lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			results, err := app.CalendarCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s checksum=%t binary=%t lifecycle=%t", r.Name, r.ChecksumValid, r.BinaryReachable, r.LifecycleOK)
				if r.Error != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})

	var provider, title, date, timeOfDay, description string
	var duration int
	push := &cobra.Command{
		Use:   "push --title <title> --date <date> --time <time>",
		Short: "Push a single event to a provider",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*homePath)
			if err != nil {
				return err
			}
			out, err := app.CalendarCLI.Push(context.Background(), calendardto.PushInput{
				Provider: provider,
				Event: calendardto.EventInput{
					Title:       title,
					Date:        date,
					Time:        timeOfDay,
					DurationMin: duration,
					Description: description,
				},
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "pushed to %s event_id=%s\n", out.Provider, out.EventID)
			return nil
		},
	}
	push.Flags().StringVar(&provider, "provider", "", "provider name (default builtin ics)")
	push.Flags().StringVar(&title, "title", "", "event title")
	push.Flags().StringVar(&date, "date", "", "event date YYYY-MM-DD")
	push.Flags().StringVar(&timeOfDay, "time", "", "event time HH:MM")
	push.Flags().IntVar(&duration, "duration", 60, "event duration minutes")
	push.Flags().StringVar(&description, "description", "", "event description")
	calendar.AddCommand(push)

	return calendar
}
