package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"bump/config"
	"bump/internal/checkup"
	"bump/internal/profile"
	"bump/internal/ui"
	"bump/store"
)

const noCheckupsMsg = "No checkups scheduled. Add one with 'bump checkup add'"

var (
	errCheckupID        = errors.New("a checkup id is required")
	errCheckupNotFound  = errors.New("no checkup matches that id")
	errCheckupAmbiguous = errors.New("more than one checkup matches that id")
)

// shortID is the truncated identifier shown in tables. Any unique prefix is
// accepted back as input.
func shortID(id string) string {
	const n = 8

	if len(id) <= n {
		return id
	}

	return id[:n]
}

// findCheckup resolves an id or unique id prefix to a stored checkup.
func findCheckup(db store.DB, id string) (*checkup.Checkup, error) {
	if id == "" {
		return nil, errCheckupID
	}

	checkups, err := db.Checkups()
	if err != nil {
		return nil, err
	}

	var match *checkup.Checkup

	for i := range checkups {
		if !strings.HasPrefix(checkups[i].ID, id) {
			continue
		}

		if match != nil {
			return nil, errCheckupAmbiguous
		}

		match = &checkups[i]
	}

	if match == nil {
		return nil, errCheckupNotFound
	}

	return match, nil
}

// checkupAddAction schedules a new checkup appointment.
func checkupAddAction(ctx *cli.Context) error {
	cfg := config.App(ctx)

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := requireProfile(db); err != nil {
		return err
	}

	date, err := parseDate(ctx.String("date"))
	if err != nil {
		return err
	}

	typ := checkup.Type(ctx.String("type"))
	if !checkup.ValidType(typ) {
		return fmt.Errorf(
			"unknown checkup type %q (one of: %s)",
			typ,
			joinTypes(),
		)
	}

	c := &checkup.Checkup{
		ID:              uuid.NewString(),
		Date:            date,
		Type:            typ,
		Location:        ctx.String("location"),
		Notes:           ctx.String("notes"),
		ReminderEnabled: !ctx.Bool("no-reminder"),
		ReminderOffsets: cfg.ReminderOffsets,
		CreatedAt:       time.Now(),
	}

	if err := db.SaveCheckup(c); err != nil {
		return err
	}

	pterm.Success.Printfln(
		"Scheduled %s on %s (id: %s)",
		c.Type,
		c.Date.Format(clockLayout(cfg)),
		shortID(c.ID),
	)

	return nil
}

func joinTypes() string {
	ss := make([]string, len(checkup.Types))
	for i, t := range checkup.Types {
		ss[i] = string(t)
	}

	return strings.Join(ss, ", ")
}

// printCheckupsTable prints a checkup table to the command-line.
func printCheckupsTable(
	w io.Writer,
	checkups []checkup.Checkup,
	cfg *config.AppConfig,
	now time.Time,
) {
	layout := clockLayout(cfg)

	tableBody := make([][]string, len(checkups))

	for i := range checkups {
		c := checkups[i]

		statusText := ui.Blue("upcoming")

		switch {
		case c.Completed:
			statusText = ui.Green("done")
		case c.Date.Before(now):
			statusText = ui.Red("missed")
		}

		reminderText := "off"
		if c.ReminderEnabled {
			reminderText = "on"
		}

		tableBody[i] = []string{
			shortID(c.ID),
			c.Date.Format(layout),
			string(c.Type),
			c.Location,
			reminderText,
			statusText,
		}
	}

	tableBody = append([][]string{
		{"ID", "DATE", "TYPE", "LOCATION", "REMINDER", "STATUS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// checkupListAction prints all scheduled checkups, soonest first.
func checkupListAction(ctx *cli.Context) error {
	cfg := config.App(ctx)

	ui.DarkTheme = cfg.DarkTheme

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := requireProfile(db); err != nil {
		return err
	}

	checkups, err := db.Checkups()
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(checkups)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	if len(checkups) == 0 {
		pterm.Info.Println(noCheckupsMsg)
		return nil
	}

	printCheckupsTable(os.Stdout, checkups, cfg, time.Now())

	return nil
}

// checkupDoneAction marks a checkup as completed.
func checkupDoneAction(ctx *cli.Context) error {
	config.App(ctx)

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := requireProfile(db); err != nil {
		return err
	}

	c, err := findCheckup(db, ctx.Args().First())
	if err != nil {
		return err
	}

	c.Completed = true

	if err := db.SaveCheckup(c); err != nil {
		return err
	}

	pterm.Success.Printfln("Marked %s as done", c.Type)

	return nil
}

// checkupDeleteAction removes a checkup.
func checkupDeleteAction(ctx *cli.Context) error {
	config.App(ctx)

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := requireProfile(db); err != nil {
		return err
	}

	c, err := findCheckup(db, ctx.Args().First())
	if err != nil {
		return err
	}

	if err := db.DeleteCheckup(c.ID); err != nil {
		return err
	}

	pterm.Success.Printfln(
		"Deleted %s on %s",
		c.Type,
		c.Date.Format("Jan 02, 2006"),
	)

	return nil
}

// checkupTemplatesAction shows the standard prenatal schedule resolved
// against the profile's start date. With --apply it creates checkups for the
// weeks still ahead.
func checkupTemplatesAction(ctx *cli.Context) error {
	cfg := config.App(ctx)

	ui.DarkTheme = cfg.DarkTheme

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	p, err := requireProfile(db)
	if err != nil {
		return err
	}

	now := time.Now()

	if ctx.Bool("apply") {
		applied := 0

		for _, tpl := range checkup.Templates {
			date := templateDate(p, tpl)
			if date.Before(now) {
				continue
			}

			c := &checkup.Checkup{
				ID:              uuid.NewString(),
				Date:            date,
				Type:            tpl.Type,
				Notes:           tpl.Description,
				ReminderEnabled: true,
				ReminderOffsets: cfg.ReminderOffsets,
				CreatedAt:       now,
			}

			if err := db.SaveCheckup(c); err != nil {
				return err
			}

			applied++
		}

		pterm.Success.Printfln("Added %d checkup(s) from the standard schedule", applied)

		return nil
	}

	tableBody := make([][]string, len(checkup.Templates))

	for i, tpl := range checkup.Templates {
		tableBody[i] = []string{
			fmt.Sprintf("%d", tpl.Week),
			string(tpl.Type),
			tpl.Description,
			ui.Green(templateDate(p, tpl).Format("Jan 02, 2006")),
		}
	}

	tableBody = append([][]string{
		{"WEEK", "TYPE", "DESCRIPTION", "AROUND"},
	}, tableBody...)

	ui.PrintTable(tableBody, os.Stdout)

	return nil
}

// templateDate resolves a template's week number to a concrete date for the
// profile's pregnancy.
func templateDate(p *profile.Profile, tpl checkup.Template) time.Time {
	return p.PregnancyStartDate.AddDate(0, 0, tpl.Week*7)
}
