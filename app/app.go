// Package app defines the bump command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"bump/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the bump app instance.
func Get() *cli.App {
	bumpApp := &cli.App{
		Name: "bump",
		Usage: `
		Bump is a local-first pregnancy companion for the command-line. It tracks
		pregnancy progress from your due date, counts fetal movements in timed
		sessions, and reminds you about upcoming prenatal checkups.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "onboard",
				Usage:  "Set up your profile with a due date",
				Action: onboardAction,
			},
			{
				Name:  "count",
				Usage: "Start an interactive kick-counting session",
				Flags: []cli.Flag{
					targetFlag,
					disableNotificationFlag,
					sessionCmdFlag,
				},
				Action: countAction,
			},
			{
				Name:   "list",
				Usage:  "Print a table of saved counting sessions",
				Flags:  []cli.Flag{limitFlag, monthFlag, jsonFlag},
				Action: listAction,
			},
			{
				Name:   "stats",
				Usage:  "Report movement statistics and the recent kick trend",
				Flags:  []cli.Flag{sinceFlag, jsonFlag},
				Action: statsAction,
			},
			{
				Name:  "checkup",
				Usage: "Manage prenatal checkup appointments",
				Subcommands: []*cli.Command{
					{
						Name:  "add",
						Usage: "Schedule a checkup appointment",
						Flags: []cli.Flag{
							dateFlag,
							typeFlag,
							locationFlag,
							notesFlag,
							noReminderFlag,
						},
						Action: checkupAddAction,
					},
					{
						Name:   "list",
						Usage:  "Print all scheduled checkups",
						Flags:  []cli.Flag{jsonFlag},
						Action: checkupListAction,
					},
					{
						Name:      "done",
						Usage:     "Mark a checkup as completed",
						ArgsUsage: "<checkup id>",
						Action:    checkupDoneAction,
					},
					{
						Name:      "delete",
						Usage:     "Delete a checkup",
						ArgsUsage: "<checkup id>",
						Action:    checkupDeleteAction,
					},
					{
						Name:   "templates",
						Usage:  "Show the standard prenatal checkup schedule",
						Flags:  []cli.Flag{applyFlag},
						Action: checkupTemplatesAction,
					},
				},
			},
			{
				Name:   "remind",
				Usage:  "Notify about checkups coming up in the next day",
				Flags:  []cli.Flag{watchFlag},
				Action: remindAction,
			},
			{
				Name:   "export",
				Usage:  "Export the profile, sessions, and checkups as JSON",
				Action: exportAction,
			},
			{
				Name:   "reset",
				Usage:  "Delete all sessions, checkups, and the profile",
				Action: resetAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags:  []cli.Flag{noColorFlag},
		Action: defaultAction,
		Before: beforeAction,
	}

	return bumpApp
}
