package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Output in JSON format",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is saved",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each saved session",
	}

	targetFlag = &cli.UintFlag{
		Name:    "target",
		Aliases: []string{"t"},
		Usage:   "Number of kicks that completes a session (default: 10)",
	}

	limitFlag = &cli.UintFlag{
		Name:    "limit",
		Aliases: []string{"n"},
		Usage:   "Maximum number of sessions to show (default: 20)",
	}

	monthFlag = &cli.StringFlag{
		Name:    "month",
		Aliases: []string{"m"},
		Usage:   "Show sessions for a specific month (e.g. 'this month', 'march')",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only consider sessions started after this point (e.g. '2 weeks ago')",
	}

	watchFlag = &cli.BoolFlag{
		Name:    "watch",
		Aliases: []string{"w"},
		Usage:   "Keep running and deliver checkup reminders as they come due",
	}

	dateFlag = &cli.StringFlag{
		Name:     "date",
		Usage:    "Appointment date and time (e.g. '2026-09-14 10:30', 'next tuesday 9am')",
		Required: true,
	}

	typeFlag = &cli.StringFlag{
		Name:  "type",
		Usage: "Checkup type. Run 'bump checkup templates' to see the standard schedule",
		Value: "routine checkup",
	}

	locationFlag = &cli.StringFlag{
		Name:  "location",
		Usage: "Clinic or hospital for the appointment",
	}

	notesFlag = &cli.StringFlag{
		Name:  "notes",
		Usage: "Free-form notes for the appointment",
	}

	noReminderFlag = &cli.BoolFlag{
		Name:  "no-reminder",
		Usage: "Do not schedule reminder notifications for this checkup",
	}

	applyFlag = &cli.BoolFlag{
		Name:  "apply",
		Usage: "Create checkups from the standard schedule for the weeks still ahead",
	}
)
