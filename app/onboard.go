package app

import (
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/urfave/cli/v2"

	"bump/config"
	"bump/internal/profile"
	"bump/internal/ui"
)

const asciiLogo = `
██████╗ ██╗   ██╗███╗   ███╗██████╗
██╔══██╗██║   ██║████╗ ████║██╔══██╗
██████╔╝██║   ██║██╔████╔██║██████╔╝
██╔══██╗██║   ██║██║╚██╔╝██║██╔═══╝
██████╔╝╚██████╔╝██║ ╚═╝ ██║██║
╚═════╝  ╚═════╝ ╚═╝     ╚═╝╚═╝`

// onboardAnswers holds the user's responses to the onboarding prompts.
type onboardAnswers struct {
	dueDateInput string
	userName     string
	notify       bool
}

// promptOnboarding runs the interactive onboarding form.
func promptOnboarding() (onboardAnswers, error) {
	answers := onboardAnswers{notify: true}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Answer the prompts below to set up your pregnancy profile.
Your due date drives everything else: weekly progress, baby size, and the checkup schedule.
Edit the config file with 'bump edit-config' to change tracking settings later.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("When is your baby due?").
				Placeholder("e.g. 2027-03-15, 'june 3', or 'in 30 weeks'").
				Validate(func(s string) error {
					_, err := parseDate(s)
					return err
				}).
				Value(&answers.dueDateInput),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("What should we call you? (optional)").
				Value(&answers.userName),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable desktop notifications?").
				Description("Used for checkup reminders and completed counting sessions.").
				Value(&answers.notify),
		),
	)

	if err := form.Run(); err != nil {
		return answers, err
	}

	return answers, nil
}

// onboardAction creates or replaces the user profile. Re-running onboarding
// keeps existing sessions and checkups; only the profile changes.
func onboardAction(ctx *cli.Context) error {
	cfg := config.App(ctx)

	ui.DarkTheme = cfg.DarkTheme

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	existing, err := db.GetProfile()
	if err != nil {
		return err
	}

	if existing != nil && existing.OnboardingCompleted {
		var proceed bool

		err := huh.NewConfirm().
			Title("A profile already exists. Set it up again?").
			Description("Saved sessions and checkups are kept.").
			Value(&proceed).
			Run()
		if err != nil {
			return err
		}

		if !proceed {
			return nil
		}
	}

	answers, err := promptOnboarding()
	if err != nil {
		return err
	}

	dueDate, err := parseDate(answers.dueDateInput)
	if err != nil {
		return err
	}

	p := profile.New(dueDate, answers.userName)

	p.NotificationPermission = profile.PermissionGranted
	if !answers.notify {
		p.NotificationPermission = profile.PermissionDenied
		p.PreferInAppNotifications = true
	}

	if err := db.SaveProfile(p); err != nil {
		return err
	}

	pterm.Success.Println("You're all set!")
	pterm.Println()

	printToday(os.Stdout, p, time.Now())

	return nil
}
