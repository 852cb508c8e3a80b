package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/markusmobius/go-dateparser"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"bump/config"
	"bump/counter"
	"bump/internal/checkup"
	"bump/internal/profile"
	"bump/internal/session"
	"bump/internal/timeutil"
	"bump/internal/ui"
	"bump/reminder"
	"bump/stats"
	"bump/store"
)

const (
	envNoColor     = "NO_COLOR"
	envBumpNoColor = "BUMP_NO_COLOR"
)

const noSessionsMsg = "No saved counting sessions yet"

var errNoProfile = errors.New(
	"no profile found. Run 'bump onboard' to get started",
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// parseDate interprets human date input, preferring future dates for
// ambiguous phrases like 'tuesday'.
func parseDate(s string) (time.Time, error) {
	dt, err := dateparser.Parse(&dateparser.Configuration{
		CurrentTime:         time.Now(),
		PreferredDateSource: dateparser.Future,
	}, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q: %w", s, err)
	}

	return dt.Time, nil
}

// clockLayout is the timestamp display format per the 24hr-clock preference.
func clockLayout(cfg *config.AppConfig) string {
	if cfg.TwentyFourHourClock {
		return "Jan 02, 2006 15:04"
	}

	return "Jan 02, 2006 03:04 PM"
}

func openDB() (store.DB, error) {
	return store.NewClient(config.DBFilePath())
}

// requireProfile loads the onboarded profile, failing with a pointer to the
// onboard command when there is none.
func requireProfile(db store.DB) (*profile.Profile, error) {
	p, err := db.GetProfile()
	if err != nil {
		return nil, err
	}

	if p == nil || !p.OnboardingCompleted {
		return nil, errNoProfile
	}

	return p, nil
}

// terminalNotifier prints reminders instead of raising desktop notifications.
// It is used when notifications are disabled, denied, or the profile prefers
// in-app delivery.
type terminalNotifier struct{}

func (terminalNotifier) Notify(title, body string) error {
	pterm.Info.Printfln("%s: %s", title, body)
	return nil
}

func notifierFor(cfg *config.AppConfig, p *profile.Profile) reminder.Notifier {
	if !cfg.Notify || p.PreferInAppNotifications ||
		p.NotificationPermission == profile.PermissionDenied {
		return terminalNotifier{}
	}

	return reminder.DesktopNotifier{}
}

// printToday renders the pregnancy progress summary.
func printToday(w io.Writer, p *profile.Profile, now time.Time) {
	info := p.Info(now)

	greeting := "Hello"
	if p.UserName != "" {
		greeting = fmt.Sprintf("Hello, %s", p.UserName)
	}

	pterm.Fprintln(w, pterm.Sprintf("%s 🌱", ui.Highlight(greeting)))
	pterm.Fprintln(w, pterm.Sprintf(
		"Week %s + %d day(s) · %s trimester",
		ui.Green(info.Weeks),
		info.Days,
		info.Trimester,
	))
	pterm.Fprintln(w, pterm.Sprintf(
		"Baby is about the size of a %s %s (%.1fcm)",
		ui.Magenta(info.BabySize.Name),
		info.BabySize.Emoji,
		info.BabySize.LengthCm,
	))

	due := p.DueDate.Format("Jan 02, 2006")

	switch {
	case info.DaysUntilDue > 0:
		pterm.Fprintln(w, pterm.Sprintf(
			"%s day(s) until your due date (%s)",
			ui.Blue(info.DaysUntilDue),
			due,
		))
	case info.DaysUntilDue == 0:
		pterm.Fprintln(w, pterm.Sprintf("Your due date is %s! 🎉", ui.Blue("today")))
	default:
		pterm.Fprintln(w, pterm.Sprintf(
			"Your due date (%s) was %s day(s) ago",
			due,
			ui.Blue(-info.DaysUntilDue),
		))
	}
}

// printUpcoming lists unfinished checkups inside the look-ahead window.
func printUpcoming(
	w io.Writer,
	checkups []checkup.Checkup,
	cfg *config.AppConfig,
	now time.Time,
) {
	upcoming := checkup.Upcoming(checkups, now, cfg.UpcomingWindow)
	if len(upcoming) == 0 {
		return
	}

	pterm.Fprintln(w)
	pterm.Fprintln(w, ui.Highlight("Upcoming checkups:"))

	for _, c := range upcoming {
		pterm.Fprintln(w, pterm.Sprintf(
			"  • %s — %s",
			ui.Green(c.Date.Format(clockLayout(cfg))),
			c.Type,
		))
	}
}

// defaultAction prints the today view: pregnancy progress plus imminent
// checkups.
func defaultAction(ctx *cli.Context) error {
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

	printToday(os.Stdout, p, now)

	checkups, err := db.Checkups()
	if err != nil {
		return err
	}

	printUpcoming(os.Stdout, checkups, cfg, now)

	return nil
}

// countAction starts the interactive counting screen.
func countAction(ctx *cli.Context) error {
	cfg := config.App(ctx)

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	p, err := requireProfile(db)
	if err != nil {
		return err
	}

	c := counter.New(db, cfg)

	if _, err := tea.NewProgram(c).Run(); err != nil {
		return err
	}

	if sess := c.Saved(); sess != nil && sess.Completed {
		err := notifierFor(cfg, p).Notify(
			"Counting complete",
			fmt.Sprintf(
				"%d kick(s) recorded in %d minute(s). Baby is doing great!",
				sess.Count,
				sess.Duration,
			),
		)
		if err != nil {
			slog.Error("delivering completion notification", "error", err)
		}
	}

	return nil
}

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(
	w io.Writer,
	sessions []session.Session,
	cfg *config.AppConfig,
) {
	layout := clockLayout(cfg)

	tableBody := make([][]string, len(sessions))

	for i := range sessions {
		sess := sessions[i]

		statusText := ui.Green("completed")
		if !sess.Completed {
			statusText = ui.Red("partial")
		}

		endDate := sess.EndTime.Format(layout)
		if sess.EndTime.IsZero() {
			endDate = ""
		}

		tableBody[i] = []string{
			fmt.Sprintf("%d", i+1),
			sess.StartTime.Format(layout),
			endDate,
			fmt.Sprintf("%d", sess.Count),
			fmt.Sprintf("%d min(s)", sess.Duration),
			statusText,
		}
	}

	tableBody = append([][]string{
		{"#", "START", "END", "KICKS", "DURATION", "STATUS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// listAction prints recent sessions, or a month of sessions with --month.
func listAction(ctx *cli.Context) error {
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

	var sessions []session.Session

	if m := ctx.String("month"); m != "" {
		date, err := parseDate(m)
		if err != nil {
			return err
		}

		start, end := timeutil.MonthBounds(date)

		sessions, err = db.SessionsInRange(start, end)
		if err != nil {
			return err
		}
	} else {
		sessions, err = db.RecentSessions(cfg.ListLimit)
		if err != nil {
			return err
		}
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(sessions)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printSessionsTable(os.Stdout, sessions, cfg)

	return nil
}

// statsAction computes movement statistics over the recorded sessions.
func statsAction(ctx *cli.Context) error {
	cfg := config.App(ctx)

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := requireProfile(db); err != nil {
		return err
	}

	now := time.Now()

	var sessions []session.Session

	if since := ctx.String("since"); since != "" {
		start, err := parseDate(since)
		if err != nil {
			return err
		}

		sessions, err = db.SessionsInRange(start, now)
		if err != nil {
			return err
		}
	} else {
		sessions, err = db.RecentSessions(0)
		if err != nil {
			return err
		}
	}

	s := stats.Compute(sessions, now)

	if ctx.Bool("json") {
		b, err := s.ToJSON()
		if err != nil {
			return err
		}

		fmt.Println(string(b))

		return nil
	}

	ui.DarkTheme = cfg.DarkTheme

	s.Render(os.Stdout)

	return nil
}

// remindAction notifies about imminent checkups, or keeps watching with
// --watch.
func remindAction(ctx *cli.Context) error {
	cfg := config.App(ctx)

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	p, err := requireProfile(db)
	if err != nil {
		return err
	}

	notifier := notifierFor(cfg, p)

	if ctx.Bool("watch") {
		watchCtx, stop := signal.NotifyContext(
			ctx.Context,
			os.Interrupt,
			syscall.SIGTERM,
		)
		defer stop()

		return reminder.NewScheduler(db, notifier).Start(watchCtx)
	}

	checkups, err := db.Checkups()
	if err != nil {
		return err
	}

	upcoming := checkup.Upcoming(checkups, time.Now(), cfg.UpcomingWindow)
	if len(upcoming) == 0 {
		pterm.Info.Println("No checkups in the next 24 hours")
		return nil
	}

	for _, c := range upcoming {
		mins := int(time.Until(c.Date).Minutes())

		if err := notifier.Notify("Checkup reminder", reminder.Message(c, mins)); err != nil {
			slog.Error("delivering reminder", "checkup", c.ID, "error", err)
		}
	}

	return nil
}

// export is the JSON document produced by the export command.
type export struct {
	Profile  *profile.Profile  `json:"profile"`
	Sessions []session.Session `json:"sessions"`
	Checkups []checkup.Checkup `json:"checkups"`
}

// exportAction dumps all stored data as indented JSON on stdout.
func exportAction(ctx *cli.Context) error {
	config.App(ctx)

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	p, err := requireProfile(db)
	if err != nil {
		return err
	}

	sessions, err := db.RecentSessions(0)
	if err != nil {
		return err
	}

	checkups, err := db.Checkups()
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(export{
		Profile:  p,
		Sessions: sessions,
		Checkups: checkups,
	}, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(b))

	return nil
}

// resetAction wipes all stored data after confirmation.
func resetAction(ctx *cli.Context) error {
	config.App(ctx)

	var confirmed bool

	err := huh.NewConfirm().
		Title("Delete all sessions, checkups, and your profile?").
		Description("This cannot be undone.").
		Value(&confirmed).
		Run()
	if err != nil {
		return err
	}

	if !confirmed {
		pterm.Info.Println("Reset aborted")
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Reset(); err != nil {
		return err
	}

	pterm.Success.Println("All data deleted")

	return nil
}

// editConfigAction opens the bump config file in the user's default text
// editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cfg := config.App(ctx)

	cmd := exec.Command(editor, cfg.PathToConfig)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(&lumberjack.Logger{
		Filename:   config.LogFilePath(),
		MaxSize:    1,
		MaxBackups: 3,
		Compress:   true,
	}, nil))
	slog.SetDefault(logger)

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if BUMP_NO_COLOR is set
	if _, exists := os.LookupEnv(envBumpNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
