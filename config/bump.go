package config

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

var once sync.Once

var errInitFailed = errors.New(
	"unable to initialise bump settings from the configuration file",
)

// Business rules live in the config file so they are independently testable
// and overridable, but the shipped defaults match the standard counting
// protocol: ten kicks per session, auto-save two seconds after completion,
// reminders a day and three hours ahead of a checkup.
const (
	defaultKickTarget      = 10
	defaultAutoSaveDelay   = 2 * time.Second
	defaultUpcomingWindow  = 24 * time.Hour
	defaultSessionListSize = 20
)

var defaultReminderOffsets = []int{1440, 180}

const (
	keyKickTarget      = "tracker.kick_target"
	keyAutoSaveDelay   = "tracker.auto_save_delay"
	keySessionCmd      = "tracker.session_cmd"
	keyListLimit       = "tracker.list_limit"
	keyReminderOffsets = "reminders.offsets"
	keyUpcomingWindow  = "reminders.upcoming_window"
	keyNotify          = "notifications.enabled"
	keyDarkTheme       = "display.dark_theme"
	keyTwentyFourHour  = "display.24hr_clock"
)

// AppConfig represents the program configuration derived from the config file
// and command-line arguments.
type AppConfig struct {
	PathToConfig        string        `json:"path_to_config"`
	PathToDB            string        `json:"path_to_db"`
	SessionCmd          string        `json:"session_cmd"`
	ReminderOffsets     []int         `json:"reminder_offsets"`
	KickTarget          int           `json:"kick_target"`
	ListLimit           int           `json:"list_limit"`
	AutoSaveDelay       time.Duration `json:"auto_save_delay"`
	UpcomingWindow      time.Duration `json:"upcoming_window"`
	Notify              bool          `json:"notify"`
	DarkTheme           bool          `json:"dark_theme"`
	TwentyFourHourClock bool          `json:"twenty_four_hour_clock"`
}

var appCfg = &AppConfig{}

func setDefaults() {
	viper.SetDefault(keyKickTarget, defaultKickTarget)
	viper.SetDefault(keyAutoSaveDelay, defaultAutoSaveDelay.String())
	viper.SetDefault(keySessionCmd, "")
	viper.SetDefault(keyListLimit, defaultSessionListSize)
	viper.SetDefault(keyReminderOffsets, defaultReminderOffsets)
	viper.SetDefault(keyUpcomingWindow, defaultUpcomingWindow.String())
	viper.SetDefault(keyNotify, true)
	viper.SetDefault(keyDarkTheme, true)
	viper.SetDefault(keyTwentyFourHour, false)
}

// initAppConfig reads the config file, creating it with defaults on first
// run.
func initAppConfig() error {
	viper.SetConfigFile(configFilePath)
	viper.SetConfigType("yaml")

	setDefaults()

	appCfg.PathToConfig = configFilePath

	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return viper.WriteConfigAs(configFilePath)
	}

	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return viper.WriteConfigAs(configFilePath)
	}

	return err
}

// setAppConfig populates the config from the config file, then overrides from
// command-line arguments.
func setAppConfig(ctx *cli.Context) {
	appCfg.PathToDB = dbFilePath

	appCfg.KickTarget = viper.GetInt(keyKickTarget)
	appCfg.AutoSaveDelay = viper.GetDuration(keyAutoSaveDelay)
	appCfg.SessionCmd = viper.GetString(keySessionCmd)
	appCfg.ListLimit = viper.GetInt(keyListLimit)
	appCfg.ReminderOffsets = viper.GetIntSlice(keyReminderOffsets)
	appCfg.UpcomingWindow = viper.GetDuration(keyUpcomingWindow)
	appCfg.Notify = viper.GetBool(keyNotify)
	appCfg.DarkTheme = viper.GetBool(keyDarkTheme)
	appCfg.TwentyFourHourClock = viper.GetBool(keyTwentyFourHour)

	if appCfg.KickTarget <= 0 {
		appCfg.KickTarget = defaultKickTarget
	}

	if appCfg.AutoSaveDelay <= 0 {
		appCfg.AutoSaveDelay = defaultAutoSaveDelay
	}

	if len(appCfg.ReminderOffsets) == 0 {
		appCfg.ReminderOffsets = defaultReminderOffsets
	}

	if ctx.Bool("disable-notification") {
		appCfg.Notify = false
	}

	if ctx.String("session-cmd") != "" {
		appCfg.SessionCmd = ctx.String("session-cmd")
	}

	if ctx.Uint("target") > 0 {
		appCfg.KickTarget = int(ctx.Uint("target"))
	}

	if ctx.Uint("limit") > 0 {
		appCfg.ListLimit = int(ctx.Uint("limit"))
	}
}

// App initializes and returns the application configuration. The
// initialization is done just once no matter how many times it is called.
func App(ctx *cli.Context) *AppConfig {
	once.Do(func() {
		err := initAppConfig()
		if err != nil {
			pterm.Error.Printfln("%s: %s", errInitFailed.Error(), err.Error())
			os.Exit(1)
		}

		setAppConfig(ctx)
	})

	return appCfg
}
