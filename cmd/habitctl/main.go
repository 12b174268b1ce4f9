package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/Dias221467/HealthHabit/internal/cli"
	"github.com/Dias221467/HealthHabit/internal/client"
)

var CLI struct {
	Version kong.VersionFlag
	API     string `help:"Base URL of the habit server." env:"API_URL" default:"http://localhost:8000"`

	List     cli.HabitListCmd     `cmd:"" help:"List habits." default:"1"`
	Add      cli.HabitAddCmd      `cmd:"" help:"Add a new habit."`
	Show     cli.HabitShowCmd     `cmd:"" help:"Show a habit."`
	Update   cli.HabitUpdateCmd   `cmd:"" help:"Change fields of a habit."`
	Delete   cli.HabitDeleteCmd   `cmd:"" help:"Delete a habit."`
	Complete cli.HabitCompleteCmd `cmd:"" help:"Mark a habit as done."`
	Stats    cli.HabitStatsCmd    `cmd:"" help:"Show streak and completion stats."`

	Ask       cli.AskCmd       `cmd:"" help:"Call an agent route with a JSON body."`
	Motivate  cli.MotivateCmd  `cmd:"" help:"Get encouragement based on your habits."`
	Celebrate cli.CelebrateCmd `cmd:"" help:"Celebrate an achievement."`
}

func main() {
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("habitctl"),
		kong.Description("Command line client for the health habit tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": "v0.1.0"},
	)

	appCtx := &cli.Context{
		Ctx:    context.Background(),
		Client: client.New(CLI.API),
		Out:    os.Stdout,
		Now:    time.Now,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
