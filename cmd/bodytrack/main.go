package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/popo0015/body-tracker/internal/domain"
	"github.com/popo0015/body-tracker/internal/journal"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(1)
	}

	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	home, err := ResolveHome()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := &app{apiURL: apiURL, home: home, out: os.Stdout, loc: time.Local}
	if err := a.run(os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	apiURL string
	home   *Home
	out    io.Writer
	// loc decides which day a meal or workout is filed under in the journal.
	loc    *time.Location
}

func (a *app) run(command string, args []string) error {
	switch command {
	case "signup":
		return a.signupCmd(args)
	case "login":
		return a.loginCmd(args)
	case "logout":
		return a.logoutCmd()
	case "measure":
		return a.measureCmd(args)
	case "meal":
		return a.mealCmd(args)
	case "workout":
		return a.workoutCmd(args)
	case "today":
		return a.todayCmd()
	case "history":
		return a.historyCmd(args)
	case "sync":
		return a.syncCmd(args)
	case "journal":
		return a.journalCmd()
	case "help", "-h", "--help":
		printUsage(a.out)
		return nil
	default:
		printUsage(a.out)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `bodytrack - record body measurements, meals and workouts

USAGE:
  bodytrack <command> [options]

COMMANDS:
  signup    Create an account (--email, --password)
  login     Open a session (--email, --password)
  logout    Close the current session
  measure   Record the day's measurements (--date, --weight, --waist, ...)
  meal      Log a meal (--date, --item product:grams:kcal, repeatable)
  workout   Log a workout (--date, --exercise name:sets:reps:weight, repeatable)
  today     Show today's entries
  history   Show recent entries (--days)
  sync      Copy recent entries into the local journal (--days)
  journal   Show the local journal
  help      Show this help message

ENVIRONMENT:
  API_URL         Server URL (default: http://localhost:8080)
  BODYTRACK_HOME  State directory (default: ~/.bodytrack)

EXAMPLES:
  bodytrack measure --date=2025-06-28 --weight=61.8 --waist=70
  bodytrack meal --item=oats:80:300 --item=milk:200:120
  bodytrack workout --exercise=squat:5:5:80`)
}

func (a *app) client() (*APIClient, error) {
	token, err := a.home.Token()
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	return NewAPIClient(a.apiURL, token), nil
}

func (a *app) signupCmd(args []string) error {
	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := a.client()
	if err != nil {
		return err
	}
	if err := client.Signup(*email, *password); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account created for %s. Run 'bodytrack login' to start a session.\n", *email)
	return nil
}

func (a *app) loginCmd(args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "Account email")
	password := fs.String("password", "", "Account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := a.client()
	if err != nil {
		return err
	}
	if err := client.Login(*email, *password); err != nil {
		return err
	}
	if err := a.home.SaveToken(client.Token()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", *email)
	return nil
}

// logoutCmd forgets the local token even when the server call fails.
func (a *app) logoutCmd() error {
	client, err := a.client()
	if err != nil {
		return err
	}

	var serverErr error
	if client.Token() != "" {
		serverErr = client.Logout()
	}
	if err := a.home.ClearToken(); err != nil {
		return err
	}
	if serverErr != nil {
		return serverErr
	}

	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *app) measureCmd(args []string) error {
	fs := flag.NewFlagSet("measure", flag.ContinueOnError)
	date := fs.String("date", today(), "Day of the measurement (YYYY-MM-DD)")
	var waist, hips, thigh, arm, chest, underNavel, weight floatFlag
	fs.Var(&waist, "waist", "Waist (cm)")
	fs.Var(&hips, "hips", "Hips (cm)")
	fs.Var(&thigh, "thigh", "Thigh (cm)")
	fs.Var(&arm, "arm", "Arm (cm)")
	fs.Var(&chest, "chest", "Chest (cm)")
	fs.Var(&underNavel, "under-navel", "Under navel (cm)")
	fs.Var(&weight, "weight", "Weight (kg)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := a.client()
	if err != nil {
		return err
	}
	m, err := client.SaveMeasurement(MeasurementInput{
		Date:       *date,
		Waist:      waist.value,
		Hips:       hips.value,
		Thigh:      thigh.value,
		Arm:        arm.value,
		Chest:      chest.value,
		UnderNavel: underNavel.value,
		Weight:     weight.value,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Saved measurement for %s\n", m.Date.UTC().Format(domain.DateLayout))
	return nil
}

func (a *app) mealCmd(args []string) error {
	fs := flag.NewFlagSet("meal", flag.ContinueOnError)
	date := fs.String("date", time.Now().UTC().Format(time.RFC3339), "When the meal was eaten (YYYY-MM-DD or RFC 3339)")
	var rawItems listFlag
	fs.Var(&rawItems, "item", "Meal item as product:grams:kcal (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items := make([]domain.MealItem, 0, len(rawItems))
	for _, raw := range rawItems {
		item, err := parseMealItem(raw)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	client, err := a.client()
	if err != nil {
		return err
	}
	meal, err := client.AddMeal(*date, items)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged meal %s (%d items, %.0f kcal)\n", meal.ID, len(meal.Items), meal.TotalKcal())
	return nil
}

func (a *app) workoutCmd(args []string) error {
	fs := flag.NewFlagSet("workout", flag.ContinueOnError)
	date := fs.String("date", time.Now().UTC().Format(time.RFC3339), "When the workout happened (YYYY-MM-DD or RFC 3339)")
	var rawExercises listFlag
	fs.Var(&rawExercises, "exercise", "Exercise as name:sets:reps:weight (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	exercises := make([]domain.ExerciseSet, 0, len(rawExercises))
	for _, raw := range rawExercises {
		ex, err := parseExercise(raw)
		if err != nil {
			return err
		}
		exercises = append(exercises, ex)
	}

	client, err := a.client()
	if err != nil {
		return err
	}
	workout, err := client.AddWorkout(*date, exercises)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged workout %s (%d exercises)\n", workout.ID, len(workout.Exercises))
	return nil
}

func (a *app) todayCmd() error {
	client, err := a.client()
	if err != nil {
		return err
	}
	summary, err := client.Today()
	if err != nil {
		return err
	}

	printEntries(a.out, journal.FromSummary(summary, a.loc))
	return nil
}

func (a *app) historyCmd(args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	days := fs.Int("days", 0, "Days to look back (default: server setting)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := a.client()
	if err != nil {
		return err
	}
	summary, err := client.History(*days)
	if err != nil {
		return err
	}

	printEntries(a.out, journal.FromSummary(summary, a.loc))
	return nil
}

// syncCmd pulls the server's history into the local journal, one day at a time.
func (a *app) syncCmd(args []string) error {
	fs := flag.NewFlagSet("sync", flag.ContinueOnError)
	days := fs.Int("days", 0, "Days to look back (default: server setting)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := a.client()
	if err != nil {
		return err
	}
	summary, err := client.History(*days)
	if err != nil {
		return err
	}

	store := a.home.Journal()
	ctx := context.Background()
	entries := journal.FromSummary(summary, a.loc)
	for _, e := range entries {
		if err := store.Upsert(ctx, e); err != nil {
			return fmt.Errorf("update journal: %w", err)
		}
	}

	fmt.Fprintf(a.out, "Synced %d days into %s\n", len(entries), store.Path())
	return nil
}

func (a *app) journalCmd() error {
	entries, err := a.home.Journal().Load(context.Background())
	if err != nil {
		return err
	}
	printEntries(a.out, entries)
	return nil
}

func printEntries(w io.Writer, entries []journal.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s", e.Date)
		if m := e.Measurement; m != nil && m.Weight != nil {
			fmt.Fprintf(w, "  weight %.1f", *m.Weight)
		}
		if len(e.Meals) > 0 {
			fmt.Fprintf(w, "  meals %d (%.0f kcal)", len(e.Meals), e.TotalKcal())
		}
		if len(e.Workouts) > 0 {
			fmt.Fprintf(w, "  workouts %d", len(e.Workouts))
		}
		fmt.Fprintln(w)
	}
}

func today() string {
	return time.Now().Format(domain.DateLayout)
}
