package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/term"

	"github.com/vaughan-dsouza/bistro/internal/client"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "menu":
		err = commandMenu(args)
	case "signup":
		err = commandSignup(args)
	case "login":
		err = commandLogin(args)
	case "logout":
		err = commandLogout()
	case "whoami":
		err = commandWhoami()
	case "reserve":
		err = commandReserve(args)
	case "reservations":
		err = commandReservations(args)
	case "add-item":
		err = commandAddItem(args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the App from the --api flag, falling back to RESTAURANT_API.
func newApp(apiBase string) (*client.App, error) {
	if strings.TrimSpace(apiBase) == "" {
		apiBase = os.Getenv("RESTAURANT_API")
	}
	api, err := client.New(apiBase)
	if err != nil {
		return nil, err
	}
	path, err := client.DefaultSessionPath()
	if err != nil {
		return nil, fmt.Errorf("locate session file: %w", err)
	}
	return client.NewApp(api, client.NewFileStore(path)), nil
}

func apiFlag(fs *flag.FlagSet) *string {
	return fs.String("api", "", "API base URL (default "+client.DefaultBaseURL+")")
}

func timeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 15*time.Second)
}

func commandMenu(args []string) error {
	fs := flag.NewFlagSet("menu", flag.ExitOnError)
	apiBase := apiFlag(fs)
	fs.Parse(args)

	app, err := newApp(*apiBase)
	if err != nil {
		return err
	}
	ctx, cancel := timeout()
	defer cancel()

	items, err := app.Menu(ctx)
	if err != nil {
		return fmt.Errorf("failed to load menu items: %w", err)
	}
	return client.RenderMenu(os.Stdout, items)
}

func commandSignup(args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	name := fs.String("name", "", "Full name")
	email := fs.String("email", "", "Email address")
	password := fs.String("password", "", "Password (supply to avoid prompt)")
	apiBase := apiFlag(fs)
	fs.Parse(args)

	if strings.TrimSpace(*name) == "" || strings.TrimSpace(*email) == "" {
		return errors.New("--name and --email are required")
	}
	secret, err := readPassword(*password)
	if err != nil {
		return err
	}

	app, err := newApp(*apiBase)
	if err != nil {
		return err
	}
	ctx, cancel := timeout()
	defer cancel()

	s, err := app.Signup(ctx, *name, *email, secret)
	if err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}
	fmt.Printf("Welcome, %s\n", s.User.Name)
	return nil
}

func commandLogin(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "Email address")
	password := fs.String("password", "", "Password (supply to avoid prompt)")
	apiBase := apiFlag(fs)
	fs.Parse(args)

	if strings.TrimSpace(*email) == "" {
		return errors.New("--email is required")
	}
	secret, err := readPassword(*password)
	if err != nil {
		return err
	}

	app, err := newApp(*apiBase)
	if err != nil {
		return err
	}
	ctx, cancel := timeout()
	defer cancel()

	s, err := app.Login(ctx, *email, secret)
	if err != nil {
		return fmt.Errorf("login failed, please check your credentials: %w", err)
	}
	fmt.Printf("Welcome, %s\n", s.User.Name)
	return nil
}

func commandLogout() error {
	app, err := newApp("")
	if err != nil {
		return err
	}
	if _, err := app.Logout(); err != nil {
		return err
	}
	fmt.Println("logged out")
	return nil
}

func commandWhoami() error {
	app, err := newApp("")
	if err != nil {
		return err
	}
	s, err := app.Init()
	if err != nil {
		return err
	}
	if !s.LoggedIn() {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Printf("%s <%s>\n", s.User.Name, s.User.Email)
	return nil
}

func commandReserve(args []string) error {
	fs := flag.NewFlagSet("reserve", flag.ExitOnError)
	name := fs.String("name", "", "Booking name (defaults to the logged-in user)")
	email := fs.String("email", "", "Contact email (defaults to the logged-in user)")
	date := fs.String("date", "", "Date, YYYY-MM-DD")
	at := fs.String("time", "", "Time, HH:MM")
	party := fs.Int("party", 2, "Party size")
	apiBase := apiFlag(fs)
	fs.Parse(args)

	app, err := newApp(*apiBase)
	if err != nil {
		return err
	}
	s, err := app.Init()
	if err != nil {
		return err
	}
	if *name == "" {
		*name = s.User.Name
	}
	if *email == "" {
		*email = s.User.Email
	}

	ctx, cancel := timeout()
	defer cancel()

	res, err := app.Reserve(ctx, s, client.NewReservation{
		CustomerName: *name,
		Email:        *email,
		Date:         *date,
		Time:         *at,
		PartySize:    *party,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Reservation submitted successfully! (#%d on %s at %s)\n", res.ID, res.Date, res.Time)
	return nil
}

func commandReservations(args []string) error {
	fs := flag.NewFlagSet("reservations", flag.ExitOnError)
	apiBase := apiFlag(fs)
	fs.Parse(args)

	app, err := newApp(*apiBase)
	if err != nil {
		return err
	}
	s, err := app.Init()
	if err != nil {
		return err
	}
	if !s.LoggedIn() {
		return errors.New("please login to view your reservations")
	}

	ctx, cancel := timeout()
	defer cancel()

	list, err := app.MyReservations(ctx, s)
	if err != nil {
		return fmt.Errorf("failed to fetch reservations: %w", err)
	}
	return client.RenderReservations(os.Stdout, list)
}

func commandAddItem(args []string) error {
	fs := flag.NewFlagSet("add-item", flag.ExitOnError)
	name := fs.String("name", "", "Item name")
	description := fs.String("description", "", "Item description")
	price := fs.String("price", "", "Price, e.g. 12.50")
	category := fs.String("category", "", "Category")
	apiBase := apiFlag(fs)
	fs.Parse(args)

	amount, err := decimal.NewFromString(strings.TrimSpace(*price))
	if err != nil {
		return fmt.Errorf("invalid --price: %w", err)
	}

	app, err := newApp(*apiBase)
	if err != nil {
		return err
	}
	s, err := app.Init()
	if err != nil {
		return err
	}

	ctx, cancel := timeout()
	defer cancel()

	item, err := app.AddMenuItem(ctx, s, client.NewMenuItem{
		Name:        *name,
		Description: *description,
		Price:       amount,
		Category:    *category,
	})
	if err != nil {
		return err
	}
	fmt.Printf("added %s ($%s)\n", item.Name, item.Price.StringFixed(2))
	return nil
}

func readPassword(flagValue string) (string, error) {
	if secret := strings.TrimSpace(flagValue); secret != "" {
		return secret, nil
	}
	fmt.Print("Password: ")
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Print("\n")
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(b), nil
}

func printUsage() {
	fmt.Println(`restaurant - command line client for the restaurant API

Usage:
  restaurant menu
  restaurant signup --name NAME --email EMAIL [--password PW]
  restaurant login --email EMAIL [--password PW]
  restaurant logout
  restaurant whoami
  restaurant reserve --date YYYY-MM-DD --time HH:MM [--party N] [--name NAME] [--email EMAIL]
  restaurant reservations
  restaurant add-item --name NAME --description TEXT --price 12.50 --category CAT

Every command accepts --api URL (or RESTAURANT_API).`)
}
