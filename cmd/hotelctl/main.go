package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	domainrepo "hotelier-service/internal/domain/repository"
	"hotelier-service/internal/infrastructure/config"
	"hotelier-service/internal/infrastructure/persistence"
	jsonrepo "hotelier-service/internal/interface/repository"
	"hotelier-service/internal/usecase"
	"hotelier-service/pkg/logger"
	"hotelier-service/pkg/metrics"
)

const usageText = `Usage: hotelctl <command> [flags]

Commands:
  reserve   create a reservation, prints the localizer
  checkin   register a guest arrival, prints the room key
  checkout  register a guest checkout
`

// guestArrivalInput mirrors the JSON document historically handed to the
// check-in desk: {"Localizer": "...", "IdCard": "..."}.
type guestArrivalInput struct {
	Localizer *string `json:"Localizer"`
	IDCard    *string `json:"IdCard"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	// Create logger
	log := logger.NewLogger("info")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}
	log = logger.NewLogger(cfg.LogLevel)

	ctx := context.Background()

	// Set up record stores
	reservations := jsonrepo.NewJSONReservationRepository(cfg.StorePath)
	stays := jsonrepo.NewJSONStayRepository(cfg.StorePath)
	checkouts := jsonrepo.NewJSONCheckoutRepository(cfg.StorePath)

	// Set up the audit trail when configured
	var audit domainrepo.AuditRepository
	if cfg.AuditDBPath != "" {
		db, err := persistence.OpenAuditDB(cfg.AuditDBPath)
		if err != nil {
			log.Fatal("Failed to open audit database", "path", cfg.AuditDBPath, "error", err)
		}
		audit, err = jsonrepo.NewGormAuditRepository(db)
		if err != nil {
			log.Fatal("Failed to migrate audit database", "error", err)
		}
	}

	m := metrics.NewMetrics("hotelier")
	manager := usecase.NewLifecycleManager(reservations, stays, checkouts, audit, m, log)

	switch os.Args[1] {
	case "reserve":
		runReserve(ctx, manager, os.Args[2:])
	case "checkin":
		runCheckin(ctx, manager, os.Args[2:])
	case "checkout":
		runCheckout(ctx, manager, os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usageText)
		os.Exit(2)
	}
}

func runReserve(ctx context.Context, manager *usecase.LifecycleManager, args []string) {
	fs := flag.NewFlagSet("reserve", flag.ExitOnError)
	req := usecase.CreateReservationRequest{}
	fs.StringVar(&req.IDCard, "id-card", "", "guest national id (8 digits + check letter)")
	fs.StringVar(&req.CreditCard, "credit-card", "", "credit card number (16 digits)")
	fs.StringVar(&req.NameSurname, "name", "", "guest name and surname")
	fs.StringVar(&req.Phone, "phone", "", "phone number (+ and 9 digits)")
	fs.StringVar(&req.RoomType, "room-type", "", "room type: SINGLE, DOUBLE or SUITE")
	fs.StringVar(&req.ArrivalDate, "arrival", "", "arrival date, DD/MM/YYYY")
	fs.StringVar(&req.NumDays, "days", "", "number of days, 1-10")
	fs.Parse(args)

	localizer, err := manager.CreateReservation(ctx, req)
	if err != nil {
		fail(err)
	}
	fmt.Println(localizer)
}

func runCheckin(ctx context.Context, manager *usecase.LifecycleManager, args []string) {
	fs := flag.NewFlagSet("checkin", flag.ExitOnError)
	var localizer, idCard, inputPath string
	fs.StringVar(&localizer, "localizer", "", "reservation localizer (32 hex digits)")
	fs.StringVar(&idCard, "id-card", "", "guest national id")
	fs.StringVar(&inputPath, "input", "", "JSON file with Localizer and IdCard keys")
	fs.Parse(args)

	if inputPath != "" {
		var err error
		localizer, idCard, err = readArrivalInput(inputPath)
		if err != nil {
			fail(err)
		}
	}

	roomKey, err := manager.GuestArrival(ctx, localizer, idCard)
	if err != nil {
		fail(err)
	}
	fmt.Println(roomKey)
}

func runCheckout(ctx context.Context, manager *usecase.LifecycleManager, args []string) {
	fs := flag.NewFlagSet("checkout", flag.ExitOnError)
	var roomKey string
	fs.StringVar(&roomKey, "room-key", "", "room key (64 hex digits)")
	fs.Parse(args)

	if err := manager.GuestCheckout(ctx, roomKey); err != nil {
		fail(err)
	}
	fmt.Println("checkout complete")
}

// readArrivalInput loads the localizer and id card from a guest arrival
// JSON document.
func readArrivalInput(path string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("input file not found: %w", err)
	}
	var input guestArrivalInput
	if err := json.Unmarshal(data, &input); err != nil {
		return "", "", fmt.Errorf("wrong input JSON format: %w", err)
	}
	if input.Localizer == nil || input.IDCard == nil {
		return "", "", fmt.Errorf("invalid key in input JSON")
	}
	return *input.Localizer, *input.IDCard, nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
