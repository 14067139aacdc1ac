package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SBN-BookingService/internal/config"
	"github.com/m04kA/SBN-BookingService/internal/domain"
	"github.com/m04kA/SBN-BookingService/internal/integrations/bookingapi"
	"github.com/m04kA/SBN-BookingService/internal/pricing"
	"github.com/m04kA/SBN-BookingService/internal/wizard"
	"github.com/m04kA/SBN-BookingService/pkg/logger"
	"github.com/m04kA/SBN-BookingService/pkg/ptr"
)

const usage = `Usage: booking-cli [flags] <command>

Commands:
  book        interactive booking wizard, submits to the API
  list        list all bookings
  get <id>    show one booking
  promo <code> check a promo code

Flags:
`

func main() {
	configPath := flag.String("config", "config.toml", "path to config.toml")
	apiURL := flag.String("api", "", "booking API base URL (overrides booking_api.url)")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *apiURL != "" {
		cfg.BookingAPI.URL = *apiURL
	}

	log, err := logger.New(cfg.Logs.File, "warn")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	client := bookingapi.NewClient(cfg.BookingAPI.URL, time.Duration(cfg.BookingAPI.Timeout)*time.Second, log)
	ctx := context.Background()
	args := flag.Args()

	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	switch args[0] {
	case "book":
		err = runWizard(ctx, os.Stdin, os.Stdout, cfg, client)
	case "list":
		err = listBookings(ctx, os.Stdout, client)
	case "get":
		if len(args) < 2 {
			flag.Usage()
			os.Exit(2)
		}
		err = showBooking(ctx, os.Stdout, client, args[1])
	case "promo":
		if len(args) < 2 {
			flag.Usage()
			os.Exit(2)
		}
		err = checkPromo(ctx, os.Stdout, client, args[1])
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runWizard проходит шаги мастера локально и отправляет черновик через API
func runWizard(ctx context.Context, in io.Reader, out io.Writer, cfg *config.Config, gateway wizard.Gateway) error {
	p := &prompter{scanner: bufio.NewScanner(in), out: out}
	addOns := cfg.AddOnCatalog()
	m := wizard.NewMachine(pricing.NewEngine(cfg.PricingTables()), addOns, &wizard.RealTimeProvider{})

	for m.Current() != wizard.StepSubmitted {
		fmt.Fprintf(out, "\n== Étape %d : %s ==\n", int(m.Current()), m.Current())

		var err error
		switch m.Current() {
		case wizard.StepServiceType:
			err = m.Advance(&wizard.ServiceTypeInput{
				ServiceType: domain.ServiceType(p.ask("Type de local (bureau/commerce/industriel)")),
			})
		case wizard.StepDetails:
			surface, _ := strconv.ParseFloat(p.ask("Surface (m²)"), 64)
			err = m.Advance(&wizard.DetailsInput{
				Surface:            surface,
				Frequency:          domain.Frequency(p.ask("Fréquence (unique/hebdomadaire/bihebdomadaire/mensuel)")),
				AdditionalServices: splitList(p.ask("Options (" + addOnIDs(addOns) + ", séparées par des virgules)")),
			})
		case wizard.StepSchedule:
			date, _ := time.Parse(domain.DateFormat, p.ask("Date (AAAA-MM-JJ)"))
			err = m.Advance(&wizard.ScheduleInput{
				Date:     date,
				TimeSlot: p.ask("Créneau (" + slotValues(domain.TimeSlots) + ")"),
			})
		case wizard.StepContact:
			_, err = m.Submit(ctx, gateway, &wizard.ContactInput{
				CompanyName:         p.ask("Entreprise"),
				ContactName:         p.ask("Nom du contact"),
				Email:               p.ask("Email"),
				Phone:               p.ask("Téléphone"),
				SpecialInstructions: optional(p.ask("Instructions (optionnel)")),
				AccessCode:          optional(p.ask("Code d'accès (optionnel)")),
			})
		}

		if p.eof {
			return io.ErrUnexpectedEOF
		}
		if err != nil {
			if ve, ok := wizard.IsValidationError(err); ok {
				printFieldErrors(out, ve.Fields)
				continue
			}
			if errors.Is(err, wizard.ErrSubmission) {
				fmt.Fprintf(out, "  ! Envoi impossible : %v\n", err)
				continue
			}
			return err
		}

		if estimate, ok := m.Estimate(); ok {
			fmt.Fprintf(out, "Prix estimé : %.2f €\n", estimate.TotalPrice)
		}
	}

	b := m.Booking()
	fmt.Fprintf(out, "\nRéservation envoyée : %s (%s)\n", b.ID, b.Status)
	return nil
}

func listBookings(ctx context.Context, out io.Writer, client *bookingapi.Client) error {
	bookings, err := client.ListBookings(ctx)
	if err != nil {
		return err
	}
	for _, b := range bookings {
		printBooking(out, b)
	}
	fmt.Fprintf(out, "%d réservation(s)\n", len(bookings))
	return nil
}

func showBooking(ctx context.Context, out io.Writer, client *bookingapi.Client, id string) error {
	b, err := client.GetBooking(ctx, id)
	if err != nil {
		return err
	}
	printBooking(out, b)
	return nil
}

func checkPromo(ctx context.Context, out io.Writer, client *bookingapi.Client, code string) error {
	res, err := client.ValidatePromo(ctx, code)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, res.Message)
	return nil
}

func printBooking(out io.Writer, b *domain.Booking) {
	fmt.Fprintf(out, "%s  %s %s  %s  %-10s %.0f m²  %.2f €  [%s]\n",
		b.ID, b.Date.Format(domain.DateFormat), b.TimeSlot, b.CompanyName, b.ServiceType, b.Surface, b.EstimatedPrice, b.Status)
}

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	eof     bool
}

func (p *prompter) ask(label string) string {
	fmt.Fprintf(p.out, "%s : ", label)
	if !p.scanner.Scan() {
		p.eof = true
		return ""
	}
	return strings.TrimSpace(p.scanner.Text())
}

func splitList(value string) []string {
	var items []string
	for _, s := range strings.Split(value, ",") {
		if s = strings.TrimSpace(s); s != "" {
			items = append(items, s)
		}
	}
	return items
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return ptr.Ptr(value)
}

func slotValues(slots []domain.TimeSlot) string {
	values := make([]string, 0, len(slots))
	for _, s := range slots {
		values = append(values, s.Value)
	}
	return strings.Join(values, ", ")
}

// printFieldErrors выводит ошибки полей в алфавитном порядке
func printFieldErrors(out io.Writer, fields map[string]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(out, "  ! %s : %s\n", name, fields[name])
	}
}

func addOnIDs(addOns []domain.AddOn) string {
	ids := make([]string, 0, len(addOns))
	for _, a := range addOns {
		ids = append(ids, a.ID)
	}
	return strings.Join(ids, "/")
}
