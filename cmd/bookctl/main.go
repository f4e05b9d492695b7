package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/controller"
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	bookingStorage "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BeautyBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-BeautyBooking/internal/validation"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

const usage = `Usage:
  bookctl book    -center <slug> -service <id> -name <name> -email <email> -date YYYY-MM-DD -time HH:MM [-period AM|PM]
  bookctl list    [-center <id>]
  bookctl centers

Common flags:
  -server  booking API base URL (default http://localhost:3000, env BOOKING_API_URL)
  -store   local bookings file (default ~/.beauty-booking/bookings.json)
  -v       verbose logging
`

var errUsage = errors.New("bookctl: invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type commonFlags struct {
	server  string
	store   string
	verbose bool
}

func (c *commonFlags) register(fs *flag.FlagSet) {
	server := os.Getenv("BOOKING_API_URL")
	if server == "" {
		server = "http://localhost:3000"
	}
	fs.StringVar(&c.server, "server", server, "booking API base URL")
	fs.StringVar(&c.store, "store", defaultStorePath(), "local bookings file")
	fs.BoolVar(&c.verbose, "v", false, "verbose logging")
}

func (c *commonFlags) logger() (*logger.Logger, error) {
	if !c.verbose {
		return logger.NewNop(), nil
	}
	return logger.New("", "debug")
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cmd := "book"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "book":
		return runBook(ctx, args, out)
	case "list":
		return runList(ctx, args, out)
	case "centers":
		return runCenters(ctx, args, out)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func runBook(ctx context.Context, args []string, out io.Writer) error {
	var (
		common    commonFlags
		slug      string
		serviceID string
		form      domain.BookingFormData
		period    string
	)

	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	common.register(fs)
	fs.StringVar(&slug, "center", "", "center slug")
	fs.StringVar(&serviceID, "service", "", "service id")
	fs.StringVar(&form.ClientName, "name", "", "client name")
	fs.StringVar(&form.ClientEmail, "email", "", "client email")
	fs.StringVar(&form.Date, "date", "", "date YYYY-MM-DD")
	fs.StringVar(&form.Time, "time", "", "time HH:MM, or H:MM with -period")
	fs.StringVar(&period, "period", "", "AM or PM for 12-hour -time")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if slug == "" || serviceID == "" {
		return fmt.Errorf("%w: -center and -service are required", errUsage)
	}

	if period != "" {
		tm, err := parseTwelveHour(form.Time, period)
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		form.Time = tm
	}

	log, err := common.logger()
	if err != nil {
		return err
	}
	defer log.Close()

	client := bookingapi.NewClient(common.server, 10*time.Second, log)

	// 1. Центр и услуга
	loader := controller.NewCenterLoader(client, log)
	defer loader.Close()

	if err := loader.Load(ctx, slug); err != nil {
		return err
	}
	centerState := loader.State()
	if centerState.Status != domain.StatusSuccess {
		return errors.New(centerState.Error)
	}
	center := centerState.Center

	service, ok := center.FindService(serviceID)
	if !ok {
		return errors.New(domain.MsgServiceNotFound)
	}

	// 2. Проверка формы до отправки
	result := validation.New().Validate(form)
	if !result.IsValid {
		fmt.Fprintln(out, "Please fix the following:")
		for _, fe := range result.Errors {
			fmt.Fprintf(out, "  %s: %s\n", fe.Field, fe.Message)
		}
		return errors.New(domain.MsgValidationFailed)
	}

	// 3. Отправка
	store := bookingStorage.NewFileStore(common.store)
	ctrl := controller.NewBookingController(client, store, log,
		controller.WithBookingListener(func(s controller.BookingState) {
			if s.Status == domain.StatusLoading {
				fmt.Fprintln(out, "Submitting booking...")
			}
		}),
	)
	defer ctrl.Close()

	submitErr := ctrl.CreateBooking(ctx, service.ID, center.ID, form)

	state := ctrl.State()
	if state.Status != domain.StatusSuccess {
		if submitErr != nil {
			return submitErr
		}
		return errors.New(state.Error)
	}

	printConfirmation(out, center, service, state.Booking)

	if errors.Is(submitErr, controller.ErrPersist) {
		fmt.Fprintf(out, "warning: booking was not saved locally: %v\n", submitErr)
	}
	return nil
}

func runList(ctx context.Context, args []string, out io.Writer) error {
	var (
		common   commonFlags
		centerID string
	)

	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	common.register(fs)
	fs.StringVar(&centerID, "center", "", "center id filter")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	store := bookingStorage.NewFileStore(common.store)

	var (
		bookings []*domain.Booking
		err      error
	)
	if centerID != "" {
		bookings, err = store.ListByCenter(ctx, centerID)
	} else {
		bookings, err = store.List(ctx)
	}
	if err != nil {
		return err
	}

	if len(bookings) == 0 {
		fmt.Fprintln(out, "No bookings yet.")
		return nil
	}

	for _, b := range bookings {
		fmt.Fprintf(out, "%s  %s %s  %s <%s>  center=%s service=%s\n",
			b.ID, b.Date, displayTime(b.Time), b.ClientName, b.ClientEmail, b.CenterID, b.ServiceID)
	}
	return nil
}

func runCenters(ctx context.Context, args []string, out io.Writer) error {
	var common commonFlags

	fs := flag.NewFlagSet("centers", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	common.register(fs)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	log, err := common.logger()
	if err != nil {
		return err
	}
	defer log.Close()

	centers, err := bookingapi.NewClient(common.server, 10*time.Second, log).ListCenters(ctx)
	if err != nil {
		return errors.New(controller.FormatError(err))
	}

	for _, c := range centers {
		fmt.Fprintf(out, "%s (%s)\n", c.Name, c.Slug)
		for i := range c.Services {
			s := &c.Services[i]
			fmt.Fprintf(out, "  %-12s %-28s %-10s %s\n", s.ID, s.Name, s.FormatDuration(), s.FormatPrice())
		}
	}
	return nil
}

func printConfirmation(out io.Writer, center *domain.Center, service *domain.Service, b *domain.Booking) {
	fmt.Fprintln(out, "Booking confirmed!")
	fmt.Fprintf(out, "  Booking ID: %s\n", b.ID)
	fmt.Fprintf(out, "  Center:     %s\n", center.Name)
	fmt.Fprintf(out, "  Service:    %s (%s, %s)\n", service.Name, service.FormatDuration(), service.FormatPrice())
	fmt.Fprintf(out, "  When:       %s at %s\n", b.Date, displayTime(b.Time))
	fmt.Fprintf(out, "  Client:     %s <%s>\n", b.ClientName, b.ClientEmail)
}

func displayTime(tm string) string {
	formatted, err := types.TimeString(tm).To12Hour()
	if err != nil {
		return tm
	}
	return formatted
}

// parseTwelveHour "2:30" + "PM" -> "14:30"
func parseTwelveHour(tm, period string) (string, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(tm, "%d:%d", &hour, &minute); err != nil {
		return "", fmt.Errorf("invalid 12-hour time %q", tm)
	}
	ts, err := types.FromTwelveHour(hour, minute, strings.ToUpper(period))
	if err != nil {
		return "", err
	}
	return ts.String(), nil
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "bookings.json"
	}
	return filepath.Join(home, ".beauty-booking", "bookings.json")
}
