package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	checkAvailabilityHandler "github.com/m04kA/SMC-SeatingService/internal/api/handlers/check_availability"
	"github.com/m04kA/SMC-SeatingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SeatingService/internal/infra/storage/booking"
	checkAvailabilityUC "github.com/m04kA/SMC-SeatingService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-SeatingService/pkg/types"
)

const checkTimeout = 10 * time.Second

type checkOptions struct {
	date      string
	time      string
	partySize int
}

// NewCheckCmd разовая проверка мест без запуска сервера
func NewCheckCmd(configPath *string) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:     "check",
		Short:   "Check seat availability for a party",
		Example: "  seating check --date 2024-12-31 --time 20:30 --party-size 4",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := opts.request()
			if err != nil {
				return err
			}

			a, err := openApp(*configPath, false)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
			defer cancel()

			uc := checkAvailabilityUC.NewUseCase(bookingRepo.NewRepository(a.db), nil, a.log)
			resp, err := uc.Execute(ctx, req)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(checkAvailabilityHandler.FromUseCaseResponse(resp, a.cfg.Seating.ContactPhone))
		},
	}

	cmd.Flags().StringVar(&opts.date, "date", "", "date in YYYY-MM-DD format")
	cmd.Flags().StringVar(&opts.time, "time", "", "requested start time in HH:MM format")
	cmd.Flags().IntVar(&opts.partySize, "party-size", 1, "number of guests")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}

func (o *checkOptions) request() (*checkAvailabilityUC.Request, error) {
	date, err := time.Parse(domain.DateFormat, o.date)
	if err != nil {
		return nil, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", o.date)
	}
	requested, err := types.NewTimeStringFromString(o.time)
	if err != nil {
		return nil, fmt.Errorf("invalid --time %q: expected HH:MM", o.time)
	}
	return &checkAvailabilityUC.Request{
		PartySize:     o.partySize,
		Date:          date,
		RequestedTime: requested,
	}, nil
}
