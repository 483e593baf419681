package split

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/roomsplit/internal/allocation"
	"github.com/KirkDiggler/roomsplit/internal/common/uuid"
	"github.com/KirkDiggler/roomsplit/internal/models"
	"github.com/KirkDiggler/roomsplit/internal/repositories/session"
	"github.com/shopspring/decimal"
)

// Config holds the configuration for the split service
type Config struct {
	// SessionRepository for room info, roster and currency lookups
	SessionRepository session.Repository

	// Calculator computes per-roommate shares
	Calculator *allocation.Calculator

	// UUIDGenerator generates split IDs
	UUIDGenerator uuid.UUID
}

type service struct {
	sessionRepo session.Repository
	calculator  *allocation.Calculator
	uuider      uuid.UUID
}

// New creates a new split service
func New(cfg *Config) (*service, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.SessionRepository == nil {
		return nil, errors.New("session repository cannot be nil")
	}

	if cfg.Calculator == nil {
		return nil, errors.New("calculator cannot be nil")
	}

	if cfg.UUIDGenerator == nil {
		return nil, errors.New("uuid generator cannot be nil")
	}

	return &service{
		sessionRepo: cfg.SessionRepository,
		calculator:  cfg.Calculator,
		uuider:      cfg.UUIDGenerator,
	}, nil
}

// HandleSplit parses a raw split request, resolves participant names,
// computes shares and returns a structured summary. Rendering is the
// transport layer's job.
func (s *service) HandleSplit(ctx context.Context, input *HandleSplitInput) (*HandleSplitOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	if len(input.Args) < 2 {
		return nil, ErrUsage
	}

	totalCost, err := decimal.NewFromString(input.Args[0])
	if err != nil {
		return nil, ErrParse
	}

	count, err := strconv.Atoi(input.Args[1])
	if err != nil || count < 1 {
		return nil, ErrParse
	}

	names, nights, err := splitNamesAndNights(input.Args[2:])
	if err != nil {
		return nil, err
	}

	resolvedNames, err := s.resolveNames(ctx, input.ChannelID, names, count)
	if err != nil {
		return nil, err
	}

	if len(nights) > 0 && len(nights) != count {
		return nil, ErrNightsCountMismatch
	}

	computed, err := s.calculator.ComputeShares(&allocation.ComputeSharesInput{
		TotalCost:        totalCost,
		ParticipantCount: count,
		Nights:           nights,
	})
	if err != nil {
		return nil, err
	}

	roomInfo, err := s.sessionRepo.GetRoomInfo(ctx, &session.GetRoomInfoInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		// Room info is an optional header on the summary
		if !errors.Is(err, session.ErrNotFound) {
			return nil, fmt.Errorf("failed to get room info: %w", err)
		}
		roomInfo = nil
	}

	currency, err := s.sessionRepo.GetCurrency(ctx, &session.GetCurrencyInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get currency: %w", err)
	}

	shares := make([]models.ShareLine, count)
	for i := range shares {
		shares[i] = models.ShareLine{
			Name:   resolvedNames[i],
			Amount: computed.Shares[i],
		}
		if computed.Policy == models.SplitPolicyNightsWeighted {
			shares[i].Nights = nights[i]
		}
	}

	return &HandleSplitOutput{
		Summary: &models.SplitSummary{
			SplitID:          s.uuider.NewUUID(),
			ChannelID:        input.ChannelID,
			Policy:           computed.Policy,
			TotalCost:        totalCost,
			TotalNights:      computed.TotalNights,
			ParticipantCount: count,
			Currency:         currency,
			RoomInfo:         roomInfo,
			Shares:           shares,
		},
	}, nil
}

// SetCurrency stores the channel's currency symbol
func (s *service) SetCurrency(ctx context.Context, input *SetCurrencyInput) (*SetCurrencyOutput, error) {
	if input == nil || input.ChannelID == "" || input.Symbol == "" {
		return nil, errors.New("input, channel ID and symbol cannot be empty")
	}

	if err := s.sessionRepo.SetCurrency(ctx, &session.SetCurrencyInput{
		ChannelID: input.ChannelID,
		Symbol:    input.Symbol,
	}); err != nil {
		return nil, fmt.Errorf("failed to set currency: %w", err)
	}

	return &SetCurrencyOutput{Symbol: input.Symbol}, nil
}

// GetCurrency retrieves the channel's currency symbol
func (s *service) GetCurrency(ctx context.Context, input *GetCurrencyInput) (*GetCurrencyOutput, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	symbol, err := s.sessionRepo.GetCurrency(ctx, &session.GetCurrencyInput{
		ChannelID: input.ChannelID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get currency: %w", err)
	}

	return &GetCurrencyOutput{Symbol: symbol}, nil
}

// resolveNames picks participant names by precedence: explicit names,
// then the stored roster, then numbered placeholders
func (s *service) resolveNames(ctx context.Context, channelID string, names []string, count int) ([]string, error) {
	if len(names) > 0 {
		if len(names) != count {
			return nil, ErrNameCountMismatch
		}
		return names, nil
	}

	roster, err := s.sessionRepo.GetRoster(ctx, &session.GetRosterInput{
		ChannelID: channelID,
	})
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			placeholders := make([]string, count)
			for i := range placeholders {
				placeholders[i] = fmt.Sprintf("Person %d", i+1)
			}
			return placeholders, nil
		}
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	if len(roster) != count {
		return nil, ErrRosterMismatch
	}

	return roster, nil
}

// splitNamesAndNights separates trailing arguments into names and
// nights. Everything before the first purely-numeric token is a name;
// that token and everything after it are nights.
func splitNamesAndNights(args []string) ([]string, []int, error) {
	names := make([]string, 0, len(args))
	nights := make([]int, 0, len(args))

	inNights := false
	for _, arg := range args {
		if !inNights && isNumeric(arg) {
			inNights = true
		}

		if inNights {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return nil, nil, ErrParse
			}
			nights = append(nights, n)
		} else {
			names = append(names, arg)
		}
	}

	return names, nights, nil
}

// isNumeric reports whether s is non-empty and consists only of digits
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
