package allocation

import (
	"errors"

	"github.com/KirkDiggler/roomsplit/internal/models"
	"github.com/shopspring/decimal"
)

// Define errors
var (
	ErrInvalidTotalCost        = errors.New("total cost must be greater than zero")
	ErrInvalidParticipantCount = errors.New("participant count must be at least one")
	ErrNightsMismatch          = errors.New("nights count must match participant count")
	ErrNegativeNights          = errors.New("nights stayed cannot be negative")
	ErrZeroTotalNights         = errors.New("total nights must be greater than zero")
)

// Calculator computes per-roommate cost shares
type Calculator struct{}

// Config holds configuration for the calculator
type Config struct{}

// New creates a new allocation calculator
func New(cfg *Config) *Calculator {
	return &Calculator{}
}

// ComputeSharesInput contains parameters for computing shares
type ComputeSharesInput struct {
	// TotalCost is the total cost to split
	TotalCost decimal.Decimal

	// ParticipantCount is the number of roommates
	ParticipantCount int

	// Nights holds each roommate's nights stayed. Empty means an equal
	// split; otherwise its length must equal ParticipantCount.
	Nights []int
}

// ComputeSharesOutput contains the result of computing shares
type ComputeSharesOutput struct {
	// Policy is the allocation policy that was applied
	Policy models.SplitPolicy

	// Shares contains one share per roommate, in input order. Amounts
	// are kept at full decimal precision; rounding to 2 places is a
	// render-time concern.
	Shares []decimal.Decimal

	// TotalNights is the sum of all nights (weighted policy only)
	TotalNights int
}

// ComputeShares allocates a total cost across roommates, equally or
// weighted by nights stayed. The sum of the returned shares equals the
// total cost up to decimal division precision.
func (c *Calculator) ComputeShares(input *ComputeSharesInput) (*ComputeSharesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.TotalCost.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidTotalCost
	}

	if input.ParticipantCount < 1 {
		return nil, ErrInvalidParticipantCount
	}

	// Equal split when no nights were supplied
	if len(input.Nights) == 0 {
		share := input.TotalCost.Div(decimal.NewFromInt(int64(input.ParticipantCount)))

		shares := make([]decimal.Decimal, input.ParticipantCount)
		for i := range shares {
			shares[i] = share
		}

		return &ComputeSharesOutput{
			Policy: models.SplitPolicyEqual,
			Shares: shares,
		}, nil
	}

	if len(input.Nights) != input.ParticipantCount {
		return nil, ErrNightsMismatch
	}

	totalNights := 0
	for _, n := range input.Nights {
		if n < 0 {
			return nil, ErrNegativeNights
		}
		totalNights += n
	}

	// Zero total nights is an error, never a silent equal split
	if totalNights == 0 {
		return nil, ErrZeroTotalNights
	}

	totalNightsDec := decimal.NewFromInt(int64(totalNights))
	shares := make([]decimal.Decimal, input.ParticipantCount)
	for i, n := range input.Nights {
		shares[i] = input.TotalCost.Mul(decimal.NewFromInt(int64(n))).Div(totalNightsDec)
	}

	return &ComputeSharesOutput{
		Policy:      models.SplitPolicyNightsWeighted,
		Shares:      shares,
		TotalNights: totalNights,
	}, nil
}
