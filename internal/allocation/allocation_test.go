package allocation

import (
	"testing"

	"github.com/KirkDiggler/roomsplit/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sumWithinTolerance asserts that the shares sum back to the total
// within an absolute tolerance of 0.01.
func sumWithinTolerance(t *testing.T, total decimal.Decimal, shares []decimal.Decimal) {
	t.Helper()

	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(s)
	}

	diff := sum.Sub(total).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.01)),
		"sum %s differs from total %s by %s", sum, total, diff)
}

func TestComputeShares_EqualSplit(t *testing.T) {
	calc := New(&Config{})

	output, err := calc.ComputeShares(&ComputeSharesInput{
		TotalCost:        decimal.NewFromInt(300),
		ParticipantCount: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, models.SplitPolicyEqual, output.Policy)
	require.Len(t, output.Shares, 3)

	for _, share := range output.Shares {
		assert.True(t, share.Equal(decimal.NewFromInt(100)),
			"expected 100, got %s", share)
	}

	sumWithinTolerance(t, decimal.NewFromInt(300), output.Shares)
}

func TestComputeShares_EqualSplitUnevenTotal(t *testing.T) {
	calc := New(&Config{})

	output, err := calc.ComputeShares(&ComputeSharesInput{
		TotalCost:        decimal.NewFromInt(100),
		ParticipantCount: 3,
	})
	require.NoError(t, err)
	require.Len(t, output.Shares, 3)

	// All shares equal each other
	assert.True(t, output.Shares[0].Equal(output.Shares[1]))
	assert.True(t, output.Shares[1].Equal(output.Shares[2]))

	sumWithinTolerance(t, decimal.NewFromInt(100), output.Shares)
}

func TestComputeShares_SingleParticipant(t *testing.T) {
	calc := New(&Config{})

	output, err := calc.ComputeShares(&ComputeSharesInput{
		TotalCost:        decimal.NewFromFloat(99.99),
		ParticipantCount: 1,
	})
	require.NoError(t, err)
	require.Len(t, output.Shares, 1)
	assert.True(t, output.Shares[0].Equal(decimal.NewFromFloat(99.99)))
}

func TestComputeShares_NightsWeighted(t *testing.T) {
	calc := New(&Config{})

	output, err := calc.ComputeShares(&ComputeSharesInput{
		TotalCost:        decimal.NewFromInt(300),
		ParticipantCount: 2,
		Nights:           []int{1, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, models.SplitPolicyNightsWeighted, output.Policy)
	assert.Equal(t, 3, output.TotalNights)
	require.Len(t, output.Shares, 2)

	assert.True(t, output.Shares[0].Equal(decimal.NewFromInt(100)),
		"expected 100, got %s", output.Shares[0])
	assert.True(t, output.Shares[1].Equal(decimal.NewFromInt(200)),
		"expected 200, got %s", output.Shares[1])

	sumWithinTolerance(t, decimal.NewFromInt(300), output.Shares)
}

func TestComputeShares_NightsWeightedProportionality(t *testing.T) {
	calc := New(&Config{})

	nights := []int{3, 5, 2, 7}
	output, err := calc.ComputeShares(&ComputeSharesInput{
		TotalCost:        decimal.NewFromFloat(512.37),
		ParticipantCount: 4,
		Nights:           nights,
	})
	require.NoError(t, err)
	require.Len(t, output.Shares, 4)

	sumWithinTolerance(t, decimal.NewFromFloat(512.37), output.Shares)

	// share_i / share_j == nights_i / nights_j for all pairs
	for i := range nights {
		for j := range nights {
			if nights[j] == 0 {
				continue
			}
			ratio := output.Shares[i].Div(output.Shares[j])
			expected := decimal.NewFromInt(int64(nights[i])).Div(decimal.NewFromInt(int64(nights[j])))
			diff := ratio.Sub(expected).Abs()
			assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.0001)),
				"ratio %d/%d was %s, expected %s", i, j, ratio, expected)
		}
	}
}

func TestComputeShares_ZeroNightsParticipant(t *testing.T) {
	calc := New(&Config{})

	output, err := calc.ComputeShares(&ComputeSharesInput{
		TotalCost:        decimal.NewFromInt(200),
		ParticipantCount: 2,
		Nights:           []int{0, 4},
	})
	require.NoError(t, err)
	require.Len(t, output.Shares, 2)

	assert.True(t, output.Shares[0].IsZero())
	assert.True(t, output.Shares[1].Equal(decimal.NewFromInt(200)))
}

func TestComputeShares_Errors(t *testing.T) {
	calc := New(&Config{})

	tests := []struct {
		name        string
		input       *ComputeSharesInput
		expectedErr error
	}{
		{
			name: "zero total cost",
			input: &ComputeSharesInput{
				TotalCost:        decimal.Zero,
				ParticipantCount: 2,
			},
			expectedErr: ErrInvalidTotalCost,
		},
		{
			name: "negative total cost",
			input: &ComputeSharesInput{
				TotalCost:        decimal.NewFromInt(-10),
				ParticipantCount: 2,
			},
			expectedErr: ErrInvalidTotalCost,
		},
		{
			name: "zero participants",
			input: &ComputeSharesInput{
				TotalCost:        decimal.NewFromInt(100),
				ParticipantCount: 0,
			},
			expectedErr: ErrInvalidParticipantCount,
		},
		{
			name: "nights length mismatch",
			input: &ComputeSharesInput{
				TotalCost:        decimal.NewFromInt(100),
				ParticipantCount: 3,
				Nights:           []int{1, 2},
			},
			expectedErr: ErrNightsMismatch,
		},
		{
			name: "negative nights",
			input: &ComputeSharesInput{
				TotalCost:        decimal.NewFromInt(100),
				ParticipantCount: 2,
				Nights:           []int{-1, 2},
			},
			expectedErr: ErrNegativeNights,
		},
		{
			name: "zero total nights",
			input: &ComputeSharesInput{
				TotalCost:        decimal.NewFromInt(100),
				ParticipantCount: 2,
				Nights:           []int{0, 0},
			},
			expectedErr: ErrZeroTotalNights,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := calc.ComputeShares(tt.input)
			assert.Nil(t, output)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
