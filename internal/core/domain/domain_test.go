package domain

import (
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	const hex = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

	got, err := ParseAddress(hex)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(hex), got)

	lower, err := ParseAddress(strings.ToLower(hex))
	require.NoError(t, err)
	assert.Equal(t, got, lower)

	_, err = ParseAddress("  ")
	assert.ErrorIs(t, err, ErrMissingAddress)

	_, err = ParseAddress("0x1234")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestCanEdit(t *testing.T) {
	owner := common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	other := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

	assert.True(t, CanEdit(&owner, owner, true))
	assert.False(t, CanEdit(&owner, other, true))
	assert.False(t, CanEdit(&owner, owner, false))
	assert.False(t, CanEdit(nil, owner, true))
}

func TestStateFromUint8(t *testing.T) {
	assert.Equal(t, "Active", StateFromUint8(0).String())
	assert.Equal(t, "Successful", StateFromUint8(1).String())
	assert.Equal(t, "Failed", StateFromUint8(2).String())
	assert.Equal(t, StateUnknown, StateFromUint8(7))
	assert.Equal(t, "Unknown", StateUnknown.String())
}

func TestParseTierAmount(t *testing.T) {
	v, err := ParseTierAmount(" 10 ")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(10), v)

	for _, raw := range []string{"", "1.5", "ten", "-1"} {
		_, err := ParseTierAmount(raw)
		assert.True(t, errors.Is(err, ErrInvalidAmount), raw)
	}

	tooBig := new(big.Int).Lsh(big.NewInt(1), 256).String()
	_, err = ParseTierAmount(tooBig)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestCarousel(t *testing.T) {
	c := NewCarousel(DefaultSlides, 0)
	require.Len(t, c.Slides, 4)
	assert.Equal(t, 5*time.Second, c.Interval)

	assert.Equal(t, 1, c.Next(0))
	assert.Equal(t, 0, c.Next(3))
	assert.Equal(t, 3, c.Normalize(-1))
	assert.Equal(t, 2, c.Normalize(6))

	assert.Equal(t, 5, c.RefreshSeconds())
	assert.Equal(t, 2, NewCarousel(DefaultSlides, 1500*time.Millisecond).RefreshSeconds())
	assert.Equal(t, 1, NewCarousel(DefaultSlides, time.Millisecond).RefreshSeconds())
}

func TestRequestModal(t *testing.T) {
	assert.True(t, RequestModal(true, true).IsOpen())
	assert.False(t, RequestModal(true, false).IsOpen())
	assert.False(t, RequestModal(false, true).IsOpen())
}

func TestSubmissionSettled(t *testing.T) {
	assert.False(t, Submission{Status: SubmissionReserved}.Settled())
	assert.False(t, Submission{Status: SubmissionSubmitted}.Settled())
	assert.True(t, Submission{Status: SubmissionConfirmed}.Settled())
	assert.True(t, Submission{Status: SubmissionFailed}.Settled())
}
