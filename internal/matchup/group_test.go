package matchup

import (
	"sleeper-history/internal/domain"
	"sleeper-history/internal/sleepertest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	rec = sleepertest.Rec
	bye = sleepertest.Bye
)

func TestGroupByPairing_DropsByes(t *testing.T) {
	groups := GroupByPairing([]domain.GameRecord{
		rec(1, 10, 100),
		bye(5, 80),
		rec(2, 10, 90),
		rec(3, 11, 70),
	})

	require.Len(t, groups, 2)
	assert.Len(t, groups[10], 2)
	assert.Len(t, groups[11], 1)
	for _, g := range groups {
		for _, r := range g {
			assert.NotEqual(t, 5, r.RosterID)
		}
	}
}

func TestGroupByPairing_Empty(t *testing.T) {
	assert.Empty(t, GroupByPairing(nil))
	assert.Empty(t, GroupByPairing([]domain.GameRecord{bye(1, 10)}))
}

func TestGames_OrderedByPairingID(t *testing.T) {
	games := Games([]domain.GameRecord{
		rec(1, 30, 1), rec(2, 10, 1), rec(3, 20, 1), rec(4, 10, 1),
	})

	require.Len(t, games, 3)
	assert.Equal(t, 10, games[0].PairingID)
	assert.Equal(t, 20, games[1].PairingID)
	assert.Equal(t, 30, games[2].PairingID)
	assert.Len(t, games[0].Participants, 2)
}

func TestComparable(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		valid bool
	}{
		{"single", 1, false},
		{"pair", 2, true},
		{"three-way", 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := domain.Game{PairingID: 1}
			for i := 0; i < tt.size; i++ {
				g.Participants = append(g.Participants, rec(i+1, 1, 10))
			}
			assert.Equal(t, tt.valid, Comparable(g))
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Win, Classify(0.01))
	assert.Equal(t, Loss, Classify(-3))
	assert.Equal(t, Tie, Classify(0))
	assert.Equal(t, "W", Win.String())
	assert.Equal(t, "L", Loss.String())
	assert.Equal(t, "T", Tie.String())
}
