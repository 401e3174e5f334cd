package history

import (
	"context"
	"errors"
	"sleeper-history/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeWeeks func(leagueID string, week int) ([]domain.GameRecord, error)

func (f fakeWeeks) GetMatchups(_ context.Context, leagueID string, week int) ([]domain.GameRecord, error) {
	return f(leagueID, week)
}

func TestFetchWeek_Variants(t *testing.T) {
	boom := errors.New("boom")
	src := fakeWeeks(func(_ string, week int) ([]domain.GameRecord, error) {
		switch week {
		case 1:
			return []domain.GameRecord{{RosterID: 1}}, nil
		case 2:
			return []domain.GameRecord{}, nil
		case 3:
			return nil, nil
		}
		return nil, boom
	})

	tests := []struct {
		week   int
		status WeekStatus
		count  int
		err    error
	}{
		{week: 1, status: WeekData, count: 1},
		{week: 2, status: WeekEmpty},
		{week: 3, status: WeekEmpty},
		{week: 4, status: WeekFailed, err: boom},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			res := FetchWeek(context.Background(), src, "L", tt.week)
			assert.Equal(t, tt.status, res.Status)
			assert.Len(t, res.Records, tt.count)
			assert.ErrorIs(t, res.Err, tt.err)
		})
	}
}
