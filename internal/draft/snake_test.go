package draft_test

import (
	"testing"

	"github.com/BlakeDanielson/celeb-draft/internal/draft"
	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name      string
		overall   int
		teamCount int
		want      int
	}{
		{name: "first pick", overall: 1, teamCount: 4, want: 1},
		{name: "last pick of round one", overall: 4, teamCount: 4, want: 1},
		{name: "first pick of round two", overall: 5, teamCount: 4, want: 2},
		{name: "single team every pick is its own round", overall: 3, teamCount: 1, want: 3},
		{name: "two teams tenth pick", overall: 10, teamCount: 2, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, draft.Round(tt.overall, tt.teamCount))
		})
	}
}

func TestExpectedIndex_SnakeSequence(t *testing.T) {
	// For N teams the first two rounds walk 0..N-1 then N-1..0.
	for _, teamCount := range []int{1, 2, 3, 4, 8} {
		var got []int
		for picksSoFar := 0; picksSoFar < 2*teamCount; picksSoFar++ {
			got = append(got, draft.ExpectedIndex(picksSoFar, teamCount))
		}

		var want []int
		for i := 0; i < teamCount; i++ {
			want = append(want, i)
		}
		for i := teamCount - 1; i >= 0; i-- {
			want = append(want, i)
		}

		assert.Equal(t, want, got, "teamCount=%d", teamCount)
	}
}

func TestExpectedIndex_StaysInBounds(t *testing.T) {
	for teamCount := 1; teamCount <= 10; teamCount++ {
		for picksSoFar := 0; picksSoFar < teamCount*6; picksSoFar++ {
			idx := draft.ExpectedIndex(picksSoFar, teamCount)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, teamCount)
		}
	}
}

func TestExpectedIndex_ReversesEveryRound(t *testing.T) {
	const teamCount = 5
	for round := 1; round <= 6; round++ {
		first := draft.ExpectedIndex((round-1)*teamCount, teamCount)
		last := draft.ExpectedIndex(round*teamCount-1, teamCount)
		if round%2 == 1 {
			assert.Equal(t, 0, first)
			assert.Equal(t, teamCount-1, last)
		} else {
			assert.Equal(t, teamCount-1, first)
			assert.Equal(t, 0, last)
		}
	}
}

func TestExpectedIndex_WorkedExample(t *testing.T) {
	// Two teams: picks 1..4 fall to positions 1,2,2,1.
	want := []int{0, 1, 1, 0}
	for picksSoFar, expected := range want {
		assert.Equal(t, expected, draft.ExpectedIndex(picksSoFar, 2), "pick %d", picksSoFar+1)
	}
}
