package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BenlahcenSoufiane/AzurHotel/internal/domains/booking/repository"
)

func day(d int) time.Time {
	return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
}

// The existing stay is [Jan 10, Jan 15). Stays are half-open, a guest checks
// out the morning of check_out, so a stay beginning that same day does not
// collide.
func TestStayOverlaps(t *testing.T) {
	existingIn, existingOut := day(10), day(15)

	tests := []struct {
		name         string
		candidateIn  int
		candidateOut int
		want         bool
	}{
		{
			name:         "candidate starting on the check-out day does not collide",
			candidateIn:  15,
			candidateOut: 20,
			want:         false,
		},
		{
			name:         "candidate ending on the check-in day does not collide",
			candidateIn:  5,
			candidateOut: 10,
			want:         false,
		},
		{
			name:         "disjoint candidate after the stay",
			candidateIn:  20,
			candidateOut: 22,
			want:         false,
		},
		{
			name:         "candidate straddling the check-out collides",
			candidateIn:  14,
			candidateOut: 16,
			want:         true,
		},
		{
			name:         "candidate straddling the check-in collides",
			candidateIn:  8,
			candidateOut: 12,
			want:         true,
		},
		{
			name:         "candidate inside the stay collides",
			candidateIn:  11,
			candidateOut: 13,
			want:         true,
		},
		{
			name:         "candidate containing the stay collides",
			candidateIn:  8,
			candidateOut: 20,
			want:         true,
		},
		{
			name:         "identical candidate collides",
			candidateIn:  10,
			candidateOut: 15,
			want:         true,
		},
		{
			name:         "candidate sharing only the check-in day collides",
			candidateIn:  10,
			candidateOut: 11,
			want:         true,
		},
		{
			name:         "candidate sharing only the last night collides",
			candidateIn:  14,
			candidateOut: 15,
			want:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repository.StayOverlaps(day(tt.candidateIn), day(tt.candidateOut), existingIn, existingOut)

			assert.Equal(t, tt.want, got)
		})
	}
}

// Overlap is symmetric even though the predicate is written as three one-way
// clauses. Sweep every pair of short stays in the month and compare both
// directions against the canonical no-overlap rule.
func TestStayOverlaps_Symmetry(t *testing.T) {
	for aIn := 1; aIn <= 10; aIn++ {
		for aOut := aIn + 1; aOut <= 12; aOut++ {
			for bIn := 1; bIn <= 10; bIn++ {
				for bOut := bIn + 1; bOut <= 12; bOut++ {
					want := aIn < bOut && bIn < aOut

					assert.Equal(t, want,
						repository.StayOverlaps(day(aIn), day(aOut), day(bIn), day(bOut)),
						"[%d,%d) vs [%d,%d)", aIn, aOut, bIn, bOut)
					assert.Equal(t, want,
						repository.StayOverlaps(day(bIn), day(bOut), day(aIn), day(aOut)),
						"[%d,%d) vs [%d,%d) reversed", bIn, bOut, aIn, aOut)
				}
			}
		}
	}
}
