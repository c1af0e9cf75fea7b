package matching

import (
	"confidant-service/internal/app/models"
)

// Suitability weights. Specialization overlap dominates; demographic
// preference hits add a couple of points each; experience and rating are
// added unweighted.
const (
	weightPerSharedProblem = 5
	weightSexPreference    = 2
	weightAgeRange         = 2
	weightReligion         = 2
	weightStatus           = 2
	weightState            = 2
	weightCountry          = 1
)

func intersectionCount(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(a))
	for _, v := range a {
		seen[v] = struct{}{}
	}
	count := 0
	matched := make(map[string]struct{}, len(b))
	for _, v := range b {
		if _, ok := seen[v]; ok {
			if _, dup := matched[v]; !dup {
				matched[v] = struct{}{}
				count++
			}
		}
	}
	return count
}

// TherapistSuitability computes the weighted match score between a therapist
// and a submitted patient profile. Deterministic and side-effect free; empty
// profile fields never match and contribute nothing.
func TherapistSuitability(therapist *models.Therapist, profile models.PatientProfile) float64 {
	suitability := float64(intersectionCount(therapist.Specialization, profile.Problems) * weightPerSharedProblem)

	if therapist.SexPreference != "" && therapist.SexPreference == profile.Gender {
		suitability += weightSexPreference
	}
	if therapist.IsWithinAgeRange(profile.Age) {
		suitability += weightAgeRange
	}
	if therapist.ReligionPreference != "" && therapist.ReligionPreference == profile.Religion {
		suitability += weightReligion
	}
	if therapist.StatusPreference != "" && therapist.StatusPreference == profile.Status {
		suitability += weightStatus
	}
	if therapist.LocationPreference.State != "" && therapist.LocationPreference.State == profile.State {
		suitability += weightState
	}
	if therapist.LocationPreference.Country != "" && therapist.LocationPreference.Country == profile.Country {
		suitability += weightCountry
	}

	suitability += float64(therapist.YearsOfExperience) + therapist.AverageRating

	return suitability
}

type scoredCandidate struct {
	therapist *models.TherapistWithActiveSessions
	score     float64
	order     int // retrieval position, breaks score ties
}

// topKSelector keeps the k best candidates seen so far without sorting the
// whole input. Candidates are held in rank order; equal scores keep their
// retrieval order.
type topKSelector struct {
	k     int
	ranks []scoredCandidate
}

func newTopKSelector(k int) *topKSelector {
	return &topKSelector{k: k, ranks: make([]scoredCandidate, 0, k)}
}

func (s *topKSelector) add(candidate scoredCandidate) {
	pos := len(s.ranks)
	for pos > 0 {
		prev := s.ranks[pos-1]
		if prev.score > candidate.score || (prev.score == candidate.score && prev.order < candidate.order) {
			break
		}
		pos--
	}

	if pos >= s.k {
		return
	}

	if len(s.ranks) < s.k {
		s.ranks = append(s.ranks, scoredCandidate{})
	}
	copy(s.ranks[pos+1:], s.ranks[pos:])
	s.ranks[pos] = candidate
}

func (s *topKSelector) result() []scoredCandidate {
	return s.ranks
}
