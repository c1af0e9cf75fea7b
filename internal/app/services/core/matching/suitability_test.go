package matching

import (
	"testing"

	"confidant-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func fullMatchTherapist() *models.Therapist {
	return &models.Therapist{
		ID:                 "therapist-1",
		Specialization:     []string{"anxiety", "depression"},
		SexPreference:      "female",
		ReligionPreference: "christianity",
		StatusPreference:   "single",
		AgeRange:           models.AgeRange{Min: 18, Max: 40},
		LocationPreference: models.LocationPreference{State: "lagos", Country: "nigeria"},
		YearsOfExperience:  3,
		AverageRating:      4.5,
	}
}

func fullMatchProfile() models.PatientProfile {
	return models.PatientProfile{
		Age:      25,
		Gender:   "female",
		Religion: "christianity",
		Status:   "single",
		State:    "lagos",
		Country:  "nigeria",
		Problems: []string{"anxiety", "stress"},
	}
}

func TestTherapistSuitability(t *testing.T) {
	t.Run("all criteria matched", func(t *testing.T) {
		// 1 shared problem (5) + sex (2) + age (2) + religion (2) +
		// status (2) + state (2) + country (1) + 3 years + 4.5 rating
		score := TherapistSuitability(fullMatchTherapist(), fullMatchProfile())
		assert.InDelta(t, 23.5, score, 1e-9)
	})

	t.Run("shared problems are counted once each", func(t *testing.T) {
		therapist := fullMatchTherapist()
		profile := fullMatchProfile()
		profile.Problems = []string{"anxiety", "anxiety", "depression"}
		score := TherapistSuitability(therapist, profile)
		assert.InDelta(t, 28.5, score, 1e-9)
	})

	t.Run("empty preference fields never match", func(t *testing.T) {
		therapist := fullMatchTherapist()
		therapist.SexPreference = ""
		therapist.ReligionPreference = ""
		profile := fullMatchProfile()
		profile.Gender = ""
		profile.Religion = ""
		score := TherapistSuitability(therapist, profile)
		assert.InDelta(t, 19.5, score, 1e-9)
	})

	t.Run("age outside range drops the age weight", func(t *testing.T) {
		therapist := fullMatchTherapist()
		profile := fullMatchProfile()
		profile.Age = 55
		score := TherapistSuitability(therapist, profile)
		assert.InDelta(t, 21.5, score, 1e-9)
	})

	t.Run("zero max age means no upper bound", func(t *testing.T) {
		therapist := fullMatchTherapist()
		therapist.AgeRange = models.AgeRange{Min: 18}
		profile := fullMatchProfile()
		profile.Age = 90
		score := TherapistSuitability(therapist, profile)
		assert.InDelta(t, 23.5, score, 1e-9)
	})

	t.Run("no overlap at all still adds experience and rating", func(t *testing.T) {
		therapist := &models.Therapist{
			AgeRange:          models.AgeRange{Min: 50, Max: 60},
			YearsOfExperience: 7,
			AverageRating:     3.2,
		}
		score := TherapistSuitability(therapist, models.PatientProfile{Age: 20})
		assert.InDelta(t, 10.2, score, 1e-9)
	})
}

func TestTopKSelector(t *testing.T) {
	candidate := func(id string, score float64, order int) scoredCandidate {
		return scoredCandidate{
			therapist: &models.TherapistWithActiveSessions{Therapist: models.Therapist{ID: id}},
			score:     score,
			order:     order,
		}
	}

	t.Run("keeps only the k best in descending order", func(t *testing.T) {
		selector := newTopKSelector(3)
		selector.add(candidate("a", 1, 0))
		selector.add(candidate("b", 9, 1))
		selector.add(candidate("c", 5, 2))
		selector.add(candidate("d", 7, 3))
		selector.add(candidate("e", 2, 4))

		result := selector.result()
		ids := make([]string, 0, len(result))
		for _, entry := range result {
			ids = append(ids, entry.therapist.ID)
		}
		assert.Equal(t, []string{"b", "d", "c"}, ids)
	})

	t.Run("equal scores keep retrieval order", func(t *testing.T) {
		selector := newTopKSelector(4)
		selector.add(candidate("first", 5, 0))
		selector.add(candidate("second", 5, 1))
		selector.add(candidate("third", 5, 2))
		selector.add(candidate("better", 8, 3))

		result := selector.result()
		ids := make([]string, 0, len(result))
		for _, entry := range result {
			ids = append(ids, entry.therapist.ID)
		}
		assert.Equal(t, []string{"better", "first", "second", "third"}, ids)
	})

	t.Run("fewer candidates than k returns all of them", func(t *testing.T) {
		selector := newTopKSelector(10)
		selector.add(candidate("a", 1, 0))
		selector.add(candidate("b", 2, 1))
		assert.Len(t, selector.result(), 2)
	})
}
