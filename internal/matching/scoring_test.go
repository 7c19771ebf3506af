package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_DisjointProfiles(t *testing.T) {
	a := Profile{Skills: []string{"Go", "Rust"}, Interests: []string{"Systems"}}
	b := Profile{Skills: []string{"Photoshop"}, Interests: []string{"Design"}}

	assert.Equal(t, 0.0, Score(a, b))
}

func TestScore_IdenticalProfiles(t *testing.T) {
	a := Profile{
		Skills:    []string{"React", "Node.js"},
		Interests: []string{"Web Development", "Open Source"},
	}
	b := Profile{
		Skills:    []string{"React", "Node.js"},
		Interests: []string{"Web Development", "Open Source"},
	}

	assert.InDelta(t, 1.0, Score(a, b), 1e-9)
}

func TestScore_EmptyLists(t *testing.T) {
	t.Run("both profiles empty", func(t *testing.T) {
		assert.Equal(t, 0.0, Score(Profile{}, Profile{}))
	})

	t.Run("one side empty contributes zero, not NaN", func(t *testing.T) {
		a := Profile{Skills: []string{"Go"}, Interests: nil}
		b := Profile{Skills: []string{"Go"}, Interests: nil}
		// Interest term is 0, skill term is 1
		assert.InDelta(t, 0.6, Score(a, b), 1e-9)
	})

	t.Run("empty against non-empty", func(t *testing.T) {
		a := Profile{}
		b := Profile{Skills: []string{"Go"}, Interests: []string{"Systems"}}
		assert.Equal(t, 0.0, Score(a, b))
	})
}

func TestScore_WorkedExample(t *testing.T) {
	// One overlapping skill of max 2, one overlapping interest of max 2:
	// 0.4*0.5 + 0.6*0.5 = 0.5
	a := Profile{
		Skills:    []string{"React", "Node.js"},
		Interests: []string{"Web Development"},
	}
	b := Profile{
		Skills:    []string{"React", "Python"},
		Interests: []string{"Web Development", "Data Science"},
	}

	assert.InDelta(t, 0.5, Score(a, b), 1e-9)
}

func TestScore_CaseInsensitive(t *testing.T) {
	a := Profile{Skills: []string{"react"}, Interests: []string{"web development"}}
	b := Profile{Skills: []string{"React"}, Interests: []string{"Web Development"}}

	assert.InDelta(t, 1.0, Score(a, b), 1e-9)
}

func TestScore_DoesNotMutateInputs(t *testing.T) {
	skills := []string{"React", "Node.js"}
	interests := []string{"Web Development"}
	a := Profile{Skills: skills, Interests: interests}
	b := Profile{Skills: []string{"React"}, Interests: []string{"Data Science"}}

	_ = Score(a, b)

	assert.Equal(t, []string{"React", "Node.js"}, skills)
	assert.Equal(t, []string{"Web Development"}, interests)
}

func TestScore_ResultWithinUnitInterval(t *testing.T) {
	profiles := []Profile{
		{},
		{Skills: []string{"Go"}},
		{Interests: []string{"Systems", "Networking"}},
		{Skills: []string{"Go", "Go", "go"}, Interests: []string{"Systems"}},
	}
	for _, a := range profiles {
		for _, b := range profiles {
			s := Score(a, b)
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	}
}
