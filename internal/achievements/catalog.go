// Package achievements holds the gamification rules: the action point table,
// the badge catalog with its eligibility criteria, and the mood streak math.
// Everything here is pure computation over snapshots of a user's activity;
// persistence stays in the services layer.
package achievements

import (
	_ "embed"
	"fmt"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// Action point rewards. Values are product policy, not mechanism.
const (
	PointsCreatePost      = 10
	PointsReceiveReaction = 2
	PointsReceiveComment  = 5
	PointsAddComment      = 5
	PointsAddReaction     = 3
	PointsLogMood         = 5
	PointsCreateJournal   = 8

	// PointsDailyLogin has no trigger wired anywhere. It is kept so the
	// point table matches the product catalog.
	PointsDailyLogin = 2

	// PointsBadgeBonus is granted once per newly earned badge, in the same
	// update that appends the badge.
	PointsBadgeBonus = 50
)

// Criteria variants. Each badge carries exactly one; Eligible dispatches on
// the type so the catalog stays plain data with no closures.
const (
	CriteriaMinPosts            = "min_posts"
	CriteriaMinJournals         = "min_journals"
	CriteriaMinMoods            = "min_moods"
	CriteriaConsecutiveMoodDays = "consecutive_mood_days"
	CriteriaMinReactedPosts     = "min_reacted_posts"
	CriteriaMinCommentedPosts   = "min_commented_posts"
)

type Criteria struct {
	Type  string `yaml:"type"`
	Value int    `yaml:"value"`
}

type BadgeDef struct {
	Key         string   `yaml:"key"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Icon        string   `yaml:"icon"`
	Criteria    Criteria `yaml:"criteria"`
}

// Activity is a read-only snapshot of one user's history, assembled by the
// caller. ReactedPostCount and CommentedPostCount count distinct posts, not
// total reactions or comments (a user holds one reaction per post; multiple
// comments on the same post still count it once).
type Activity struct {
	PostCount          int64
	JournalCount       int64
	MoodCount          int64
	ReactedPostCount   int64
	CommentedPostCount int64

	// RecentMoodDates holds the calendar dates (day-truncated, most recent
	// first) of the user's most recent mood records, at most the window a
	// consecutive-days criteria needs.
	RecentMoodDates []time.Time
}

// Eligible reports whether the activity snapshot satisfies the badge's
// criteria. Unknown criteria types never pass.
func Eligible(def BadgeDef, a Activity) bool {
	switch def.Criteria.Type {
	case CriteriaMinPosts:
		return a.PostCount >= int64(def.Criteria.Value)
	case CriteriaMinJournals:
		return a.JournalCount >= int64(def.Criteria.Value)
	case CriteriaMinMoods:
		return a.MoodCount >= int64(def.Criteria.Value)
	case CriteriaMinReactedPosts:
		return a.ReactedPostCount >= int64(def.Criteria.Value)
	case CriteriaMinCommentedPosts:
		return a.CommentedPostCount >= int64(def.Criteria.Value)
	case CriteriaConsecutiveMoodDays:
		return consecutiveDays(a.RecentMoodDates, def.Criteria.Value)
	}
	return false
}

// consecutiveDays checks that the n most recent mood dates exist and run on
// strictly consecutive calendar days. Two entries on the same day (diff 0)
// break the run, matching the record-based check the streak badge uses.
func consecutiveDays(datesDesc []time.Time, n int) bool {
	if len(datesDesc) < n {
		return false
	}
	for i := 0; i < n-1; i++ {
		diff := daysBetween(datesDesc[i+1], datesDesc[i])
		if diff != 1 {
			return false
		}
	}
	return true
}

//go:embed catalog.yaml
var catalogYAML []byte

type catalogFile struct {
	Badges []BadgeDef `yaml:"badges"`
}

var (
	catalogOnce sync.Once
	catalog     []BadgeDef
	catalogErr  error
)

// Catalog returns the badge definitions in evaluation order. The table is
// parsed once at first use and never mutated, so it is safe to share across
// concurrent evaluations.
func Catalog() ([]BadgeDef, error) {
	catalogOnce.Do(func() {
		var cf catalogFile
		if err := yaml.Unmarshal(catalogYAML, &cf); err != nil {
			catalogErr = fmt.Errorf("parse badge catalog: %w", err)
			return
		}
		if err := validateCatalog(cf.Badges); err != nil {
			catalogErr = err
			return
		}
		catalog = cf.Badges
	})
	return catalog, catalogErr
}

func validateCatalog(defs []BadgeDef) error {
	if len(defs) == 0 {
		return fmt.Errorf("badge catalog is empty")
	}
	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		if def.Key == "" || def.Name == "" || def.Description == "" || def.Icon == "" {
			return fmt.Errorf("badge %q is missing required fields", def.Key)
		}
		if seen[def.Name] {
			return fmt.Errorf("duplicate badge name %q", def.Name)
		}
		seen[def.Name] = true
		if def.Criteria.Value <= 0 {
			return fmt.Errorf("badge %q has non-positive criteria value", def.Key)
		}
		switch def.Criteria.Type {
		case CriteriaMinPosts, CriteriaMinJournals, CriteriaMinMoods,
			CriteriaConsecutiveMoodDays, CriteriaMinReactedPosts, CriteriaMinCommentedPosts:
		default:
			return fmt.Errorf("badge %q has unknown criteria type %q", def.Key, def.Criteria.Type)
		}
	}
	return nil
}
