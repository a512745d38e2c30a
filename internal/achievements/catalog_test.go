package achievements

import (
	"testing"
	"time"
)

func TestCatalogLoads(t *testing.T) {
	defs, err := Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if len(defs) != 8 {
		t.Fatalf("catalog size: want=8 got=%d", len(defs))
	}
	seen := map[string]bool{}
	for _, def := range defs {
		if seen[def.Name] {
			t.Fatalf("duplicate badge name %q", def.Name)
		}
		seen[def.Name] = true
	}
	first := defs[0]
	if first.Name != "First Steps" || first.Criteria.Type != CriteriaMinPosts || first.Criteria.Value != 1 {
		t.Fatalf("unexpected first badge: %+v", first)
	}
}

func TestEligibleThresholds(t *testing.T) {
	def := BadgeDef{
		Key:      "community_contributor",
		Name:     "Community Voice",
		Criteria: Criteria{Type: CriteriaMinPosts, Value: 10},
	}
	if Eligible(def, Activity{PostCount: 9}) {
		t.Fatalf("9 posts should not qualify")
	}
	if !Eligible(def, Activity{PostCount: 10}) {
		t.Fatalf("10 posts should qualify")
	}
}

func TestEligibleDistinctPostCounts(t *testing.T) {
	supportive := BadgeDef{Criteria: Criteria{Type: CriteriaMinReactedPosts, Value: 20}}
	if Eligible(supportive, Activity{ReactedPostCount: 19}) {
		t.Fatalf("19 reacted posts should not qualify")
	}
	if !Eligible(supportive, Activity{ReactedPostCount: 20}) {
		t.Fatalf("20 reacted posts should qualify")
	}

	starter := BadgeDef{Criteria: Criteria{Type: CriteriaMinCommentedPosts, Value: 15}}
	if !Eligible(starter, Activity{CommentedPostCount: 15}) {
		t.Fatalf("15 commented posts should qualify")
	}
}

func TestEligibleConsecutiveMoodDays(t *testing.T) {
	def := BadgeDef{Criteria: Criteria{Type: CriteriaConsecutiveMoodDays, Value: 7}}

	consecutive := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		consecutive = append(consecutive, day(2024, 4, 10-i))
	}
	if !Eligible(def, Activity{RecentMoodDates: consecutive}) {
		t.Fatalf("7 consecutive days should qualify")
	}

	gapped := append([]time.Time{}, consecutive...)
	gapped[3] = day(2024, 4, 1)
	if Eligible(def, Activity{RecentMoodDates: gapped}) {
		t.Fatalf("gapped run should not qualify")
	}

	if Eligible(def, Activity{RecentMoodDates: consecutive[:6]}) {
		t.Fatalf("6 days should not qualify")
	}

	sameDay := append([]time.Time{consecutive[0]}, consecutive...)
	if Eligible(def, Activity{RecentMoodDates: sameDay[:7]}) {
		t.Fatalf("duplicate day should break the run")
	}
}

func TestEligibleUnknownCriteria(t *testing.T) {
	def := BadgeDef{Criteria: Criteria{Type: "min_logins", Value: 1}}
	if Eligible(def, Activity{PostCount: 100}) {
		t.Fatalf("unknown criteria must never pass")
	}
}
