package schedule

import (
	"sort"
	"time"

	"github.com/d3s-platform/daily3/internal/sentence"
)

// DefaultDailyQuota is the fixed daily learning load when no quota is configured.
const DefaultDailyQuota = 3

// Plan is the outcome of planning one day's study session.
type Plan struct {
	// NewItems is the capped, day-stable set of sentences to learn today.
	NewItems []sentence.Sentence
	// DueItems is the capped set of sentences whose review date has arrived.
	DueItems []sentence.Sentence
	// Record is the selection record that should be persisted for today.
	Record DailySelection
	// Changed reports whether Record differs from the record passed in.
	Changed bool
}

// PlanDailySelection derives today's new-learning set and due-review queue
// from a full sentence snapshot and the persisted selection record, if any.
//
// Members of today's record are retained while they are still today's
// business: either never completed (stage 0) or successfully reviewed today.
// Gaps up to the quota are filled from eligible candidates: stage-0 sentences
// not already retained, excluding manual entries added today (those are
// studied deliberately outside the automatic queue). Manual candidates are
// preferred, newest first; imported candidates follow, oldest first. The
// final list is truncated to the quota as the very last step.
//
// Repeated calls on the same day with an unchanged snapshot return the same
// selection, in the same order.
func PlanDailySelection(items []sentence.Sentence, record *DailySelection, now time.Time, quota int) Plan {
	if quota <= 0 {
		quota = DefaultDailyQuota
	}
	today := DateKey(now)

	byID := make(map[string]sentence.Sentence, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	var retained []sentence.Sentence
	retainedIDs := make(map[string]struct{})
	if record != nil && record.Date == today {
		for _, id := range record.SentenceIDs {
			item, ok := byID[id]
			if !ok {
				continue
			}
			if item.StageIndex == 0 || item.ReviewedOn(now) {
				retained = append(retained, item)
				retainedIDs[id] = struct{}{}
			}
		}
	}

	selected := retained
	if needed := quota - len(retained); needed > 0 {
		var manual, imported []sentence.Sentence
		for _, item := range items {
			if item.StageIndex != 0 {
				continue
			}
			if _, ok := retainedIDs[item.ID]; ok {
				continue
			}
			if item.IsManual && item.AddedOn(now) {
				continue
			}
			if item.IsManual {
				manual = append(manual, item)
			} else {
				imported = append(imported, item)
			}
		}
		// A sentence typed in by hand is studied right away; imported backlog
		// is worked through in its original order.
		sort.SliceStable(manual, func(i, j int) bool {
			return manual[i].AddedAt.After(manual[j].AddedAt)
		})
		sort.SliceStable(imported, func(i, j int) bool {
			return imported[i].AddedAt.Before(imported[j].AddedAt)
		})

		candidates := append(manual, imported...)
		if needed > len(candidates) {
			needed = len(candidates)
		}
		selected = append(selected, candidates[:needed]...)
	}

	// The daily quota is product policy, enforced last no matter what the
	// retention and fill logic produced.
	if len(selected) > quota {
		selected = selected[:quota]
	}

	ids := make([]string, 0, len(selected))
	for _, item := range selected {
		ids = append(ids, item.ID)
	}
	updated := DailySelection{Date: today, SentenceIDs: ids}

	var due []sentence.Sentence
	for _, item := range items {
		if !item.IsDue(now) {
			continue
		}
		due = append(due, item)
		if len(due) == quota {
			break
		}
	}

	return Plan{
		NewItems: selected,
		DueItems: due,
		Record:   updated,
		Changed:  record == nil || !sameRecord(*record, updated),
	}
}

func sameRecord(a, b DailySelection) bool {
	if a.Date != b.Date || len(a.SentenceIDs) != len(b.SentenceIDs) {
		return false
	}
	for i := range a.SentenceIDs {
		if a.SentenceIDs[i] != b.SentenceIDs[i] {
			return false
		}
	}
	return true
}
