package dashboard

// firstPerKey keeps the first item of each key in order and stops once
// limit items are kept.
func firstPerKey[T any, K comparable](items []T, key func(T) K, limit int) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, min(limit, len(items)))
	for _, item := range items {
		if len(out) >= limit {
			break
		}
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}

type recentKey struct {
	questionnaireID uint
	row             string
	respondentID    uint
	submittedAt     int64
}

func recentReportKey(r RecentReport) recentKey {
	k := recentKey{questionnaireID: r.QuestionnaireID, respondentID: r.RespondentID}
	if r.RowIdentifier != nil {
		k.row = *r.RowIdentifier
	}
	if r.SubmittedAt != nil {
		k.submittedAt = r.SubmittedAt.UnixMicro()
	}
	return k
}

type correctionKey struct {
	questionnaireID uint
	row             string
}

func pendingCorrectionKey(p PendingCorrection) correctionKey {
	k := correctionKey{questionnaireID: p.QuestionnaireID}
	if p.RowIdentifier != nil {
		k.row = *p.RowIdentifier
	}
	return k
}
