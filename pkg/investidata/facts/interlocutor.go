package facts

import "github.com/ukaji3/investidata-go/pkg/investidata/models"

// DeviceIdentity guesses the local device as the most frequent non-empty
// sender. Ties go to the value seen first.
//
// This is a heuristic: shared devices, multi-SIM phones and exports that
// mix several handsets all produce a wrong answer.
func DeviceIdentity(t *models.Table, from models.ColumnRef) string {
	counts := make(map[string]int)
	var order []string
	for i := 0; i < t.Len(); i++ {
		v := t.Text(i, from.Index)
		if v == "" {
			continue
		}
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	best, bestCount := "", 0
	for _, v := range order {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}

// OtherParty returns the counterpart of row i: the recipient when the
// device sent the message, the sender otherwise.
func OtherParty(t *models.Table, i int, from, to models.ColumnRef, device string) string {
	sender := t.Text(i, from.Index)
	if device != "" && sender == device {
		return t.Text(i, to.Index)
	}
	return sender
}

// ResolveInterlocutors applies DeviceIdentity and collects the distinct,
// non-empty other parties of the rows set in mask, sorted.
func ResolveInterlocutors(t *models.Table, from, to models.ColumnRef, mask []bool) *models.Interlocutors {
	device := DeviceIdentity(t, from)
	var parties []string
	for i := 0; i < t.Len() && i < len(mask); i++ {
		if mask[i] {
			parties = append(parties, OtherParty(t, i, from, to, device))
		}
	}
	return &models.Interlocutors{Device: device, Suspicious: sortedSet(parties)}
}
