package board

func isDuplicate(entries []*Entry, entry *Entry) bool {
	for _, existing := range entries {
		if existing.RendersIdenticalTo(entry) {
			return true
		}
	}

	return false
}

// shortenTermini rewrites the displayed terminus of earlier departures that
// share a tail of calling points with the newly accepted one, so that sooner
// departures show the nearest distinguishing destination rather than their
// true final one. Only displayed termini change; entry order never does.
func shortenTermini(entries []*Entry, latest *Entry) {
	for _, earlier := range entries[:len(entries)-1] {
		if len(earlier.CallingAt) < 2 {
			continue
		}

		k := len(earlier.CallingAt) - 2

		// Walk the new entry's calls from the end. Whenever the earlier
		// entry's displayed terminus sits at or beyond the examined call,
		// step it back through the earlier entry's own calling list.
		for j := len(latest.CallingAt); j > 0; j-- {
			call := latest.CallingAt[j-1]

			if earlier.Terminus.Equal(call) {
				earlier.Terminus = earlier.CallingAt[k]

				if k == 0 {
					break
				}
				k--
			}
		}
	}
}
