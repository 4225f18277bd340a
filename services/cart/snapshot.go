package cart

import "encoding/json"

// Snapshots are versioned so that an incompatible old payload can be
// detected and discarded instead of being guessed at.
const snapshotVersion = 1

type snapshot struct {
	Version int    `json:"version"`
	Items   []Line `json:"items"`
}

func encodeSnapshot(lines []Line) (string, error) {
	data, err := json.Marshal(snapshot{
		Version: snapshotVersion,
		Items:   lines,
	})
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// decodeSnapshot parses a persisted snapshot. Anything that does not match
// the current schema (bad JSON, wrong version, invalid lines) is dropped,
// never reported: a malformed snapshot is treated as an absent one.
func decodeSnapshot(value string) ([]Line, bool) {
	snap := snapshot{}
	err := json.Unmarshal([]byte(value), &snap)
	if err != nil {
		return nil, false
	}
	if snap.Version != snapshotVersion {
		return nil, false
	}

	lines := make([]Line, 0, len(snap.Items))
	seen := map[string]bool{}
	for _, line := range snap.Items {
		if line.Product.ID == "" || line.Quantity < 1 || seen[line.Product.ID] {
			continue
		}
		seen[line.Product.ID] = true
		lines = append(lines, line)
	}

	return lines, true
}
