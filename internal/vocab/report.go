package vocab

// KeyReport is the outcome of reconciling one duplicate key.
type KeyReport struct {
	Key string `json:"key"`

	// Files lists the data files containing the key, in view order.
	Files []string `json:"files"`

	// Values lists the distinct translations seen for the key.
	Values []string `json:"values"`

	// Consistent is false when Values has more than one entry.
	Consistent bool `json:"consistent"`

	// MergedTags is the tag string applied to every file.
	MergedTags string `json:"merged_tags"`

	Fixed     []string `json:"fixed,omitempty"`
	Unchanged []string `json:"unchanged,omitempty"`

	// Anomalies lists files holding the key on more than one row.
	Anomalies []string `json:"anomalies,omitempty"`
}

// Report summarises one reconciliation pass.
type Report struct {
	RunID    string      `json:"run_id"`
	Tables   int         `json:"tables"`
	Records  int         `json:"records"`
	Migrated []string    `json:"migrated,omitempty"`
	Keys     []KeyReport `json:"keys"`
}

// FixedFiles counts the file writes made for tag fixes.
func (r *Report) FixedFiles() int {
	n := 0
	for _, k := range r.Keys {
		n += len(k.Fixed)
	}
	return n
}

// Mismatches counts keys whose translations differ between rows.
func (r *Report) Mismatches() int {
	n := 0
	for _, k := range r.Keys {
		if !k.Consistent {
			n++
		}
	}
	return n
}

// Anomalies counts files holding a duplicate key on more than one row.
func (r *Report) Anomalies() int {
	n := 0
	for _, k := range r.Keys {
		n += len(k.Anomalies)
	}
	return n
}
