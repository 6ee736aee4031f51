package league

// Record prepends an entry to the activity entries and keeps only the newest
// MaxActivity entries.
func (e *Engine) Record(t *Tournament, text string) {
	entry := Activity{Text: text, Date: e.now()}

	n := len(t.Activity) + 1
	if n > MaxActivity {
		n = MaxActivity
	}
	entries := make([]Activity, 0, n)
	entries = append(entries, entry)
	entries = append(entries, t.Activity[:n-1]...)
	t.Activity = entries
}
