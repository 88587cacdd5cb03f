package models

// MImportStatus is the state of the background price-fetch job as exposed to
// clients. Owned by the tracker; everything outside reads copies only.
type MImportStatus struct {
	Running     bool     `json:"running"`
	Message     string   `json:"message"`
	CurrentTask string   `json:"current_task"`
	Progress    int      `json:"progress"`
	Error       bool     `json:"error"`
	Log         []string `json:"log"`
}

// Equal reports whether two statuses are identical at the value level,
// including log contents. Used for change detection before publishing.
func (s MImportStatus) Equal(o MImportStatus) bool {
	if s.Running != o.Running || s.Message != o.Message ||
		s.CurrentTask != o.CurrentTask || s.Progress != o.Progress ||
		s.Error != o.Error || len(s.Log) != len(o.Log) {
		return false
	}
	for i := range s.Log {
		if s.Log[i] != o.Log[i] {
			return false
		}
	}
	return true
}
