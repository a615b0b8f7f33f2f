package llm

// NoUpdates is the exact reply the model is told to give when nothing on the
// page is worth a message
const NoUpdates = "no ai or dev updates right now!"

// Noteworthy reports whether a digest deserves delivery. The explicit
// no-updates marker and replies too short to carry real stories are
// suppressed. Pure function of its input, safe to call any number of times.
func Noteworthy(digest string) bool {
	return len(digest) > 50 && digest != NoUpdates
}
