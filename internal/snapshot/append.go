package snapshot

import "os"

// AppendEntry appends text to the log at path, creating the file if
// needed. The whole block goes out in a single write.
func AppendEntry(path, text string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &PersistenceError{Path: path, Err: cerr}
		}
	}()

	if _, err := f.WriteString(text); err != nil {
		return &PersistenceError{Path: path, Err: err}
	}
	return nil
}
