package season

import crerr "github.com/cockroachdb/errors"

var (
	// ErrDataLoad marks any failure to build the season table: missing file,
	// malformed content, missing required column or an invalid cell.
	ErrDataLoad = crerr.New("season data load failed")
	// ErrPlayerNotFound is returned when a requested player has no row.
	ErrPlayerNotFound = crerr.New("player not found")
)

// DataLoadErrorf builds an ErrDataLoad error. A non-nil cause is attached as a
// secondary error so it shows up in detailed reports.
func DataLoadErrorf(cause error, format string, args ...any) error {
	err := crerr.Wrapf(ErrDataLoad, format, args...)
	if cause != nil {
		err = crerr.WithSecondaryError(err, cause)
	}
	return err
}
