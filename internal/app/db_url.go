package app

import (
	"net/url"
	"strings"
)

const preparedBinaryResultParam = "disable_prepared_binary_result"

// postgresDSN turns off binary results for prepared statements unless the
// URL already sets the flag. Pooled proxies reject binary results.
// Key/value DSNs and unparsable input are returned unchanged.
func postgresDSN(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return raw
	}
	q := u.Query()
	if q.Has(preparedBinaryResultParam) {
		return raw
	}
	q.Set(preparedBinaryResultParam, "yes")
	u.RawQuery = q.Encode()
	return u.String()
}

// databaseName extracts the database from a URL or key/value DSN, for
// span attributes. It returns "" when the DSN names none.
func databaseName(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	if u, err := url.Parse(dsn); err == nil && u.Scheme != "" {
		if name := strings.Trim(u.Path, "/ "); name != "" {
			return name
		}
	}

	for _, field := range strings.Fields(dsn) {
		if value, ok := strings.CutPrefix(field, "dbname="); ok {
			if name := strings.Trim(value, `"' `); name != "" {
				return name
			}
		}
	}
	return ""
}
