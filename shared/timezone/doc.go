// Package timezone keeps every timestamp the service produces in one
// configured location.
//
//	now := timezone.Now()
//	formatted := timezone.Format(someTime, constant.DateFormat)
//
// The location comes from the APP_TIMEZONE environment variable and is
// loaded when the package is imported. Use IANA names such as "UTC" or
// "Asia/Jakarta"; anything unparseable falls back to UTC.
package timezone
