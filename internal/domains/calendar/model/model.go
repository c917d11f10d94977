package model

import (
	"profmeet/shared/model"
)

const (
	TableName  = "calendar_credentials"
	EntityName = "calendar credential"

	FieldEmail        = "email"
	FieldAccessToken  = "access_token"
	FieldRefreshToken = "refresh_token"
	FieldExpiryMillis = "expiry_millis"
)

// Credential is the stored OAuth2 token pair for a linked calendar
// account, keyed by the owner's email. No row means the calendar is not
// linked.
type Credential struct {
	Email        string `db:"email"`
	AccessToken  string `db:"access_token"`
	RefreshToken string `db:"refresh_token"`
	ExpiryMillis int64  `db:"expiry_millis"`
	model.Metadata
}
