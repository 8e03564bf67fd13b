// Package uuidcast decodes uuid and uuid[] fields into
// github.com/gofrs/uuid values via the cast hook for OIDs without built-in
// decoders.
package uuidcast

import (
	"github.com/gofrs/uuid"

	"github.com/pgkit/pgcodec"
)

// CastHook returns a pgcodec.CastHookFunc handling the uuid OIDs. Other
// OIDs are delegated to next, or returned as text when next is nil:
//
//	cfg.SetCastHook(uuidcast.CastHook(nil))
func CastHook(next pgcodec.CastHookFunc) pgcodec.CastHookFunc {
	return func(s string, oid uint32) (any, error) {
		switch oid {
		case pgcodec.UUIDOID:
			return uuid.FromString(s)
		case pgcodec.UUIDArrayOID:
			return pgcodec.ParseArrayFunc(s, func(elem string) (any, error) {
				return uuid.FromString(elem)
			}, 0, nil)
		}
		if next != nil {
			return next(s, oid)
		}
		return s, nil
	}
}
