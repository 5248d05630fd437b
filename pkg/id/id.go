package id

import (
	"crypto/md5"
	"io"

	foxuuid "github.com/fox-one/pkg/uuid"
	"github.com/gofrs/uuid"
)

// GenTraceID new random traceID
func GenTraceID() string {
	return foxuuid.New()
}

// TraceIDFrom stable traceID from text
func TraceIDFrom(text string) string {
	return UUIDFromString(text)
}

// UUIDByName derive a uuid from namespace uuidStr and name, traceIDs of
// transfers that belong to one operation are derived this way
func UUIDByName(uuidStr, name string) string {
	if _, err := uuid.FromString(uuidStr); err != nil {
		uuidStr = UUIDFromString(uuidStr)
	}

	return foxuuid.Modify(uuidStr, name)
}

// UUIDFromString md5 based uuid of text
func UUIDFromString(text string) string {
	h := md5.New()
	io.WriteString(h, text)
	sum := h.Sum(nil)
	sum[6] = (sum[6] & 0x0f) | 0x30
	sum[8] = (sum[8] & 0x3f) | 0x80
	return uuid.FromBytesOrNil(sum).String()
}
