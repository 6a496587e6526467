package drift

import (
	"strings"

	"esl-manager/core/utils"
)

// remoteKeyAliases lists the remote fields that may carry the article
// binding, in priority order. Platform API versions disagree on the field
// name; the first populated alias wins. The list is closed on purpose:
// guessing over arbitrary fields would correlate unrelated records.
var remoteKeyAliases = []string{
	"articleId",
	"articleID",
	"article_id",
	"articleNumber",
	"itemId",
	"id",
}

// LocalKey derives the correlation key for a local record. ExternalID wins;
// VirtualSpaceID is the fallback for records created before the platform
// assigned an external id. An empty key means the record cannot be
// correlated and is excluded from comparison.
func LocalKey(r LocalRecord) string {
	if key := strings.TrimSpace(r.ExternalID); key != "" {
		return key
	}
	return strings.TrimSpace(r.VirtualSpaceID)
}

// RemoteKey derives the correlation key for a raw vendor record. Values are
// normalized to trimmed strings so numeric and string ids compare equal.
// An empty key means no alias carried a usable value; the record is skipped,
// never treated as an error.
func RemoteKey(r RemoteRecord) string {
	for _, alias := range remoteKeyAliases {
		v, ok := r[alias]
		if !ok || v == nil {
			continue
		}
		if key := strings.TrimSpace(utils.ToString(v)); key != "" {
			return key
		}
	}
	return ""
}
