package validx

import "strings"

var (
	gmailDomains   = map[string]bool{"gmail.com": true, "googlemail.com": true}
	outlookDomains = map[string]bool{"hotmail.com": true, "live.com": true, "outlook.com": true, "msn.com": true}
	icloudDomains  = map[string]bool{"icloud.com": true, "me.com": true, "mac.com": true}
	yahooDomains   = map[string]bool{"yahoo.com": true, "ymail.com": true, "rocketmail.com": true}
)

// NormalizeEmail canonicalises an address so equivalent mailboxes compare
// equal: the whole address is lower-cased, gmail drops dots and "+tag"
// suffixes (googlemail becomes gmail), outlook and icloud drop "+tag" and
// yahoo drops "-tag". Strings without a single "@" are returned trimmed and
// lower-cased.
func NormalizeEmail(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return s
	}
	local, domain := s[:at], s[at+1:]

	switch {
	case gmailDomains[domain]:
		local = stripTag(local, "+")
		local = strings.ReplaceAll(local, ".", "")
		domain = "gmail.com"
	case outlookDomains[domain], icloudDomains[domain]:
		local = stripTag(local, "+")
	case yahooDomains[domain]:
		local = stripTag(local, "-")
	}

	if local == "" {
		return s
	}
	return local + "@" + domain
}

func stripTag(local, sep string) string {
	before, _, _ := strings.Cut(local, sep)
	return before
}
