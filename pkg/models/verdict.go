package models

import "strings"

// Verdict is the normalized outcome token emitted by auditing roles.
type Verdict string

// Normalized verdicts.
const (
	VerdictApprove Verdict = "APPROVE"
	VerdictRevise  Verdict = "REVISE"
	VerdictReject  Verdict = "REJECT"
	VerdictPass    Verdict = "PASS"
	VerdictFail    Verdict = "FAIL"
	VerdictSkip    Verdict = "SKIP"
)

// approveTokens and reviseTokens define the normalization classes:
// any approve-class token collapses to approve semantics and any
// revise-class token to revise semantics when routing successors.
var (
	approveTokens = map[string]bool{
		"APPROVE": true, "SHIP": true, "DONE": true, "PASS": true,
	}
	reviseTokens = map[string]bool{
		"REJECT": true, "REVISE": true, "HOLD": true, "NEED_INFO": true, "FAIL": true,
	}
)

// NormalizeVerdict maps a raw token to its verdict class. The second
// return is false when the token belongs to neither class.
func NormalizeVerdict(raw string) (Verdict, bool) {
	token := strings.ToUpper(strings.TrimSpace(raw))
	if approveTokens[token] {
		return VerdictApprove, true
	}
	if reviseTokens[token] {
		return VerdictRevise, true
	}
	return "", false
}

// IsApproveClass reports whether v collapses to approve semantics.
func (v Verdict) IsApproveClass() bool {
	return approveTokens[string(v)]
}

// IsReviseClass reports whether v collapses to revise semantics.
func (v Verdict) IsReviseClass() bool {
	return reviseTokens[string(v)]
}
