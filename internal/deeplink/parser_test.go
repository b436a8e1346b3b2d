package deeplink

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"tonwise/internal/model"
)

const (
	friendlyAddress = "EQBvW8Z5huBkMJYdnfAEM5JqTNkuWX3diqYENkWsIL0XggGG"
	rawAddress      = "0:83dfd552e63729b472fcbcc8c45ebcc6691702558b68ec7527e1ba403a0f31a8"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	return NewParser(Config{})
}

func TestParseValidFriendlyLink(t *testing.T) {
	parser := newTestParser(t)

	result := parser.Parse("ton://transfer/" + friendlyAddress + "?amount=1000000000&text=visit%20https://evil.com")
	if !result.Valid {
		t.Fatalf("expected valid result: %+v", result)
	}
	if result.Destination != friendlyAddress {
		t.Fatalf("destination mismatch: %q", result.Destination)
	}
	if !result.Amount.Equal(decimal.NewFromInt(1)) {
		t.Fatalf("amount mismatch: %s", result.Amount)
	}
	if strings.Contains(result.Comment, "https://") {
		t.Fatalf("comment still clickable: %q", result.Comment)
	}
	if !strings.Contains(result.Comment, "hxxps://evil[.]com") {
		t.Fatalf("comment not defanged: %q", result.Comment)
	}
	if result.HasPayload {
		t.Fatalf("unexpected payload flag: %+v", result)
	}
}

func TestParseRawFormAddress(t *testing.T) {
	parser := newTestParser(t)

	result := parser.Parse("ton://transfer/" + rawAddress)
	if !result.Valid || result.Destination != rawAddress {
		t.Fatalf("raw address rejected: %+v", result)
	}
}

func TestParseNoTransferMarker(t *testing.T) {
	parser := newTestParser(t)

	result := parser.Parse("https://example.com/pay?amount=5")
	if result.Valid {
		t.Fatalf("expected invalid result")
	}
	if result.Warning != "" {
		t.Fatalf("missing marker is not an error, got warning %q", result.Warning)
	}
	if result.Destination != "" {
		t.Fatalf("destination must be empty: %q", result.Destination)
	}
}

func TestParseMalformedAddress(t *testing.T) {
	parser := newTestParser(t)

	result := parser.Parse("ton://transfer/???")
	if result.Valid {
		t.Fatalf("garbage address accepted: %+v", result)
	}
	if !strings.Contains(result.Warning, "invalid or malformed address") {
		t.Fatalf("warning mismatch: %q", result.Warning)
	}
	if result.Destination != "" {
		t.Fatalf("destination set on invalid result: %q", result.Destination)
	}
}

func TestParseLooseAddressMatch(t *testing.T) {
	parser := newTestParser(t)

	result := parser.Parse("ton://transfer/((" + friendlyAddress + "))?amount=1")
	if !result.Valid {
		t.Fatalf("expected loose match to be accepted: %+v", result)
	}
	if result.Destination != friendlyAddress {
		t.Fatalf("loose match destination mismatch: %q", result.Destination)
	}
	if !strings.Contains(result.Warning, "non-standard URL structure") {
		t.Fatalf("loose match must warn: %q", result.Warning)
	}
}

func TestParseGatewayRewrite(t *testing.T) {
	parser := newTestParser(t)

	result := parser.Parse("https://tonkeeper.com/transfer/" + friendlyAddress + "?amount=2000000000")
	if !result.Valid || result.Destination != friendlyAddress {
		t.Fatalf("gateway link rejected: %+v", result)
	}
	if !result.Amount.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("amount mismatch: %s", result.Amount)
	}
}

func TestParseExtraGatewayFromConfig(t *testing.T) {
	parser := NewParser(Config{GatewayMap: map[string]string{
		"https://pay.example.org/transfer/": "ton://transfer/",
	}})

	result := parser.Parse("https://pay.example.org/transfer/" + friendlyAddress)
	if !result.Valid {
		t.Fatalf("configured gateway rejected: %+v", result)
	}
}

func TestParseDecimalAmount(t *testing.T) {
	parser := newTestParser(t)

	result := parser.Parse("ton://transfer/" + friendlyAddress + "?amount=1.5")
	if !result.Amount.Equal(decimal.RequireFromString("1.5")) {
		t.Fatalf("decimal amount mismatch: %s", result.Amount)
	}
}

func TestParseAmountLastOccurrenceWins(t *testing.T) {
	parser := newTestParser(t)

	result := parser.Parse("ton://transfer/" + friendlyAddress + "?amount=1000000000&amount=3000000000")
	if !result.Amount.Equal(decimal.NewFromInt(3)) {
		t.Fatalf("last amount should win: %s", result.Amount)
	}
}

func TestParseAmountGarbageLeavesDefault(t *testing.T) {
	parser := newTestParser(t)

	result := parser.Parse("ton://transfer/" + friendlyAddress + "?amount=lots&text=hi")
	if !result.Amount.IsZero() {
		t.Fatalf("unparseable amount must stay zero: %s", result.Amount)
	}
	if !result.Valid {
		t.Fatalf("amount failure must not abort the stage: %+v", result)
	}
	if result.Comment != "hi" {
		t.Fatalf("later params lost: %+v", result)
	}
}

func TestParseBinaryPayload(t *testing.T) {
	parser := newTestParser(t)

	result := parser.Parse("ton://transfer/" + friendlyAddress + "?bin=te6ccgEBAQEA")
	if !result.HasPayload || result.PayloadKind != model.PayloadContractCall {
		t.Fatalf("payload not classified: %+v", result)
	}
	if !strings.Contains(result.Warning, "binary payload detected") {
		t.Fatalf("payload warning missing: %q", result.Warning)
	}
}

func TestParseBodyAliasSetsPayload(t *testing.T) {
	parser := newTestParser(t)

	result := parser.Parse("ton://transfer/" + friendlyAddress + "?body=te6ccgEBAQEA")
	if !result.HasPayload || result.PayloadKind != model.PayloadContractCall {
		t.Fatalf("body alias not recognized: %+v", result)
	}
}

func TestParseStateInitUpgradesKind(t *testing.T) {
	parser := newTestParser(t)

	result := parser.Parse("ton://transfer/" + friendlyAddress + "?init=te6ccgEBAQEA")
	if result.PayloadKind != model.PayloadStateInit {
		t.Fatalf("init alone should classify as state init: %+v", result)
	}

	result = parser.Parse("ton://transfer/" + friendlyAddress + "?bin=aa&init=bb")
	if result.PayloadKind != model.PayloadBoth {
		t.Fatalf("bin+init should classify as both: %+v", result)
	}
	if !strings.Contains(result.Warning, "binary payload detected") ||
		!strings.Contains(result.Warning, "state init present") {
		t.Fatalf("warnings must concatenate, not overwrite: %q", result.Warning)
	}
}

func TestParseStripsControlCharacters(t *testing.T) {
	parser := newTestParser(t)

	link := "ton://trans\x00fer/" + friendlyAddress[:10] + "\t" + friendlyAddress[10:] + "?amount=1000000000"
	result := parser.Parse(link)
	if !result.Valid || result.Destination != friendlyAddress {
		t.Fatalf("control characters not stripped: %+v", result)
	}
}

func TestParseNeverPanics(t *testing.T) {
	parser := newTestParser(t)

	hostile := []string{
		"",
		"?",
		"transfer/",
		"ton://transfer/",
		"ton://transfer/?amount=&text=",
		"%zz%%%",
		strings.Repeat("transfer/", 5000),
		"ton://transfer/" + strings.Repeat("\xff", 100),
		"ton://transfer/" + friendlyAddress + "?" + strings.Repeat("&", 4096),
		"\x00\x01\x02\x7f",
	}
	for _, link := range hostile {
		result := parser.Parse(link)
		if result.Valid && result.Destination == "" {
			t.Fatalf("valid result without destination for %q", link)
		}
	}
}

func TestParseCaseInsensitiveMarker(t *testing.T) {
	parser := newTestParser(t)

	result := parser.Parse("ton://TRANSFER/" + friendlyAddress)
	if !result.Valid {
		t.Fatalf("marker search must be case-insensitive: %+v", result)
	}
}

func TestParseMarkerOffsetAfterWideLowercase(t *testing.T) {
	parser := newTestParser(t)

	// U+0130 grows from two bytes to three under ToLower; the marker offset
	// must be computed against the original bytes.
	result := parser.Parse("ton://" + strings.Repeat("İ", 4) + "transfer/" + friendlyAddress)
	if !result.Valid || result.Destination != friendlyAddress {
		t.Fatalf("marker offset misaligned: %+v", result)
	}
	if strings.Contains(result.Warning, "parser fault") {
		t.Fatalf("fault recovery triggered: %q", result.Warning)
	}
}

func TestParseLiteralPlusInComment(t *testing.T) {
	parser := newTestParser(t)

	result := parser.Parse("ton://transfer/" + friendlyAddress + "?text=1+1")
	if result.Comment != "1+1" {
		t.Fatalf("literal plus must survive decoding: %q", result.Comment)
	}
}
