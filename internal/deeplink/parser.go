package deeplink

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"tonwise/internal/model"
	"tonwise/internal/sanitize"
)

// transferMarker is the intent marker a transfer link must carry. A link
// without it is simply not a transfer link, which is not an error.
const transferMarker = "transfer/"

const warningSeparator = "; "

// Friendly addresses are 48 characters of the URL-safe base64 alphabet; raw
// addresses are workchain 0 or -1/1 followed by 64 hex characters.
var (
	friendlyAddressRe = regexp.MustCompile(`^[A-Za-z0-9_-]{48}$`)
	rawAddressRe      = regexp.MustCompile(`^-?[01]:[0-9a-fA-F]{64}$`)

	looseFriendlyRe = regexp.MustCompile(`[A-Za-z0-9_-]{48}`)
	looseRawRe      = regexp.MustCompile(`-?[01]:[0-9a-fA-F]{64}`)
)

// defaultGateways maps known wallet-web mirror prefixes to the canonical
// scheme so the later stages only see one URI shape.
var defaultGateways = map[string]string{
	"https://tonkeeper.com/transfer/":     "ton://transfer/",
	"https://app.tonkeeper.com/transfer/": "ton://transfer/",
}

// Config configures parser behavior.
type Config struct {
	// GatewayMap adds mirror-prefix rewrites on top of the built-in ones.
	GatewayMap map[string]string
}

// Parser turns raw transfer deep links into validated parse results.
type Parser struct {
	gateways map[string]string
}

// NewParser builds a link parser.
func NewParser(cfg Config) *Parser {
	gateways := make(map[string]string, len(defaultGateways)+len(cfg.GatewayMap))
	for prefix, canonical := range defaultGateways {
		gateways[prefix] = canonical
	}
	for prefix, canonical := range cfg.GatewayMap {
		if prefix == "" || canonical == "" {
			continue
		}
		gateways[prefix] = canonical
	}
	return &Parser{gateways: gateways}
}

// Parse runs the staged pipeline over a raw link. It never panics: any
// internal fault is absorbed into the warning of an invalid result.
func (p *Parser) Parse(raw string) (result model.LinkParseResult) {
	defer func() {
		if r := recover(); r != nil {
			result = model.LinkParseResult{
				Warning: fmt.Sprintf("parser fault: %v", r),
			}
		}
	}()

	if raw == "" {
		return result
	}

	link := p.sanitizeLink(raw)

	idx := indexTransferMarker(link)
	if idx == -1 {
		return result
	}
	tail := link[idx+len(transferMarker):]

	addressPart, query, _ := strings.Cut(tail, "?")
	address, warning, ok := extractAddress(strings.ReplaceAll(addressPart, "/", ""))
	if warning != "" {
		result.Warning = appendWarning(result.Warning, warning)
	}
	if !ok {
		return result
	}
	result.Destination = address
	result.Valid = true

	params := parseQuery(query)

	if rawAmount, ok := params["amount"]; ok {
		if amount, ok := parseAmount(rawAmount); ok {
			result.Amount = amount
		}
	}
	if text, ok := params["text"]; ok && text != "" {
		result.Comment = sanitize.Defang(text)
	}

	_, hasBin := params["bin"]
	_, hasBody := params["body"]
	if hasBin || hasBody {
		result.HasPayload = true
		result.PayloadKind = model.PayloadContractCall
		result.Warning = appendWarning(result.Warning, "binary payload detected (potential smart contract call)")
	}
	if _, hasInit := params["init"]; hasInit {
		result.HasPayload = true
		if result.PayloadKind == model.PayloadContractCall {
			result.PayloadKind = model.PayloadBoth
		} else {
			result.PayloadKind = model.PayloadStateInit
		}
		result.Warning = appendWarning(result.Warning, "state init present (contract deployment)")
	}

	return result
}

// indexTransferMarker finds the marker case-insensitively without lowering
// the whole link first. Lowering can change byte lengths (U+0130 lowers to
// two runes) and would misalign the returned offset.
func indexTransferMarker(link string) int {
	for i := 0; i+len(transferMarker) <= len(link); i++ {
		if strings.EqualFold(link[i:i+len(transferMarker)], transferMarker) {
			return i
		}
	}
	return -1
}

// sanitizeLink percent-decodes, normalizes, strips control characters and
// whitespace, and rewrites known web-gateway mirrors to the canonical scheme.
func (p *Parser) sanitizeLink(raw string) string {
	// PathUnescape, not QueryUnescape: a literal + in a value must survive
	// rather than turn into a space and be stripped.
	link := raw
	if decoded, err := url.PathUnescape(raw); err == nil {
		link = decoded
	}
	link = norm.NFKC.String(link)
	link = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, link)

	for prefix, canonical := range p.gateways {
		if strings.Contains(link, prefix) {
			link = strings.Replace(link, prefix, canonical, 1)
		}
	}
	return link
}

// extractAddress validates the token against the address grammar. The whole
// token is anchored first; only on failure is a loose substring accepted,
// and then with a non-fatal warning.
func extractAddress(token string) (address, warning string, ok bool) {
	if friendlyAddressRe.MatchString(token) || rawAddressRe.MatchString(token) {
		return token, "", true
	}
	if found := looseFriendlyRe.FindString(token); found != "" {
		return found, "non-standard URL structure detected", true
	}
	if found := looseRawRe.FindString(token); found != "" {
		return found, "non-standard URL structure detected", true
	}
	return "", "invalid or malformed address", false
}

// parseQuery splits a query string without rejecting malformed pairs. The
// link was percent-decoded as a whole in the sanitize stage, so values are
// taken as-is. Repeated keys resolve last-wins.
func parseQuery(query string) map[string]string {
	params := make(map[string]string)
	if query == "" {
		return params
	}
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key = strings.ToLower(key)
		if key == "" {
			continue
		}
		params[key] = value
	}
	return params
}

// parseAmount reads a transfer amount. A bare integer is a count of nanotons
// and is shifted down nine decimal places exactly; a value with a decimal
// point is already in whole coins. Unparseable values report ok=false and
// leave the amount at its default.
func parseAmount(raw string) (decimal.Decimal, bool) {
	if raw == "" {
		return decimal.Zero, false
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	if strings.Contains(raw, ".") {
		return value, true
	}
	return value.Shift(-9), true
}

func appendWarning(existing, warning string) string {
	if existing == "" {
		return warning
	}
	return existing + warningSeparator + warning
}
