package transform

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/manglekit/mangle/pkg/rng"
	"github.com/manglekit/mangle/pkg/tables"
)

// The JWT family mutates compact-form tokens (header.payload.signature)
// into adversarial variants for verifier testing. Inputs that do not parse
// as a JWT pass through unchanged; these transformations never fail.

func parseToken(input string) (*jwt.Token, []string, bool) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	token, parts, err := parser.ParseUnverified(input, jwt.MapClaims{})
	if err != nil || len(parts) != 3 {
		return nil, nil, false
	}
	return token, parts, true
}

func encodeSegment(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

// JWTHeaderManipulation mutates the token header: typ respellings, an
// injected kid claim, or a duplicated alg-adjacent field. The signature is
// left in place so only the header mutation is under test.
func JWTHeaderManipulation(input string) string {
	return JWTHeaderManipulationWith(rng.New(), input)
}

// JWTHeaderManipulationWith is JWTHeaderManipulation with an explicit
// randomness source.
func JWTHeaderManipulationWith(r *rng.Rng, input string) string {
	token, parts, ok := parseToken(input)
	if !ok {
		return input
	}
	header := token.Header
	switch r.Intn(3) {
	case 0:
		header["typ"] = rng.Pick(r, []string{"JWT", "jwt", "Jwt", "JWT "})
	case 1:
		header["kid"] = "../../" + randomSuffix(r)
	default:
		header["cty"] = "JWT"
	}
	seg := encodeSegment(header)
	if seg == "" {
		return input
	}
	return seg + "." + parts[1] + "." + parts[2]
}

// JWTPayloadObfuscate re-encodes the claims with a mutated value: admin
// flag flips, issuer case mutation, or an injected claim.
func JWTPayloadObfuscate(input string) string {
	return JWTPayloadObfuscateWith(rng.New(), input)
}

// JWTPayloadObfuscateWith is JWTPayloadObfuscate with an explicit
// randomness source.
func JWTPayloadObfuscateWith(r *rng.Rng, input string) string {
	token, parts, ok := parseToken(input)
	if !ok {
		return input
	}
	claims, _ := token.Claims.(jwt.MapClaims)
	if claims == nil {
		return input
	}
	switch r.Intn(3) {
	case 0:
		claims["admin"] = true
	case 1:
		if sub, ok := claims["sub"].(string); ok {
			claims["sub"] = CaseSwapWith(r, sub)
		} else {
			claims["sub"] = "admin"
		}
	default:
		claims["role"] = rng.Pick(r, []string{"admin", "root", "superuser"})
	}
	seg := encodeSegment(claims)
	if seg == "" {
		return input
	}
	return parts[0] + "." + seg + "." + parts[2]
}

// JWTAlgorithmConfusion rewrites the alg header to a randomly chosen
// downgrade or cross-family target (none, HS256 for an RS256 token, …).
func JWTAlgorithmConfusion(input string) string {
	return JWTAlgorithmConfusionWith(rng.New(), input)
}

// JWTAlgorithmConfusionWith is JWTAlgorithmConfusion with an explicit
// randomness source.
func JWTAlgorithmConfusionWith(r *rng.Rng, input string) string {
	token, parts, ok := parseToken(input)
	if !ok {
		return input
	}
	header := token.Header
	current, _ := header["alg"].(string)
	next := rng.Pick(r, tables.JWTAlgorithms)
	for next == current {
		next = rng.Pick(r, tables.JWTAlgorithms)
	}
	header["alg"] = next
	seg := encodeSegment(header)
	if seg == "" {
		return input
	}
	sig := parts[2]
	if strings.EqualFold(next, "none") {
		sig = ""
	}
	return seg + "." + parts[1] + "." + sig
}

// JWTSignatureBypass mutates the signature segment: stripped entirely,
// truncated, or replaced with random bytes of the same length.
func JWTSignatureBypass(input string) string {
	return JWTSignatureBypassWith(rng.New(), input)
}

// JWTSignatureBypassWith is JWTSignatureBypass with an explicit randomness
// source.
func JWTSignatureBypassWith(r *rng.Rng, input string) string {
	_, parts, ok := parseToken(input)
	if !ok {
		return input
	}
	sig := parts[2]
	switch r.Intn(3) {
	case 0:
		sig = ""
	case 1:
		if len(sig) > 1 {
			sig = sig[:len(sig)/2]
		}
	default:
		var b strings.Builder
		for i := 0; i < len(sig); i++ {
			b.WriteByte(tables.AlphaNum[r.Intn(len(tables.AlphaNum))])
		}
		sig = b.String()
	}
	return parts[0] + "." + parts[1] + "." + sig
}
