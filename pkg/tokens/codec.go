package tokens

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

type tokenHeader struct {
	Algorithm string `json:"alg"`
	Type      string `json:"typ"`
	KeyID     string `json:"kid,omitempty"`
}

// Sign encodes claims as a three-segment token signed with alg.
func Sign(alg Algorithm, key any, claims any) (string, error) {
	encHeader, err := encodeSegment(tokenHeader{Algorithm: alg.Name(), Type: "JWT"})
	if err != nil {
		return "", fmt.Errorf("failed to encode header: %v", err)
	}
	encClaims, err := encodeSegment(claims)
	if err != nil {
		return "", fmt.Errorf("failed to encode claims: %v", err)
	}

	message := encHeader + "." + encClaims
	signature, err := alg.Sign(key, []byte(message))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %v", err)
	}
	return message + "." + base64.RawURLEncoding.EncodeToString(signature), nil
}

// Verify checks a token's structure and signature with alg and returns the
// raw payload bytes. The payload is not decoded until the signature passes,
// and no signature work happens for a token that is not three segments.
func Verify(alg Algorithm, key any, token string) ([]byte, error) {
	encHeader, encClaims, encSignature, err := splitToken(token)
	if err != nil {
		return nil, err
	}

	header := tokenHeader{}
	if err := decodeSegment(encHeader, &header); err != nil {
		return nil, fmt.Errorf("%w: bad header: %v", ErrMalformedToken, err)
	}
	if header.Type != "" && header.Type != "JWT" {
		return nil, fmt.Errorf("%w: illegal type %q", ErrMalformedToken, header.Type)
	}
	if header.Algorithm != alg.Name() {
		return nil, fmt.Errorf(
			"%w: token algorithm %q, verifier expects %q",
			ErrSignatureMismatch, header.Algorithm, alg.Name(),
		)
	}

	signature, err := base64.RawURLEncoding.DecodeString(encSignature)
	if err != nil {
		return nil, fmt.Errorf("%w: bad signature encoding: %v", ErrMalformedToken, err)
	}

	message := encHeader + "." + encClaims
	if err := alg.Verify(key, []byte(message), signature); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignatureMismatch, err)
	}

	payload, err := base64.RawURLEncoding.DecodeString(encClaims)
	if err != nil {
		return nil, fmt.Errorf("%w: bad claims encoding: %v", ErrMalformedToken, err)
	}
	return payload, nil
}

// KeyID reads the kid of an unverified token header. The provider flow needs
// it to pick a verification key before any verification can happen; nothing
// read here is trusted until Verify passes.
func KeyID(token string) (string, error) {
	encHeader, _, _, err := splitToken(token)
	if err != nil {
		return "", err
	}
	header := tokenHeader{}
	if err := decodeSegment(encHeader, &header); err != nil {
		return "", fmt.Errorf("%w: bad header: %v", ErrMalformedToken, err)
	}
	return header.KeyID, nil
}

func encodeSegment(section any) (string, error) {
	sectionJSON, err := json.Marshal(section)
	if err != nil {
		return "", fmt.Errorf("json marshal failure: %v", err)
	}
	return base64.RawURLEncoding.EncodeToString(sectionJSON), nil
}

func decodeSegment(str string, value any) error {
	bytes, err := base64.RawURLEncoding.DecodeString(str)
	if err != nil {
		return fmt.Errorf("invalid base64 encoding: %v", err)
	}
	if err := json.Unmarshal(bytes, value); err != nil {
		return fmt.Errorf("not valid JSON: %v", err)
	}
	return nil
}

func splitToken(token string) (
	header string,
	claims string,
	signature string,
	err error,
) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		err = fmt.Errorf("%w: expected three segments, found %d", ErrMalformedToken, len(parts))
		return
	}
	header = parts[0]
	claims = parts[1]
	signature = parts[2]
	return
}
