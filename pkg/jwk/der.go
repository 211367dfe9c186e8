package jwk

// ASN.1 DER tags used by the PKIX public key structure.
const (
	tagInteger   = 0x02
	tagBitString = 0x03
	tagSequence  = 0x30
)

// rsaAlgorithmIdentifier is the DER encoding of
// AlgorithmIdentifier { rsaEncryption (1.2.840.113549.1.1.1), NULL }.
// The bytes never vary for RSA keys, so they are fixed rather than built.
var rsaAlgorithmIdentifier = []byte{
	0x30, 0x0d,
	0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01,
	0x05, 0x00,
}

// encodeLength renders a DER definite-form length.
//
// Values below 0x80 fit the short form: the length itself in one byte.
// Everything else uses the long form: a count byte with the high bit set
// (0x80 | number of length bytes) followed by the length in big-endian
// bytes with no leading zeros.
func encodeLength(n int) []byte {
	if n < 0x80 {
		return []byte{byte(n)}
	}

	var lenBytes []byte
	for v := n; v > 0; v >>= 8 {
		lenBytes = append([]byte{byte(v)}, lenBytes...)
	}
	return append([]byte{0x80 | byte(len(lenBytes))}, lenBytes...)
}

// appendTLV appends one tag-length-value element to dst.
func appendTLV(dst []byte, tag byte, value []byte) []byte {
	dst = append(dst, tag)
	dst = append(dst, encodeLength(len(value))...)
	return append(dst, value...)
}

// unsignedInteger returns the INTEGER value bytes for an unsigned magnitude.
// DER reads the leading bit as a sign, so a magnitude whose first byte has
// the high bit set gets a 0x00 prepended; without it the modulus decodes as
// a negative number and parsers reject the key.
func unsignedInteger(magnitude []byte) []byte {
	if magnitude[0]&0x80 != 0 {
		padded := make([]byte, 0, len(magnitude)+1)
		padded = append(padded, 0x00)
		return append(padded, magnitude...)
	}
	return magnitude
}

// publicKeyDER assembles a PKIX SubjectPublicKeyInfo structure from the raw
// big-endian modulus and exponent:
//
//	SEQUENCE {
//	    AlgorithmIdentifier { rsaEncryption, NULL }
//	    BIT STRING {
//	        SEQUENCE {
//	            INTEGER n
//	            INTEGER e
//	        }
//	    }
//	}
//
// The BIT STRING value carries a leading 0x00 byte recording zero unused
// bits before the wrapped key sequence.
func publicKeyDER(n, e []byte) []byte {
	var rsaKey []byte
	rsaKey = appendTLV(rsaKey, tagInteger, unsignedInteger(n))
	rsaKey = appendTLV(rsaKey, tagInteger, unsignedInteger(e))
	keySequence := appendTLV(nil, tagSequence, rsaKey)

	bits := make([]byte, 0, len(keySequence)+1)
	bits = append(bits, 0x00)
	bits = append(bits, keySequence...)

	var info []byte
	info = append(info, rsaAlgorithmIdentifier...)
	info = appendTLV(info, tagBitString, bits)

	return appendTLV(nil, tagSequence, info)
}
