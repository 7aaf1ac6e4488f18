package authority

// tokenObjectKeys are the response fields carrying token objects that the
// domain-normalization rule applies to.
var tokenObjectKeys = []string{"accessToken", "refreshToken", "idRefreshToken"}

// NormalizeTokenPayload applies the domain-normalization rule to a raw
// token object decoded from wire JSON: a missing "domain" attribute is
// set to an explicit null. Client implementations apply this at every
// response boundary before decoding into structs. Idempotent.
func NormalizeTokenPayload(obj map[string]interface{}) map[string]interface{} {
	if obj == nil {
		return nil
	}
	if _, ok := obj["domain"]; !ok {
		obj["domain"] = nil
	}
	return obj
}

// NormalizeResponsePayload applies NormalizeTokenPayload to every token
// object in a raw authority response. Idempotent.
func NormalizeResponsePayload(resp map[string]interface{}) map[string]interface{} {
	if resp == nil {
		return nil
	}
	for _, k := range tokenObjectKeys {
		if tok, ok := resp[k].(map[string]interface{}); ok {
			resp[k] = NormalizeTokenPayload(tok)
		}
	}
	return resp
}

// NormalizeSession replaces a nil user-data mapping with an empty one so
// callers always receive a usable map.
func NormalizeSession(s *SessionInfo) {
	if s.UserDataInJWT == nil {
		s.UserDataInJWT = map[string]interface{}{}
	}
}
