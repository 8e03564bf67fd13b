package pgcodec

// Hstore is a decoded hstore value. A nil value pointer is an hstore NULL,
// distinct from an empty string.
type Hstore map[string]*string

// hstoreParser walks one hstore literal. Keys and values are quoted with
// backslash escapes or bare; bare keys end at '=' or space, bare values at
// ',' or space. A bare value spelled exactly NULL is the null sentinel;
// unlike arrays the check is case sensitive, matching the hstore
// extension's own output rules.
type hstoreParser struct {
	src string
	pos int
}

// ParseHstore parses an hstore literal in hstore output syntax
// (`"k"=>"v", ...`) into an Hstore. cfg may be nil for the defaults.
func ParseHstore(src string, cfg *Config) (Hstore, error) {
	snap := cfg.snapshot()
	p := &hstoreParser{src: src}
	result := Hstore{}

	for {
		p.skipSpaces()
		if p.atEnd() {
			return result, nil
		}

		key, _, err := p.scanWord(false)
		if err != nil {
			return nil, err
		}
		keyText, err := hstoreText(key, snap)
		if err != nil {
			return nil, err
		}

		p.skipSpaces()
		if !p.consume('=') || !p.consume('>') {
			return nil, &SyntaxError{Type: "hstore", Msg: "Invalid characters after key", Literal: src}
		}
		p.skipSpaces()

		val, isNull, err := p.scanWord(true)
		if err != nil {
			return nil, err
		}
		if isNull {
			result[keyText] = nil
		} else {
			valText, err := hstoreText(val, snap)
			if err != nil {
				return nil, err
			}
			result[keyText] = &valText
		}

		p.skipSpaces()
		if p.atEnd() {
			return result, nil
		}
		if !p.consume(',') {
			return nil, &SyntaxError{Type: "hstore", Msg: "Invalid characters after value", Literal: src}
		}
		p.skipSpaces()
		if p.atEnd() {
			return nil, &SyntaxError{Type: "hstore", Msg: "Missing entry", Literal: src}
		}
	}
}

func (p *hstoreParser) atEnd() bool {
	return p.pos >= len(p.src)
}

func (p *hstoreParser) skipSpaces() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *hstoreParser) consume(ch byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == ch {
		p.pos++
		return true
	}
	return false
}

// scanWord reads one key or value. isValue selects the bare terminator set
// and enables NULL-sentinel detection.
func (p *hstoreParser) scanWord(isValue bool) (string, bool, error) {
	src, s := p.src, p.pos
	end := len(src)

	if s < end && src[s] == '"' {
		s++
		start := s
		escaped := false
		for s < end && src[s] != '"' {
			if src[s] == '\\' {
				s++
				if s >= end {
					break
				}
				escaped = true
			}
			s++
		}
		if s >= end {
			return "", false, &SyntaxError{Type: "hstore", Msg: "Unterminated quote", Literal: src}
		}
		word := src[start:s]
		p.pos = s + 1
		if escaped {
			word = unescapeBackslashes(word)
		}
		return word, false, nil
	}

	start := s
	escaped := false
	for s < end {
		if isValue && (src[s] == ',' || src[s] == ' ') {
			break
		}
		if !isValue && (src[s] == '=' || src[s] == ' ') {
			break
		}
		if src[s] == '\\' {
			s++
			if s >= end {
				break
			}
			escaped = true
		}
		s++
	}
	if s == start {
		msg := "Missing key"
		if isValue {
			msg = "Missing value"
		}
		return "", false, &SyntaxError{Type: "hstore", Msg: msg, Literal: src}
	}
	word := src[start:s]
	p.pos = s
	if isValue && !escaped && word == "NULL" {
		return "", true, nil
	}
	if escaped {
		word = unescapeBackslashes(word)
	}
	return word, false, nil
}

func hstoreText(word string, snap config) (string, error) {
	s, ok := snap.encoding.decode([]byte(word))
	if !ok {
		return "", &EncodingError{Encoding: snap.encoding.name}
	}
	return s, nil
}
