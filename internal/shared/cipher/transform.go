package cipher

// Transform применяет шифр kind к тексту в направлении dir.
//
// Ключ передаётся строкой: для caesar и railfence он разбирается как целое число
// (иначе ErrInvalidKey), для transposition и playfair используется как слово.
func Transform(kind Kind, dir Direction, text, key string) (string, error) {
	if dir != Encrypt && dir != Decrypt {
		return "", ErrUnknownDirection
	}

	switch kind {
	case KindCaesar:
		return CaesarKey(text, key, dir)
	case KindRailFence:
		rails, err := parseIntKey(key)
		if err != nil {
			return "", err
		}
		if dir == Decrypt {
			return RailFenceDecrypt(text, rails)
		}
		return RailFenceEncrypt(text, rails)
	case KindTransposition:
		if dir == Decrypt {
			return TranspositionDecrypt(text, key)
		}
		return TranspositionEncrypt(text, key)
	case KindPlayfair:
		return Playfair(text, key, dir)
	}
	return "", ErrUnknownCipher
}
