package constants

// BrazilianStates is the set of the 27 valid federative unit codes. Candidate
// UF values are validated against this set before they reach an address.
var BrazilianStates = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {},
	"ES": {}, "GO": {}, "MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {},
	"PB": {}, "PR": {}, "PE": {}, "PI": {}, "RJ": {}, "RN": {}, "RS": {},
	"RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

// IsBrazilianState reports whether code is a valid two-letter state code.
func IsBrazilianState(code string) bool {
	_, ok := BrazilianStates[code]
	return ok
}
