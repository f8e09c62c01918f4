package cardgen

// Record is one fully assembled synthetic card: the issuer prefix it was
// built from plus every derived field, all kept as strings so leading
// zeros survive. Records are plain values; the engine hands them out and
// never retains or mutates them afterwards.
type Record struct {
	BIN        string `json:"bin"`
	CardNumber string `json:"card_number"`
	CVV        string `json:"cvv"`
	Month      string `json:"month"`
	Year       string `json:"year"`
}
