// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package entries

import "slices"

// Entry is a contest participant. Entries are static and identified by Code.
type Entry struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Flag   string `json:"flag"`
	Artist string `json:"artist"`
	Song   string `json:"song"`
	Order  int    `json:"order"` // running order in the final
}

// catalog is kept sorted by running order.
var catalog = []Entry{
	{Code: "no", Name: "Norway", Flag: "🇳🇴", Artist: "Kyle Alessandro", Song: "Lighter", Order: 1},
	{Code: "lu", Name: "Luxembourg", Flag: "🇱🇺", Artist: "Laura Thorn", Song: "La Poupée Monte Le Son", Order: 2},
	{Code: "ee", Name: "Estonia", Flag: "🇪🇪", Artist: "Tommy Cash", Song: "Espresso Macchiato", Order: 3},
	{Code: "il", Name: "Israel", Flag: "🇮🇱", Artist: "Yuval Raphael", Song: "New Day Will Rise", Order: 4},
	{Code: "lt", Name: "Lithuania", Flag: "🇱🇹", Artist: "Katarsis", Song: "Tavo Akys", Order: 5},
	{Code: "es", Name: "Spain", Flag: "🇪🇸", Artist: "Melody", Song: "ESA DIVA", Order: 6},
	{Code: "ua", Name: "Ukraine", Flag: "🇺🇦", Artist: "Ziferblat", Song: "Bird of Pray", Order: 7},
	{Code: "gb", Name: "United Kingdom", Flag: "🇬🇧", Artist: "Remember Monday", Song: "What The Hell Just Happened?", Order: 8},
	{Code: "at", Name: "Austria", Flag: "🇦🇹", Artist: "JJ", Song: "Wasted Love", Order: 9},
	{Code: "is", Name: "Iceland", Flag: "🇮🇸", Artist: "VÆB", Song: "RÓA", Order: 10},
	{Code: "lv", Name: "Latvia", Flag: "🇱🇻", Artist: "Tautumeitas", Song: "Bur Man Laimi", Order: 11},
	{Code: "nl", Name: "Netherlands", Flag: "🇳🇱", Artist: "Claude", Song: "C'est La Vie", Order: 12},
	{Code: "fi", Name: "Finland", Flag: "🇫🇮", Artist: "Erika Vikman", Song: "ICH KOMME", Order: 13},
	{Code: "it", Name: "Italy", Flag: "🇮🇹", Artist: "Lucio Corsi", Song: "Volevo Essere Un Duro", Order: 14},
	{Code: "pl", Name: "Poland", Flag: "🇵🇱", Artist: "Justyna Steczkowska", Song: "GAJA", Order: 15},
	{Code: "de", Name: "Germany", Flag: "🇩🇪", Artist: "Abor & Tynna", Song: "Baller", Order: 16},
	{Code: "gr", Name: "Greece", Flag: "🇬🇷", Artist: "Klavdia", Song: "Asteromáta", Order: 17},
	{Code: "am", Name: "Armenia", Flag: "🇦🇲", Artist: "PARG", Song: "SURVIVOR", Order: 18},
	{Code: "ch", Name: "Switzerland", Flag: "🇨🇭", Artist: "Zoë Më", Song: "Voyage", Order: 19},
	{Code: "mt", Name: "Malta", Flag: "🇲🇹", Artist: "Miriana Conte", Song: "SERVING", Order: 20},
	{Code: "pt", Name: "Portugal", Flag: "🇵🇹", Artist: "NAPA", Song: "Deslocado", Order: 21},
	{Code: "dk", Name: "Denmark", Flag: "🇩🇰", Artist: "Sissal", Song: "Hallucination", Order: 22},
	{Code: "se", Name: "Sweden", Flag: "🇸🇪", Artist: "KAJ", Song: "Bara Bada Bastu", Order: 23},
	{Code: "fr", Name: "France", Flag: "🇫🇷", Artist: "Louane", Song: "maman", Order: 24},
	{Code: "sm", Name: "San Marino", Flag: "🇸🇲", Artist: "Gabry Ponte", Song: "Tutta L'Italia", Order: 25},
	{Code: "al", Name: "Albania", Flag: "🇦🇱", Artist: "Shkodra Elektronike", Song: "Zjerm", Order: 26},
}

var byCode = func() map[string]Entry {
	m := make(map[string]Entry, len(catalog))
	for _, e := range catalog {
		m[e.Code] = e
	}
	return m
}()

// All returns a copy of the catalog in running order.
func All() []Entry {
	return slices.Clone(catalog)
}

// Codes returns every entry code in running order.
func Codes() []string {
	codes := make([]string, len(catalog))
	for i, e := range catalog {
		codes[i] = e.Code
	}
	return codes
}

// Lookup finds an entry by code.
func Lookup(code string) (Entry, bool) {
	e, ok := byCode[code]
	return e, ok
}

// Valid reports whether code names a known entry.
func Valid(code string) bool {
	_, ok := byCode[code]
	return ok
}

// Name returns the display name for code, falling back to the code itself.
func Name(code string) string {
	if e, ok := byCode[code]; ok {
		return e.Name
	}
	return code
}

// Count is the number of entries in the final.
func Count() int {
	return len(catalog)
}
