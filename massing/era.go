package massing

// Era is a historical year tag, kept as its own type rather than
// importing layout.Era: massing and layout are independent consumers of
// "a year", and sharing the type would wire an unnecessary dependency
// from building generation onto road generation.
type Era int

// decade buckets the era's roughly-quantized style/roof availability
// windows (Glossary's "Era style list"/"Era roof list" are given as
// decade tags, not a continuous function of year).
type decade int

const (
	decade1890s decade = iota
	decade1910s
	decade1930s
	decade1950s
	decade1970s
	decade1990s
	decade2010s
	decade2030s
)

func (e Era) decade() decade {
	switch {
	case e <= 1900:
		return decade1890s
	case e <= 1920:
		return decade1910s
	case e <= 1940:
		return decade1930s
	case e <= 1960:
		return decade1950s
	case e <= 1980:
		return decade1970s
	case e <= 2000:
		return decade1990s
	case e <= 2020:
		return decade2010s
	default:
		return decade2030s
	}
}

// eraStyles returns e's available style pool, inverted from the
// Glossary's "Era style list" (given per-style decade membership).
func eraStyles(e Era) []Style {
	switch e.decade() {
	case decade1890s:
		return []Style{StyleVictorian}
	case decade1910s:
		return []Style{StyleVictorian, StyleArtDeco}
	case decade1930s:
		return []Style{StyleArtDeco}
	case decade1950s, decade1970s:
		return []Style{StyleModern, StyleBrutalist}
	case decade1990s:
		return []Style{StylePostmodern, StyleContemporary}
	case decade2010s:
		return []Style{StyleModern, StyleContemporary}
	default: // 2030s
		return []Style{StyleContemporary, StyleFuturistic}
	}
}

// eraRoofs returns e's available roof pool, built from the Glossary's
// "Era roof list" narrative (gable/hip/mansard early; flat increasingly
// dominant post-1930; pyramid/barrel transitional; green post-2010).
func eraRoofs(e Era) []RoofType {
	switch e.decade() {
	case decade1890s, decade1910s:
		return []RoofType{RoofGable, RoofHip, RoofMansard}
	case decade1930s:
		return []RoofType{RoofGable, RoofHip, RoofMansard, RoofPyramid, RoofBarrel, RoofFlat}
	case decade1950s, decade1970s, decade1990s:
		return []RoofType{RoofFlat, RoofGable, RoofHip, RoofPyramid, RoofBarrel}
	default: // 2010s, 2030s
		return []RoofType{RoofFlat, RoofGreen, RoofPyramid, RoofBarrel}
	}
}
