// Package palette turns a set of colours into the five colour roles of a drift
// scene and generates hue-family palettes from the seeded PRNG.
//
// # Roles
//
// [Assign] orders a palette with a two-stage stable sort. The first key is the
// CIE94 distance of each colour to white, the second the absolute difference of
// its L* lightness to one reference member of the palette. Both stages use the
// same [Order]. Ties keep the original palette order, so the result depends
// only on the palette, the reference index and the order.
//
// The first five ranks become the [Background], [Bottom], [Top], [Even] and
// [Odd] roles:
//
//	roles, err := palette.Assign(palette.Curated()[0], 2, palette.Ascending)
//	bg := roles.Color(palette.Background)
//
// # Generated palettes
//
// [Generate] draws an anchor hue inside one of six hue families and fills the
// remaining members with hues 0.3 to 0.6 turns away from it. Every draw comes
// from the supplied [prng.Rand], so the result is reproducible per seed.
package palette
