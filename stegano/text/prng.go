package text

/*
 * L'Ecuyer's combined generator with a Bays-Durham shuffle on the back
 * end. Both linear congruential generators are stepped with Schrage's
 * method, so no intermediate product leaves 32 bits.
 *
 * The generator only shapes punctuation and paragraphs of the cover
 * text; it carries no payload bits and is not cryptographically secure.
 * An LEcuyer value belongs to a single Hide call and must not be shared
 * between goroutines.
 *
 *   Bays, C. and S. D. Durham. ACM Trans. Math. Software 2 (1976) 59-64.
 *   L'Ecuyer, P. Communications of the ACM 31 (1988) 742-774.
 *   Schrage, L. ACM Trans. Math. Software 5 (1979) 132-138.
 */
const (
	gen1Mul = 40014
	gen1Quo = 53668
	gen1Rem = 12211
	gen1Mod = 2147483563

	gen2Mul = 40692
	gen2Quo = 52774
	gen2Rem = 3791
	gen2Mod = 2147483399

	seedMask    = 0x7FFFFFFF
	shuffleSize = 32
	warmup      = 19
	// maps a state in [0, gen1Mod) onto a shuffle table slot
	shuffleDiv = 67108862
)

type LEcuyer struct {
	gen1    int32
	gen2    int32
	state   int32
	shuffle [shuffleSize]int32
}

// schrage computes a*old mod m for old in [0, m).
func schrage(old, a, q, r, m int32) int32 {
	k := old / q
	t := a*(old-k*q) - k*r
	if t < 0 {
		t += m
	}
	return t
}

// DegenerateSeed reports whether seed leaves both generators stuck at
// zero, which turns every draw into 0.
func DegenerateSeed(seed int64) bool {
	return uint32(seed)&seedMask == 0
}

// NewLEcuyer seeds both generators with the low 31 bits of seed.
func NewLEcuyer(seed int64) *LEcuyer {
	g := &LEcuyer{}
	s := int32(uint32(seed) & seedMask)
	g.gen1, g.gen2 = s, s
	for i := 0; i < warmup; i++ {
		g.gen1 = schrage(g.gen1, gen1Mul, gen1Quo, gen1Rem, gen1Mod)
	}
	for i := 0; i < shuffleSize; i++ {
		g.gen1 = schrage(g.gen1, gen1Mul, gen1Quo, gen1Rem, gen1Mod)
		g.shuffle[shuffleSize-1-i] = g.gen1
	}
	g.state = g.shuffle[0]
	return g
}

// Next returns the next raw value in [0, 2147483563).
func (g *LEcuyer) Next() int32 {
	g.gen1 = schrage(g.gen1, gen1Mul, gen1Quo, gen1Rem, gen1Mod)
	g.gen2 = schrage(g.gen2, gen2Mul, gen2Quo, gen2Rem, gen2Mod)

	// slot comes from the most significant part of the previous result
	i := g.state / shuffleDiv
	g.state = int32((int64(g.shuffle[i]) + int64(g.gen2)) % gen1Mod)
	g.shuffle[i] = g.gen1
	return g.state
}

// Intn returns a value in [0, n], n included. Values are masked to the
// smallest 2^k-1 covering n and redrawn when above n, which avoids the
// bias of taking a remainder.
func (g *LEcuyer) Intn(n int) int {
	if n < 0 {
		return 0
	}
	p := 1
	for n >= p {
		p <<= 1
	}
	p--
	for {
		if v := int(g.Next()) & p; v <= n {
			return v
		}
	}
}
