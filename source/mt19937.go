package source

const (
	mtN         = 312
	mtM         = 156
	mtMatrixA   = 0xb5026f5aa96619e9
	mtUpperMask = 0xffffffff80000000
	mtLowerMask = 0x7fffffff
	mtInitMult  = 6364136223846793005
)

// MT19937 is the 64-bit Mersenne Twister (MT19937-64) by Matsumoto and Nishimura.
type MT19937 struct {
	state [mtN]uint64
	index int
}

var _ Engine = (*MT19937)(nil)

// NewMT19937 returns a Mersenne Twister initialised with the given seed.
func NewMT19937(seed uint64) *MT19937 {
	mt := &MT19937{}
	mt.Seed(seed)

	return mt
}

// Seed reinitialises the state from the given seed.
func (mt *MT19937) Seed(seed uint64) {
	mt.state[0] = seed
	for i := 1; i < mtN; i++ {
		mt.state[i] = mtInitMult*(mt.state[i-1]^(mt.state[i-1]>>62)) + uint64(i)
	}

	mt.index = mtN
}

// Uint64 returns the next tempered value in the sequence.
func (mt *MT19937) Uint64() uint64 {
	if mt.index >= mtN {
		mt.twist()
	}

	x := mt.state[mt.index]
	mt.index++

	x ^= (x >> 29) & 0x5555555555555555
	x ^= (x << 17) & 0x71d67fffeda60000
	x ^= (x << 37) & 0xfff7eee000000000
	x ^= x >> 43

	return x
}

// twist regenerates the whole state vector.
func (mt *MT19937) twist() {
	for i := 0; i < mtN; i++ {
		x := (mt.state[i] & mtUpperMask) | (mt.state[(i+1)%mtN] & mtLowerMask)

		xA := x >> 1
		if x&1 != 0 {
			xA ^= mtMatrixA
		}

		mt.state[i] = mt.state[(i+mtM)%mtN] ^ xA
	}

	mt.index = 0
}
