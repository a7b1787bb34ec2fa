package slip39

// interpolate.go implements Lagrange interpolation over GF(2^8), applied
// independently to each byte position of a set of same-length share
// values. This is the core primitive both splitSecret (to compute the
// shares that are not chosen at random) and recoverSecret (to reconstruct
// the value at x=secretIndex and x=digestIndex) build on.

// point is one (x, y) sample of a degree-(threshold-1) polynomial, where y
// is a vector of field elements (one polynomial per byte position).
type point struct {
	x byte
	y []byte
}

// interpolate evaluates, for each byte position, the unique polynomial of
// degree len(points)-1 passing through points, at x=at. All points must
// carry y slices of identical length and distinct x coordinates.
func interpolate(points []point, at byte) []byte {
	length := len(points[0].y)
	result := make([]byte, length)

	for _, target := range points {
		numerator := byte(1)
		denominator := byte(1)

		for _, other := range points {
			if other.x == target.x {
				continue
			}
			numerator = gfMul(numerator, gfSub(at, other.x))
			denominator = gfMul(denominator, gfSub(target.x, other.x))
		}

		lagrangeCoeff := gfDiv(numerator, denominator)
		for i := 0; i < length; i++ {
			result[i] = gfAdd(result[i], gfMul(target.y[i], lagrangeCoeff))
		}
	}

	return result
}
