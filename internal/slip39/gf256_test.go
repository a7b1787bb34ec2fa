package slip39

import "testing"

func TestGFArithmeticProperties(t *testing.T) {
	t.Parallel()

	if gfAdd(1, 2) != 3 {
		t.Error("gfAdd(1, 2) != 3")
	}

	if gfAdd(gfAdd(10, 20), 30) != gfAdd(10, gfAdd(20, 30)) {
		t.Error("addition is not associative")
	}

	a, b, c := byte(3), byte(4), byte(5)
	lhs := gfMul(a, gfAdd(b, c))
	rhs := gfAdd(gfMul(a, b), gfMul(a, c))
	if lhs != rhs {
		t.Errorf("distributivity fail: %d != %d", lhs, rhs)
	}

	for i := 1; i < 256; i++ {
		x := byte(i)
		inv := gfDiv(1, x)
		if gfMul(x, inv) != 1 {
			t.Errorf("inverse fail for %d", x)
		}
	}
}

func TestGFDivByZeroPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on division by zero")
		}
	}()
	gfDiv(5, 0)
}

func TestGFPow(t *testing.T) {
	t.Parallel()
	if gfPow(5, 0) != 1 {
		t.Error("a^0 must be 1")
	}
	if gfPow(0, 3) != 0 {
		t.Error("0^n must be 0 for n>0")
	}
	if gfPow(7, 1) != 7 {
		t.Error("a^1 must be a")
	}
	if gfPow(7, 2) != gfMul(7, 7) {
		t.Error("a^2 must equal a*a")
	}
}
