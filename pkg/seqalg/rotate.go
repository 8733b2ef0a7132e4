package seqalg

// RotateData rotates data[a:b] in place so the element at m becomes the
// element at a, preserving the relative order within each of the two blocks
// [a,m) and [m,b). It returns a + (b - m), the new position of the element
// that was at a, which is also one past the block that moved to the front.
// Rotating with m == a or m == b leaves the data untouched.
//
// The rotation repeatedly swaps the leading elements of the two unequal
// blocks, shrinking the problem until the blocks have equal length; it
// performs at most b-a swaps and no allocation.
func RotateData(data Interface, a, m, b int) int {
	checkBounds(data, a, m, b)
	p := a + (b - m)
	if m == a || m == b {
		return p
	}
	i := m - a
	j := b - m
	for i != j {
		if j < i {
			swapRange(data, m-i, m, j)
			i -= j
		} else {
			swapRange(data, m-i, m+j-i, i)
			j -= i
		}
	}
	swapRange(data, m-i, m, i)
	return p
}

func swapRange(data Interface, a, b, n int) {
	for i := 0; i < n; i++ {
		data.Swap(a+i, b+i)
	}
}

// Rotate rotates s in place so the element at m becomes first. It returns
// len(s) - m, the new position of the element that was first.
func Rotate[E any](s []E, m int) int {
	return RotateData(sliceData[E](s), 0, m, len(s))
}

// RotateRange rotates s[a:b] in place so the element at m becomes the element
// at a. See RotateData.
func RotateRange[E any](s []E, a, m, b int) int {
	return RotateData(sliceData[E](s), a, m, b)
}
